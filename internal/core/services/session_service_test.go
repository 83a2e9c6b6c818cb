package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/core/services"
	"github.com/SscSPs/cashclose_app/internal/utils"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "session-test-secret"

type SessionServiceTestSuite struct {
	suite.Suite
	verifier *services.SharedSecretVerifier
	service  portssvc.SessionSvc
}

func (suite *SessionServiceTestSuite) SetupSuite() {
	staffHash, err := utils.HashSecret("venda")
	suite.Require().NoError(err)

	suite.verifier, err = services.NewSharedSecretVerifier(
		services.RoleSecret{Role: domain.RoleAdmin, Secret: "gerente-forte"},
		services.RoleSecret{Role: domain.RoleStaff, Hash: staffHash},
	)
	suite.Require().NoError(err)
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.service = services.NewSessionService(suite.verifier, services.SessionSettings{
		JWTSecret: testJWTSecret,
		Issuer:    "cashclose-test",
		Expiry:    time.Hour,
	})
}

func (suite *SessionServiceTestSuite) TestLoginAdmin() {
	session, err := suite.service.Login(context.Background(), "gerente-forte")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, session.Role)
	suite.NotEmpty(session.Token)
	suite.WithinDuration(time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func (suite *SessionServiceTestSuite) TestLoginStaffFromHash() {
	session, err := suite.service.Login(context.Background(), "venda")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, session.Role)
}

func (suite *SessionServiceTestSuite) TestLoginRejectsUnknownAndEmpty() {
	for _, secret := range []string{"", "errada", "VENDA"} {
		session, err := suite.service.Login(context.Background(), secret)
		suite.Nil(session)
		suite.ErrorIs(err, apperrors.ErrInvalidCredential, "secret %q", secret)
	}
}

func (suite *SessionServiceTestSuite) TestRestoreRoundTrip() {
	ctx := context.Background()
	session, err := suite.service.Login(ctx, "venda")
	suite.Require().NoError(err)

	restored, err := suite.service.Restore(ctx, session.Token)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleStaff, restored.Role)
	suite.Equal(session.ExpiresAt.Unix(), restored.ExpiresAt.Unix())
}

func (suite *SessionServiceTestSuite) TestRestoreRejectsForeignToken() {
	token, _, err := utils.GenerateSessionJWT("admin", "other-secret", time.Hour, "x")
	suite.Require().NoError(err)

	session, err := suite.service.Restore(context.Background(), token)

	suite.Nil(session)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestRestoreRejectsUnknownRole() {
	token, _, err := utils.GenerateSessionJWT("owner", testJWTSecret, time.Hour, "x")
	suite.Require().NoError(err)

	_, err = suite.service.Restore(context.Background(), token)

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *SessionServiceTestSuite) TestRestoreEmptyToken() {
	_, err := suite.service.Restore(context.Background(), "")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestSessionService(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func TestSharedSecretVerifier_DisabledRole(t *testing.T) {
	verifier, err := services.NewSharedSecretVerifier(
		services.RoleSecret{Role: domain.RoleAdmin},
		services.RoleSecret{Role: domain.RoleStaff, Secret: "venda"},
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := verifier.EnabledRoles(); len(got) != 1 || got[0] != domain.RoleStaff {
		t.Fatalf("EnabledRoles() = %v, want [staff]", got)
	}
	if _, err := verifier.Verify(context.Background(), ""); err == nil {
		t.Fatal("empty secret must be rejected")
	}
}
