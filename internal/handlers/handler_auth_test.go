package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

func (suite *ClosingHandlerTestSuite) TestLogin_SetsCookie() {
	expires := time.Now().Add(time.Hour)
	suite.mockSession.On("Login", mock.Anything, "venda").
		Return(&domain.Session{Role: domain.RoleStaff, Token: "signed.jwt.token", ExpiresAt: expires}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"secret": "venda"})

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("staff", body["role"])
	suite.Equal("signed.jwt.token", body["token"])

	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Equal("cashclose_session", cookies[0].Name)
	suite.Equal("signed.jwt.token", cookies[0].Value)
	suite.True(cookies[0].HttpOnly)
}

func (suite *ClosingHandlerTestSuite) TestLogin_Rejected() {
	suite.mockSession.On("Login", mock.Anything, "errada").Return(nil, apperrors.ErrInvalidCredential).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"secret": "errada"})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal("Invalid credentials", suite.decode(w)["error"])
	suite.Empty(w.Result().Cookies())
}

func (suite *ClosingHandlerTestSuite) TestLogin_MissingSecret() {
	w := suite.do(http.MethodPost, "/api/v1/auth/login", "", map[string]any{})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ClosingHandlerTestSuite) TestLogout_ClearsCookie() {
	w := suite.do(http.MethodPost, "/api/v1/auth/logout", "", nil)

	suite.Equal(http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	suite.Require().Len(cookies, 1)
	suite.Empty(cookies[0].Value)
	suite.Less(cookies[0].MaxAge, 0)
}

func (suite *ClosingHandlerTestSuite) TestSession_FromCookie() {
	suite.mockSession.On("Restore", mock.Anything, "cookie-token").
		Return(&domain.Session{Role: domain.RoleAdmin, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "cashclose_session", Value: "cookie-token"})
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	body := suite.decode(w)
	suite.Equal("admin", body["role"])
	suite.NotContains(body, "token")
}

func (suite *ClosingHandlerTestSuite) TestSession_Invalid() {
	suite.mockSession.On("Restore", mock.Anything, "bad").Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.do(http.MethodGet, "/api/v1/auth/session", "bad", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ClosingHandlerTestSuite) TestSession_Missing() {
	w := suite.do(http.MethodGet, "/api/v1/auth/session", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}
