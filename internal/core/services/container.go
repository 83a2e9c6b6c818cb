package services

import (
	"fmt"

	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/SscSPs/cashclose_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// generator and publisher may be nil.
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	generator clients.TextGenerator,
	publisher clients.EventPublisher,
) (*portssvc.ServiceContainer, error) {
	verifier, err := NewSharedSecretVerifier(
		RoleSecret{Role: domain.RoleAdmin, Secret: cfg.AdminSecret, Hash: cfg.AdminSecretHash},
		RoleSecret{Role: domain.RoleStaff, Secret: cfg.StaffSecret, Hash: cfg.StaffSecretHash},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build credential verifier: %w", err)
	}

	container := &portssvc.ServiceContainer{}

	container.Closing = NewClosingService(repos.ClosingRepo, WithClosingEventPublisher(publisher))
	container.Summary = NewSummaryService(container.Closing)
	container.Analysis = NewAnalysisService(repos.ClosingRepo, generator, WithAnalysisEventPublisher(publisher))
	container.Session = NewSessionService(verifier, SessionSettings{
		JWTSecret: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Expiry:    cfg.JWTExpiryDuration,
	})

	return container, nil
}
