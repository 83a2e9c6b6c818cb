package pgsql

import (
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	closingRepo := newPgxClosingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClosingRepo: closingRepo,
		Store:       closingRepo,
	}
}
