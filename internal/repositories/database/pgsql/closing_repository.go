package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashclose_app/internal/models"
	"github.com/SscSPs/cashclose_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const cashRecordColumns = `id, closing_date, opening_balance, credit_card, debit_card, pix, cash, boleto,
		total_revenue, final_balance, notes, ai_analysis, created_by, created_at`

type PgxClosingRepository struct {
	BaseRepository
}

// newPgxClosingRepository creates a new repository for closing records.
func newPgxClosingRepository(pool *pgxpool.Pool) *PgxClosingRepository {
	return &PgxClosingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClosingRepositoryFacade = (*PgxClosingRepository)(nil)

func scanCashRecord(row pgx.Row) (models.CashRecord, error) {
	var m models.CashRecord
	err := row.Scan(
		&m.ID,
		&m.ClosingDate,
		&m.OpeningBalance,
		&m.CreditCard,
		&m.DebitCard,
		&m.Pix,
		&m.Cash,
		&m.Boleto,
		&m.TotalRevenue,
		&m.FinalBalance,
		&m.Notes,
		&m.AIAnalysis,
		&m.CreatedBy,
		&m.CreatedAt,
	)
	return m, err
}

// SaveClosing inserts a record and returns the stored row.
func (r *PgxClosingRepository) SaveClosing(ctx context.Context, record domain.ClosingRecord) (*domain.ClosingRecord, error) {
	m := mapping.ToModelCashRecord(record)

	query := `
		INSERT INTO cash_records (id, closing_date, opening_balance, credit_card, debit_card, pix, cash, boleto,
			total_revenue, final_balance, notes, ai_analysis, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + cashRecordColumns + `;`

	saved, err := scanCashRecord(r.Pool.QueryRow(ctx, query,
		m.ID,
		m.ClosingDate,
		m.OpeningBalance,
		m.CreditCard,
		m.DebitCard,
		m.Pix,
		m.Cash,
		m.Boleto,
		m.TotalRevenue,
		m.FinalBalance,
		m.Notes,
		m.AIAnalysis,
		m.CreatedBy,
		m.CreatedAt,
	))
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("insert cash record", err)
	}

	d := mapping.ToDomainClosingRecord(saved)
	return &d, nil
}

// FindClosingByID retrieves a record by its id.
func (r *PgxClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	query := `SELECT ` + cashRecordColumns + ` FROM cash_records WHERE id = $1;`

	m, err := scanCashRecord(r.Pool.QueryRow(ctx, query, closingID))
	if err != nil {
		return nil, storeError("find cash record "+closingID, err)
	}

	d := mapping.ToDomainClosingRecord(m)
	return &d, nil
}

// ListClosings retrieves every record, newest date first.
func (r *PgxClosingRepository) ListClosings(ctx context.Context) ([]domain.ClosingRecord, error) {
	query := `SELECT ` + cashRecordColumns + ` FROM cash_records ORDER BY closing_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("query cash records", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CashRecord, error) {
		return scanCashRecord(row)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.ClosingRecord{}, nil
		}
		return nil, apperrors.NewStoreUnavailableError("scan cash records", err)
	}

	return mapping.ToDomainClosingRecordSlice(ms), nil
}

// AttachAnalysis sets ai_analysis only while it is still NULL.
func (r *PgxClosingRepository) AttachAnalysis(ctx context.Context, closingID string, analysis string) (bool, error) {
	query := `UPDATE cash_records SET ai_analysis = $2 WHERE id = $1 AND ai_analysis IS NULL;`

	tag, err := r.Pool.Exec(ctx, query, closingID, analysis)
	if err != nil {
		return false, apperrors.NewStoreUnavailableError("attach analysis", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Nothing updated: either the id is unknown or another writer got there first.
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM cash_records WHERE id = $1);`, closingID).Scan(&exists); err != nil {
		return false, apperrors.NewStoreUnavailableError("check cash record", err)
	}
	if !exists {
		return false, apperrors.NewNotFoundError("closing " + closingID)
	}
	return false, nil
}
