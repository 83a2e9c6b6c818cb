package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portsrepo "github.com/SscSPs/cashclose_app/internal/core/ports/repositories"
	"github.com/SscSPs/cashclose_app/internal/models"
	"github.com/SscSPs/cashclose_app/internal/utils/mapping"

	_ "modernc.org/sqlite"
)

// createdAtLayout keeps a fixed width so created_at sorts correctly as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

const cashRecordColumns = `id, closing_date, opening_balance, credit_card, debit_card, pix, cash, boleto,
	total_revenue, final_balance, notes, ai_analysis, created_by, created_at`

// ClosingRepository stores closing records in a local SQLite file.
type ClosingRepository struct {
	db *sql.DB
}

var (
	_ portsrepo.ClosingRepositoryFacade = (*ClosingRepository)(nil)
	_ portsrepo.StoreLifecycle          = (*ClosingRepository)(nil)
)

// Open creates the database file if needed, applies migrations and returns a ready repository.
func Open(dbPath string) (*ClosingRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection serialises writers and avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return NewClosingRepository(db), nil
}

// NewClosingRepository wraps an already migrated database handle.
func NewClosingRepository(db *sql.DB) *ClosingRepository {
	return &ClosingRepository{db: db}
}

// NewRepositoryProvider opens dbPath and exposes it through the service-facing provider.
func NewRepositoryProvider(dbPath string) (portsrepo.RepositoryProvider, error) {
	repo, err := Open(dbPath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	return portsrepo.RepositoryProvider{ClosingRepo: repo, Store: repo}, nil
}

func (r *ClosingRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return apperrors.NewStoreUnavailableError("ping sqlite", err)
	}
	return nil
}

func (r *ClosingRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCashRecord(row rowScanner) (models.CashRecord, error) {
	var (
		m           models.CashRecord
		closingDate string
		createdAt   string
	)
	err := row.Scan(
		&m.ID,
		&closingDate,
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
		&createdAt,
	)
	if err != nil {
		return m, err
	}
	if m.ClosingDate, err = time.Parse(domain.DateLayout, closingDate); err != nil {
		return m, fmt.Errorf("parse closing_date %q: %w", closingDate, err)
	}
	if m.CreatedAt, err = time.Parse(createdAtLayout, createdAt); err != nil {
		return m, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	return m, nil
}

func storeError(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return apperrors.NewStoreUnavailableError(op, err)
}

// SaveClosing inserts a record and reads it back.
func (r *ClosingRepository) SaveClosing(ctx context.Context, record domain.ClosingRecord) (*domain.ClosingRecord, error) {
	m := mapping.ToModelCashRecord(record)

	query := `INSERT INTO cash_records (` + cashRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.ClosingDate.Format(domain.DateLayout),
		m.OpeningBalance.String(),
		m.CreditCard.String(),
		m.DebitCard.String(),
		m.Pix.String(),
		m.Cash.String(),
		m.Boleto.String(),
		m.TotalRevenue.String(),
		m.FinalBalance.String(),
		m.Notes,
		m.AIAnalysis,
		m.CreatedBy,
		m.CreatedAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("insert cash record", err)
	}

	return r.FindClosingByID(ctx, m.ID)
}

// FindClosingByID retrieves a record by its id.
func (r *ClosingRepository) FindClosingByID(ctx context.Context, closingID string) (*domain.ClosingRecord, error) {
	query := `SELECT ` + cashRecordColumns + ` FROM cash_records WHERE id = ?`

	m, err := scanCashRecord(r.db.QueryRowContext(ctx, query, closingID))
	if err != nil {
		return nil, storeError("find cash record "+closingID, err)
	}

	d := mapping.ToDomainClosingRecord(m)
	return &d, nil
}

// ListClosings retrieves every record, newest date first.
func (r *ClosingRepository) ListClosings(ctx context.Context) ([]domain.ClosingRecord, error) {
	query := `SELECT ` + cashRecordColumns + ` FROM cash_records ORDER BY closing_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("query cash records", err)
	}
	defer rows.Close()

	ms := []models.CashRecord{}
	for rows.Next() {
		m, err := scanCashRecord(rows)
		if err != nil {
			return nil, apperrors.NewStoreUnavailableError("scan cash record", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreUnavailableError("iterate cash records", err)
	}

	return mapping.ToDomainClosingRecordSlice(ms), nil
}

// AttachAnalysis sets ai_analysis only while it is still NULL.
func (r *ClosingRepository) AttachAnalysis(ctx context.Context, closingID string, analysis string) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cash_records SET ai_analysis = ? WHERE id = ? AND ai_analysis IS NULL`,
		analysis, closingID)
	if err != nil {
		return false, apperrors.NewStoreUnavailableError("attach analysis", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, apperrors.NewStoreUnavailableError("attach analysis", err)
	}
	if affected == 1 {
		return true, nil
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM cash_records WHERE id = ?)`, closingID).Scan(&exists); err != nil {
		return false, apperrors.NewStoreUnavailableError("check cash record", err)
	}
	if !exists {
		return false, apperrors.NewNotFoundError("closing " + closingID)
	}
	return false, nil
}
