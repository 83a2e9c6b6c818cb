package sqlite_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/repositories/database/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cashRecordCols = []string{
	"id", "closing_date", "opening_balance", "credit_card", "debit_card", "pix", "cash", "boleto",
	"total_revenue", "final_balance", "notes", "ai_analysis", "created_by", "created_at",
}

func TestClosingRepository_ListClosings_ScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(cashRecordCols).
		AddRow("2", "2023-10-26", "150", "980", "560", "1200", "410", "150", "3300", "3450", nil, "bom dia", "admin", "2023-10-26T20:00:00.000000000Z").
		AddRow("1", "2023-10-25", "150", "1200.5", "450", "890", "320", "0", "2860.5", "3010.5", "obs", nil, nil, "2023-10-25T20:00:00.000000000Z")
	mock.ExpectQuery(regexp.QuoteMeta("FROM cash_records ORDER BY closing_date DESC, created_at DESC")).WillReturnRows(rows)

	repo := sqlite.NewClosingRepository(db)
	list, err := repo.ListClosings(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2023-10-26", list[0].DateString())
	assert.Equal(t, "3300", list[0].TotalRevenue.String())
	require.NotNil(t, list[0].AIAnalysis)
	assert.Equal(t, "bom dia", *list[0].AIAnalysis)
	assert.Nil(t, list[0].Notes)
	assert.Nil(t, list[1].AIAnalysis)
	assert.Nil(t, list[1].CreatedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClosingRepository_ListClosings_Unavailable(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM cash_records")).WillReturnError(errors.New("disk I/O error"))

	_, err = sqlite.NewClosingRepository(db).ListClosings(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClosingRepository_AttachAnalysis_AlreadySet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cash_records SET ai_analysis = ? WHERE id = ? AND ai_analysis IS NULL")).
		WithArgs("texto", "abc").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM cash_records WHERE id = ?)")).
		WithArgs("abc").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	attached, err := sqlite.NewClosingRepository(db).AttachAnalysis(context.Background(), "abc", "texto")

	require.NoError(t, err)
	assert.False(t, attached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClosingRepository_AttachAnalysis_ExecFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cash_records")).
		WillReturnError(errors.New("database is locked"))

	_, err = sqlite.NewClosingRepository(db).AttachAnalysis(context.Background(), "abc", "texto")

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClosingRepository_Ping_Unavailable(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("gone"))

	err = sqlite.NewClosingRepository(db).Ping(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}
