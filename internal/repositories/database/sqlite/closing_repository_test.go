package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/repositories/database/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SQLiteClosingRepositoryTestSuite struct {
	suite.Suite
	repo *sqlite.ClosingRepository
}

func (suite *SQLiteClosingRepositoryTestSuite) SetupTest() {
	dbPath := filepath.Join(suite.T().TempDir(), "nested", "cashclose.db")
	repo, err := sqlite.Open(dbPath)
	suite.Require().NoError(err)
	suite.repo = repo
}

func (suite *SQLiteClosingRepositoryTestSuite) TearDownTest() {
	suite.NoError(suite.repo.Close())
}

func (suite *SQLiteClosingRepositoryTestSuite) newRecord(date string, createdAt time.Time) domain.ClosingRecord {
	d, err := domain.ParseDay(date)
	suite.Require().NoError(err)
	in := domain.ClosingInput{
		Date:           d,
		OpeningBalance: decimal.RequireFromString("150.00"),
		CreditCard:     decimal.RequireFromString("1200.50"),
		DebitCard:      decimal.RequireFromString("450"),
		Pix:            decimal.RequireFromString("890"),
		Cash:           decimal.RequireFromString("320"),
		Notes:          "ok",
		CreatedBy:      "staff",
	}
	return domain.NewClosingRecord(uuid.NewString(), in, createdAt)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestSaveAndFind() {
	ctx := context.Background()
	record := suite.newRecord("2023-10-25", time.Now())

	saved, err := suite.repo.SaveClosing(ctx, record)
	suite.Require().NoError(err)
	suite.Equal(record.ID, saved.ID)
	suite.Equal("2023-10-25", saved.DateString())
	suite.True(decimal.RequireFromString("2860.50").Equal(saved.TotalRevenue))
	suite.True(decimal.RequireFromString("3010.50").Equal(saved.FinalBalance))
	suite.Require().NotNil(saved.Notes)
	suite.Equal("ok", *saved.Notes)
	suite.Nil(saved.AIAnalysis)

	found, err := suite.repo.FindClosingByID(ctx, record.ID)
	suite.Require().NoError(err)
	suite.Equal(saved, found)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestSubCentInputIsStoredRounded() {
	ctx := context.Background()
	d, err := domain.ParseDay("2024-04-04")
	suite.Require().NoError(err)
	record := domain.NewClosingRecord(uuid.NewString(), domain.ClosingInput{
		Date:       d,
		CreditCard: decimal.RequireFromString("0.005"),
		DebitCard:  decimal.RequireFromString("0.005"),
	}, time.Now())

	_, err = suite.repo.SaveClosing(ctx, record)
	suite.Require().NoError(err)

	found, err := suite.repo.FindClosingByID(ctx, record.ID)
	suite.Require().NoError(err)
	suite.True(decimal.RequireFromString("0.01").Equal(found.CreditCard))
	suite.True(decimal.RequireFromString("0.01").Equal(found.DebitCard))
	suite.True(found.CreditCard.Add(found.DebitCard).Equal(found.TotalRevenue))
}

func (suite *SQLiteClosingRepositoryTestSuite) TestFindUnknown() {
	_, err := suite.repo.FindClosingByID(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestListOrdersByDateThenCreation() {
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	older := suite.newRecord("2024-05-01", base)
	newerSameDay := suite.newRecord("2024-05-01", base.Add(time.Minute))
	latest := suite.newRecord("2024-05-03", base)

	for _, r := range []domain.ClosingRecord{older, latest, newerSameDay} {
		_, err := suite.repo.SaveClosing(ctx, r)
		suite.Require().NoError(err)
	}

	list, err := suite.repo.ListClosings(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(list, 3)
	suite.Equal(latest.ID, list[0].ID)
	suite.Equal(newerSameDay.ID, list[1].ID)
	suite.Equal(older.ID, list[2].ID)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestListEmpty() {
	list, err := suite.repo.ListClosings(context.Background())
	suite.Require().NoError(err)
	suite.NotNil(list)
	suite.Empty(list)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestAttachAnalysisIsWriteOnce() {
	ctx := context.Background()
	record := suite.newRecord("2024-01-01", time.Now())
	_, err := suite.repo.SaveClosing(ctx, record)
	suite.Require().NoError(err)

	attached, err := suite.repo.AttachAnalysis(ctx, record.ID, "primeira análise")
	suite.Require().NoError(err)
	suite.True(attached)

	attached, err = suite.repo.AttachAnalysis(ctx, record.ID, "segunda análise")
	suite.Require().NoError(err)
	suite.False(attached)

	found, err := suite.repo.FindClosingByID(ctx, record.ID)
	suite.Require().NoError(err)
	suite.Require().NotNil(found.AIAnalysis)
	suite.Equal("primeira análise", *found.AIAnalysis)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestAttachAnalysisConcurrentWritersOneWins() {
	ctx := context.Background()
	record := suite.newRecord("2024-01-02", time.Now())
	_, err := suite.repo.SaveClosing(ctx, record)
	suite.Require().NoError(err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := suite.repo.AttachAnalysis(ctx, record.ID, "texto")
			if err == nil && ok {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	suite.Equal(1, wins)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestAttachAnalysisUnknown() {
	_, err := suite.repo.AttachAnalysis(context.Background(), "missing", "x")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteClosingRepositoryTestSuite) TestReopenKeepsData() {
	ctx := context.Background()
	dbPath := filepath.Join(suite.T().TempDir(), "reopen.db")

	repo, err := sqlite.Open(dbPath)
	suite.Require().NoError(err)
	record := suite.newRecord("2024-02-02", time.Now())
	_, err = repo.SaveClosing(ctx, record)
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Close())

	reopened, err := sqlite.Open(dbPath)
	suite.Require().NoError(err)
	defer reopened.Close()

	list, err := reopened.ListClosings(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(record.ID, list[0].ID)
}

func TestSQLiteClosingRepository(t *testing.T) {
	suite.Run(t, new(SQLiteClosingRepositoryTestSuite))
}
