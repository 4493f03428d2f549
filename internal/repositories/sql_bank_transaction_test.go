package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestBankTransactionRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(BankTransactionTestSuite))
}

type BankTransactionTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    BankTransactionRepository
}

func (suite *BankTransactionTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetBankTransactionRepository()
}

func (suite *BankTransactionTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *BankTransactionTestSuite) SetupModels() []models.BankTransaction {
	date, err := time.Parse("2006-01-02", "2025-02-10")
	assert.NoError(suite.T(), err)

	amount, err := models.NewDecimal("-300.00")
	assert.NoError(suite.T(), err)

	return []models.BankTransaction{
		{
			ID:           "tx-001",
			CompanyID:    1,
			LedgerMoveID: 9001,
			Amount:       amount,
			Currency:     "EUR",
			Date:         date,
			Description:  "Payment for topographical diagram",
			PartnerName:  "Alpha Surveyors Ltd",
			Reference:    "FT25041000123",
		},
	}
}

func (suite *BankTransactionTestSuite) TestRepository_StoreBulk() {
	type args struct {
		entities   []models.BankTransaction
		setupMocks func()
	}

	testCases := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "test success",
			args: args{
				entities: suite.SetupModels(),
				setupMocks: func() {
					suite.mock.
						ExpectExec("INSERT INTO bank_transactions").
						WillReturnResult(sqlmock.NewResult(0, 1))
				},
			},
			wantErr: false,
		},
		{
			name: "test empty batch is a no-op",
			args: args{
				entities:   nil,
				setupMocks: func() {},
			},
			wantErr: false,
		},
		{
			name: "test error storeBulk",
			args: args{
				entities: suite.SetupModels(),
				setupMocks: func() {
					suite.mock.
						ExpectExec("INSERT INTO bank_transactions").
						WillReturnError(assert.AnError)
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.args.setupMocks()

			err := suite.repo.StoreBulk(context.TODO(), tt.args.entities)
			assert.Equal(t, tt.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *BankTransactionTestSuite) TestRepository_GetByID() {
	ct := time.Now()

	testCases := []struct {
		name       string
		id         string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "test success",
			id:   "tx-001",
			setupMocks: func() {
				rows := sqlmock.
					NewRows(bankTransactionColumns).
					AddRow("tx-001", 1, 9001, "-300.00", "EUR", ct, "Payment", "Alpha Surveyors Ltd", "FT25041000123", false, nil, ct, ct)
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(getBankTransactionByIDQuery)).
					WithArgs("tx-001").
					WillReturnRows(rows)
			},
		},
		{
			name: "test not found",
			id:   "tx-404",
			setupMocks: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(getBankTransactionByIDQuery)).
					WithArgs("tx-404").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrDataNotFound,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			got, err := suite.repo.GetByID(context.TODO(), tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, got.ID)
				assert.False(t, got.Reconciled)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *BankTransactionTestSuite) TestRepository_GetUnreconciled() {
	ct := time.Now()
	dateFrom := ct.AddDate(0, -1, 0)

	opts := models.BankTransactionFilter{
		CompanyID: 1,
		DateFrom:  &dateFrom,
		Limit:     100,
	}

	suite.t.Run("success", func(t *testing.T) {
		listQuery, _, err := buildUnreconciledTransactionsQuery(opts)
		require.NoError(t, err)

		rows := sqlmock.
			NewRows(bankTransactionColumns).
			AddRow("tx-001", 1, 9001, "-300.00", "EUR", ct, "Payment one", "Alpha", "REF-1", false, nil, ct, ct).
			AddRow("tx-002", 1, 9002, "-26500.00", "EUR", ct, "Payment two", "Beta", "REF-2", false, nil, ct, ct)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WillReturnRows(rows)

		got, err := suite.repo.GetUnreconciled(context.TODO(), opts)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, "tx-002", got[1].ID)
	})

	suite.t.Run("query error", func(t *testing.T) {
		listQuery, _, err := buildUnreconciledTransactionsQuery(opts)
		require.NoError(t, err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WillReturnError(assert.AnError)

		_, err = suite.repo.GetUnreconciled(context.TODO(), opts)
		assert.Error(t, err)
	})
}

func (suite *BankTransactionTestSuite) TestRepository_MarkReconciled() {
	now := time.Now()

	suite.t.Run("success", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(markTransactionsReconciledQuery)).
			WillReturnResult(sqlmock.NewResult(0, 2))

		err := suite.repo.MarkReconciled(context.TODO(), []string{"tx-001", "tx-002"}, now)
		assert.NoError(t, err)
	})

	suite.t.Run("no rows affected", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(markTransactionsReconciledQuery)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := suite.repo.MarkReconciled(context.TODO(), []string{"tx-404"}, now)
		assert.ErrorIs(t, err, common.ErrNoRowsAffected)
	})

	suite.t.Run("empty ids is a no-op", func(t *testing.T) {
		err := suite.repo.MarkReconciled(context.TODO(), nil, now)
		assert.NoError(t, err)
	})
}
