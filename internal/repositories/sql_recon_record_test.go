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
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestReconRecordRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(ReconRecordTestSuite))
}

type ReconRecordTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    ReconRecordRepository
}

func (suite *ReconRecordTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB
	suite.t = suite.T()

	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetReconRecordRepository()
}

func (suite *ReconRecordTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
}

func (suite *ReconRecordTestSuite) SetupModel() *models.ReconciliationRecord {
	return &models.ReconciliationRecord{
		TransactionID: "tx-001",
		DocumentID:    "501",
		DocumentType:  models.DocumentTypeBill,
		MatchType:     models.MatchKindSingle,
		LedgerLineIDs: []int64{101, 102},
		Status:        models.ReconStatusReconciled,
		RetryCount:    0,
	}
}

func (suite *ReconRecordTestSuite) TestRepository_Store() {
	ct := time.Now()

	testCases := []struct {
		name       string
		setupMocks func()
		wantErr    error
	}{
		{
			name: "test success",
			setupMocks: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(storeReconRecordQuery)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, ct))
			},
		},
		{
			name: "test duplicate transaction id",
			setupMocks: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(storeReconRecordQuery)).
					WillReturnError(&pq.Error{Code: pgUniqueViolation})
			},
			wantErr: common.ErrReconRecordExists,
		},
		{
			name: "test error store",
			setupMocks: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(storeReconRecordQuery)).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			en := suite.SetupModel()
			err := suite.repo.Store(context.TODO(), en)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(1), en.ID)
				assert.Equal(t, ct, en.CreatedAt)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *ReconRecordTestSuite) TestRepository_GetByTransactionID() {
	ct := time.Now()

	suite.t.Run("success", func(t *testing.T) {
		rows := sqlmock.
			NewRows(reconRecordColumns).
			AddRow(1, "tx-001", "501", "bill", "SINGLE", "{101,102}", "reconciled", 0, "", ct)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(getReconRecordByTransactionIDQuery)).
			WithArgs("tx-001").
			WillReturnRows(rows)

		got, err := suite.repo.GetByTransactionID(context.TODO(), "tx-001")
		assert.NoError(t, err)
		assert.Equal(t, "tx-001", got.TransactionID)
		assert.Equal(t, []int64{101, 102}, got.LedgerLineIDs)
	})

	suite.t.Run("not found", func(t *testing.T) {
		suite.mock.
			ExpectQuery(regexp.QuoteMeta(getReconRecordByTransactionIDQuery)).
			WithArgs("tx-404").
			WillReturnError(sql.ErrNoRows)

		_, err := suite.repo.GetByTransactionID(context.TODO(), "tx-404")
		assert.ErrorIs(t, err, common.ErrDataNotFound)
	})
}

func (suite *ReconRecordTestSuite) TestRepository_GetList() {
	ct := time.Now()

	suite.t.Run("first page", func(t *testing.T) {
		opts := models.ReconRecordFilter{Status: models.ReconStatusReconciled, Limit: 20}

		listQuery, _, err := buildListReconRecordsQuery(opts)
		require.NoError(t, err)

		rows := sqlmock.
			NewRows(reconRecordColumns).
			AddRow(2, "tx-002", "502", "invoice", "SINGLE", "{201}", "reconciled", 0, "", ct).
			AddRow(1, "tx-001", "501", "bill", "TRANSACTION_COMBINATION", "{101,102}", "reconciled", 1, "", ct)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WillReturnRows(rows)

		got, err := suite.repo.GetList(context.TODO(), opts)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, []int64{201}, got[0].LedgerLineIDs)
	})

	suite.t.Run("forward cursor", func(t *testing.T) {
		opts := models.ReconRecordFilter{
			Limit:  20,
			Cursor: &models.ReconRecordCursor{DatabaseID: 2},
		}

		listQuery, _, err := buildListReconRecordsQuery(opts)
		require.NoError(t, err)

		rows := sqlmock.
			NewRows(reconRecordColumns).
			AddRow(1, "tx-001", "501", "bill", "SINGLE", "{101}", "reconciled", 0, "", ct)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WillReturnRows(rows)

		got, err := suite.repo.GetList(context.TODO(), opts)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	suite.t.Run("backward cursor", func(t *testing.T) {
		opts := models.ReconRecordFilter{
			Limit:  20,
			Cursor: &models.ReconRecordCursor{DatabaseID: 1, IsBackward: true},
		}

		listQuery, _, err := buildListReconRecordsQuery(opts)
		require.NoError(t, err)

		rows := sqlmock.
			NewRows(reconRecordColumns).
			AddRow(2, "tx-002", "502", "invoice", "SINGLE", "{201}", "reconciled", 0, "", ct)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(listQuery)).
			WillReturnRows(rows)

		got, err := suite.repo.GetList(context.TODO(), opts)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func (suite *ReconRecordTestSuite) TestRepository_CountAll() {
	suite.t.Run("success", func(t *testing.T) {
		opts := models.ReconRecordFilter{TransactionID: "tx-001"}

		countQuery, _, err := buildCountReconRecordsQuery(opts)
		require.NoError(t, err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(countQuery)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

		total, err := suite.repo.CountAll(context.TODO(), opts)
		assert.NoError(t, err)
		assert.Equal(t, 5, total)
	})

	suite.t.Run("query error", func(t *testing.T) {
		opts := models.ReconRecordFilter{}

		countQuery, _, err := buildCountReconRecordsQuery(opts)
		require.NoError(t, err)

		suite.mock.
			ExpectQuery(regexp.QuoteMeta(countQuery)).
			WillReturnError(assert.AnError)

		_, err = suite.repo.CountAll(context.TODO(), opts)
		assert.Error(t, err)
	})
}
