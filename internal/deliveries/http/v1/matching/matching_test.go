package matching

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/services/mock"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_Handler_runMatching(t *testing.T) {
	testHelper := matchingTestHelper(t)

	type args struct {
		ctx context.Context
		req models.RunMatchingRequest
	}
	type mockData struct {
		wantRes  string
		wantCode int
	}
	tests := []struct {
		name      string
		urlCalled string
		args      args
		mockData  mockData
		doMock    func(args args, mockData mockData)
	}{
		{
			name:      "success",
			urlCalled: "/api/v1/matching/runs",
			args: args{
				ctx: context.Background(),
				req: models.RunMatchingRequest{
					CompanyID: 1,
					DateFrom:  "2025-01-01",
					DateTo:    "2025-06-30",
				},
			},
			mockData: mockData{
				wantRes:  `{"company_id":1,"run_at":"2025-06-01T09:30:00Z","results":[],"summary":{"total_transactions":2,"total_documents":3,"single_pass":2,"combination_pass":0,"unmatched":0,"match_rate":100,"status":"PASS"}}`,
				wantCode: 200,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Run(args.ctx, args.req).Return(&models.MatchReport{
					CompanyID: 1,
					RunAt:     time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
					Results:   []models.MatchResult{},
					Summary: models.MatchSummary{
						TotalTransactions: 2,
						TotalDocuments:    3,
						SinglePass:        2,
						MatchRate:         100,
						Status:            models.SummaryStatusPass,
					},
				}, nil)
			},
		},
		{
			name:      "error validating request",
			urlCalled: "/api/v1/matching/runs",
			args: args{
				ctx: context.Background(),
				req: models.RunMatchingRequest{},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"42207","field":"company_id","message":"company id is required"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error inverted date range",
			urlCalled: "/api/v1/matching/runs",
			args: args{
				ctx: context.Background(),
				req: models.RunMatchingRequest{
					CompanyID: 1,
					DateFrom:  "2025-06-30",
					DateTo:    "2025-01-01",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","message":"validation failed","errors":[{"code":"42210","field":"date_to","message":"invalid date to"}]}`,
				wantCode: 422,
			},
		},
		{
			name:      "error unparseable date",
			urlCalled: "/api/v1/matching/runs",
			args: args{
				ctx: context.Background(),
				req: models.RunMatchingRequest{
					CompanyID: 1,
					DateFrom:  "2025-13-99",
				},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":400,"message":"invalid format date"}`,
				wantCode: 400,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Run(args.ctx, args.req).Return(nil, common.ErrInvalidFormatDate)
			},
		},
		{
			name:      "error service",
			urlCalled: "/api/v1/matching/runs",
			args: args{
				ctx: context.Background(),
				req: models.RunMatchingRequest{CompanyID: 1},
			},
			mockData: mockData{
				wantRes:  `{"status":"error","code":500,"message":"assert.AnError general error for testing"}`,
				wantCode: 500,
			},
			doMock: func(args args, mockData mockData) {
				testHelper.mockService.EXPECT().Run(args.ctx, args.req).Return(nil, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args, tt.mockData)
			}

			var b bytes.Buffer
			err := json.NewEncoder(&b).Encode(tt.args.req)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, tt.urlCalled, &b)
			req.Header.Set("Content-Type", "application/json")

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.mockData.wantCode, resp.StatusCode)
			require.Equal(t, tt.mockData.wantRes, strings.TrimSuffix(string(body), "\n"))
		})
	}
}

type testMatchingHelper struct {
	router      *echo.Echo
	mockCtrl    *gomock.Controller
	mockService *mock.MockMatchingService
}

func matchingTestHelper(t *testing.T) testMatchingHelper {
	t.Helper()

	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockSvc := mock.NewMockMatchingService(mockCtrl)

	app := echo.New()
	app.Pre(echomiddleware.RemoveTrailingSlash())
	v1Group := app.Group("/api/v1")
	New(v1Group, mockSvc)

	return testMatchingHelper{
		router:      app,
		mockCtrl:    mockCtrl,
		mockService: mockSvc,
	}
}

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}
