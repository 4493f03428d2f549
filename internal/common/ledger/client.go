// Package ledger is the JSON-RPC client for the accounting ledger
// (an Odoo instance). All traffic goes through the /jsonrpc endpoint:
// authentication against the common service, everything else as
// execute_kw calls on the object service.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/cache"
	"github.com/atlasledger/go-bank-recon/internal/common/metrics"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog/ctxdata"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/models"
	"github.com/atlasledger/go-bank-recon/internal/monitoring"
)

var logMessage = "[LEDGER-CLIENT]"

type Client interface {
	Authenticate(ctx context.Context) (uid int64, err error)
	AccountType(ctx context.Context, accountID int64) (accountType string, err error)
	ReadMoveLines(ctx context.Context, moveID int64, limit int) (lines []MoveLine, err error)
	WriteMoveLine(ctx context.Context, lineID int64, values map[string]any) (err error)
	ReconcileLines(ctx context.Context, lineIDs []int64) (err error)
	SearchMovesByReference(ctx context.Context, reference string) (moveIDs []int64, err error)
	FindOrCreatePartner(ctx context.Context, name string) (partnerID int64, err error)
}

type client struct {
	baseURL    string
	database   string
	username   string
	apiKey     string
	companyID  int64
	httpClient *resty.Client
	metrics    metrics.Metrics

	accountTypeCache cache.Client[string]
	ttlCache         time.Duration

	mu    sync.Mutex
	uid   int64
	rpcID int64
}

func New(
	configuration config.LedgerConfig,
	metrics metrics.Metrics,
	accountTypeCache cache.Client[string],
) Client {
	retryWaitTime := time.Duration(configuration.RetryWaitTime) * time.Millisecond

	restyClient := resty.New()
	restyClient = restyClient.AddRetryCondition(func(r *resty.Response, err error) bool {
		if r == nil {
			return false
		}

		_, shouldRetry := models.RetryableHTTPCodes[r.StatusCode()]
		return shouldRetry
	})

	restyClient = restyClient.
		SetTransport(monitoring.NewMiddlewareRoundTripper(restyClient.GetClient().Transport)).
		SetRetryCount(configuration.RetryCount).
		SetRetryWaitTime(retryWaitTime).
		SetTimeout(configuration.Timeout)

	return &client{
		baseURL:    configuration.BaseURL,
		database:   configuration.Database,
		username:   configuration.Username,
		apiKey:     configuration.APIKey,
		companyID:  configuration.CompanyID,
		httpClient: restyClient,
		metrics:    metrics,

		accountTypeCache: accountTypeCache,
		ttlCache:         10 * time.Minute,
	}
}

// Authenticate resolves the api key to a ledger uid. The ledger answers
// false, not an error, on bad credentials.
func (c *client) Authenticate(ctx context.Context) (uid int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var raw json.RawMessage
	err = c.call(ctx, "common", "authenticate",
		[]any{c.database, c.username, c.apiKey, map[string]any{}},
		"common.authenticate", &raw)
	if err != nil {
		return 0, err
	}

	if unmarshalErr := json.Unmarshal(raw, &uid); unmarshalErr != nil || uid == 0 {
		err = fmt.Errorf("%w: credentials rejected for database %q", common.ErrLedgerAuth, c.database)
		return 0, err
	}

	c.mu.Lock()
	c.uid = uid
	c.mu.Unlock()

	xlog.Info(ctx, logMessage,
		xlog.String("status", "authenticated"),
		xlog.Int64("uid", uid),
		xlog.String("database", c.database))

	return uid, nil
}

func (c *client) AccountType(ctx context.Context, accountID int64) (accountType string, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	return c.accountTypeCache.GetOrSet(ctx, cache.GetOrSetOpts[string]{
		Key: fmt.Sprintf("go-bank-recon:ledger:account-type:%d", accountID),
		TTL: c.ttlCache,
		Callback: func() (string, error) {
			var accounts []Account
			err := c.callObject(ctx, ModelAccount, "read",
				[]any{[]int64{accountID}},
				map[string]any{"fields": []string{"account_type"}},
				&accounts)
			if err != nil {
				return "", err
			}

			if len(accounts) == 0 {
				return "", fmt.Errorf("%w: account %d", common.ErrDataNotFound, accountID)
			}

			return accounts[0].AccountType, nil
		},
	})
}

func (c *client) ReadMoveLines(ctx context.Context, moveID int64, limit int) (lines []MoveLine, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	err = c.callObject(ctx, ModelMoveLine, "search_read",
		[]any{[]any{[]any{"move_id", "=", moveID}}},
		map[string]any{
			"fields": []string{"id", "name", "debit", "credit", "account_id", "partner_id", "reconciled"},
			"limit":  limit,
		},
		&lines)
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (c *client) WriteMoveLine(ctx context.Context, lineID int64, values map[string]any) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var ok bool
	return c.callObject(ctx, ModelMoveLine, "write",
		[]any{[]int64{lineID}, values}, nil, &ok)
}

// ReconcileLines asks the ledger to reconcile the given journal items
// against each other. Two quirks of the remote endpoint are handled here:
// a serializer hiccup ("cannot marshal None") that a plain replay clears,
// and the race where another worker already reconciled the lines, which
// comes back as ErrAlreadyReconciled for the caller to treat as settled.
func (c *client) ReconcileLines(ctx context.Context, lineIDs []int64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var raw json.RawMessage
	err = c.callObject(ctx, ModelMoveLine, "reconcile", []any{lineIDs}, nil, &raw)

	if err != nil && strings.Contains(err.Error(), "cannot marshal None") {
		xlog.Warn(ctx, logMessage,
			xlog.String("status", "marshal error from reconcile, replaying once"),
			xlog.Any("line_ids", lineIDs))

		if c.metrics != nil {
			c.metrics.GetReconPrometheus().RecordRetry()
		}

		err = c.callObject(ctx, ModelMoveLine, "reconcile", []any{lineIDs}, nil, &raw)
	}

	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already reconciled") {
			return common.ErrAlreadyReconciled
		}
		return err
	}

	return nil
}

func (c *client) SearchMovesByReference(ctx context.Context, reference string) (moveIDs []int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	domain := []any{[]any{"ref", "=", reference}}
	if c.companyID > 0 {
		domain = append(domain, []any{"company_id", "=", c.companyID})
	}

	err = c.callObject(ctx, ModelMove, "search",
		[]any{domain},
		map[string]any{"limit": 10},
		&moveIDs)
	if err != nil {
		return nil, err
	}

	return moveIDs, nil
}

// FindOrCreatePartner looks a partner up by exact name and creates it when
// the ledger has none. Callers treat failures here as non-fatal, a missing
// partner only costs the tagging on the bank lines.
func (c *client) FindOrCreatePartner(ctx context.Context, name string) (partnerID int64, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	var ids []int64
	err = c.callObject(ctx, ModelPartner, "search",
		[]any{[]any{[]any{"name", "=", name}}},
		map[string]any{"limit": 1},
		&ids)
	if err != nil {
		return 0, err
	}

	if len(ids) > 0 {
		return ids[0], nil
	}

	err = c.callObject(ctx, ModelPartner, "create",
		[]any{map[string]any{"name": name}}, nil, &partnerID)
	if err != nil {
		return 0, err
	}

	xlog.Info(ctx, logMessage,
		xlog.String("status", "created partner"),
		xlog.String("name", name),
		xlog.Int64("partner_id", partnerID))

	return partnerID, nil
}

func (c *client) ensureUID(ctx context.Context) (int64, error) {
	c.mu.Lock()
	uid := c.uid
	c.mu.Unlock()

	if uid != 0 {
		return uid, nil
	}

	return c.Authenticate(ctx)
}

func (c *client) callObject(ctx context.Context, model, method string, args []any, kwargs map[string]any, out any) error {
	uid, err := c.ensureUID(ctx)
	if err != nil {
		return err
	}

	rpcArgs := []any{c.database, uid, c.apiKey, model, method, args}
	if kwargs != nil {
		rpcArgs = append(rpcArgs, kwargs)
	}

	return c.call(ctx, "object", "execute_kw", rpcArgs, fmt.Sprintf("%s.%s", model, method), out)
}

func (c *client) call(ctx context.Context, service, method string, args []any, opLabel string, out any) (err error) {
	startTime := time.Now()
	url := fmt.Sprintf("%s/jsonrpc", c.baseURL)

	reqBody := rpcRequest{
		Jsonrpc: "2.0",
		Method:  "call",
		Params:  rpcParams{Service: service, Method: method, Args: args},
		ID:      atomic.AddInt64(&c.rpcID, 1),
	}

	httpRes, err := c.httpClient.
		R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json;  charset=utf-8").
		SetHeader("X-Correlation-Id", ctxdata.GetCorrelationId(ctx)).
		SetBody(reqBody).
		Post(url)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrLedgerConnection, err)
	}

	defer func() {
		if err != nil {
			xlog.Warn(ctx, logMessage,
				xlog.String("url", url),
				xlog.String("op", opLabel),
				xlog.Err(err))
		}
		if c.metrics != nil {
			c.metrics.GetHTTPClientPrometheus().Record(time.Since(startTime), SERVICE_NAME, opLabel, url, httpRes.StatusCode())
		}
	}()

	if httpRes.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: invalid response http code: got %d", common.ErrLedgerConnection, httpRes.StatusCode())
	}

	var res rpcResponse
	if err = json.Unmarshal(httpRes.Body(), &res); err != nil {
		return fmt.Errorf("%w: error unmarshal response: %v", common.ErrLedgerTransient, err)
	}

	if res.Error != nil {
		return c.classify(*res.Error)
	}

	if out != nil && len(res.Result) > 0 {
		if err = json.Unmarshal(res.Result, out); err != nil {
			return fmt.Errorf("%w: error unmarshal result: %v", common.ErrLedgerTransient, err)
		}
	}

	return nil
}

func (c *client) classify(rpcErr rpcError) error {
	msg := strings.ToLower(rpcErr.Error())
	if strings.Contains(msg, "access denied") || strings.Contains(msg, "accessdenied") ||
		rpcErr.Data.ExceptionType == "access_denied" {
		return fmt.Errorf("%w: %v", common.ErrLedgerAuth, rpcErr)
	}

	return fmt.Errorf("%w: %v", common.ErrLedgerTransient, rpcErr)
}
