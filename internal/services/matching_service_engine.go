package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/common/localstorage"
	"github.com/atlasledger/go-bank-recon/internal/common/textnorm"
	"github.com/atlasledger/go-bank-recon/internal/common/xlog"
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/models"

	"golang.org/x/sync/errgroup"
)

// storageDocs buckets open documents by absolute amount signature, so a
// single-pass lookup reads exactly the documents the amount gate would
// accept for a transaction.
type storageDocs localstorage.LocalStorage[[]models.FinancialDocument]

const (
	stageAmountGate  = "amount_gate"
	stageSingle      = "single"
	stageCombination = "combination"
	stageValidator   = "validator"
)

const (
	defaultMaxCombinationSize  = 4
	defaultPartnerThreshold    = 0.85
	defaultMinSharedKeywords   = 2
	defaultKeywordOverlapRatio = 0.5
	defaultWorkerCount         = 4

	// maxSubsetAttempts caps the subset-sum search per target so a
	// degenerate pool cannot stall the whole run.
	maxSubsetAttempts = 5000
)

// matchEngine holds the state of one matching run. The parallel phase
// only writes worker-local slots; every pool mutation goes through the
// serialized acceptance path.
type matchEngine struct {
	conf config.MatchingConfig

	txns    []models.BankTransaction
	docPool storageDocs

	evals            []singleEval
	results          []models.MatchResult
	consumed         map[string]bool
	combinationTried []bool
	trace            []models.TraceEntry
}

// singleEval is the parallel-phase output for one transaction: its
// passing candidates ranked best-first, plus what the rejections looked
// like so the validator can assign a reason code later.
type singleEval struct {
	candidates   []models.MatchCandidate
	amountHits   int
	dateRejected bool
	simRejected  bool
	// consumedAway marks that every passing candidate was taken by an
	// earlier transaction before this one got its turn.
	consumedAway bool
	trace        []models.TraceEntry
}

func (m *matching) runEngine(ctx context.Context, txns []models.BankTransaction, docs []models.FinancialDocument) ([]models.MatchResult, []models.TraceEntry, error) {
	eng, err := newMatchEngine(m.srv.conf.Matching, txns)
	if err != nil {
		return nil, nil, err
	}
	defer eng.close(ctx)

	if err := eng.loadDocuments(docs); err != nil {
		return nil, nil, err
	}

	if err := eng.singlePass(ctx); err != nil {
		return nil, nil, err
	}

	if m.srv.conf.FeatureFlag.EnableCombinationMatching {
		if err := eng.combinationPass(ctx); err != nil {
			return nil, nil, err
		}
	}

	eng.finalize()

	return eng.results, eng.trace, nil
}

func newMatchEngine(conf config.MatchingConfig, txns []models.BankTransaction) (*matchEngine, error) {
	if conf.MaxCombinationSize <= 1 {
		conf.MaxCombinationSize = defaultMaxCombinationSize
	}
	if conf.PartnerNameThreshold <= 0 {
		conf.PartnerNameThreshold = defaultPartnerThreshold
	}
	if conf.MinSharedKeywords <= 0 {
		conf.MinSharedKeywords = defaultMinSharedKeywords
	}
	if conf.KeywordOverlapRatio <= 0 {
		conf.KeywordOverlapRatio = defaultKeywordOverlapRatio
	}
	if conf.WorkerCount <= 0 {
		conf.WorkerCount = defaultWorkerCount
	}

	docPool, err := localstorage.NewInMemoryBadgerStorage[[]models.FinancialDocument]()
	if err != nil {
		return nil, err
	}

	return &matchEngine{
		conf:             conf,
		txns:             txns,
		docPool:          docPool,
		evals:            make([]singleEval, len(txns)),
		results:          make([]models.MatchResult, len(txns)),
		consumed:         make(map[string]bool),
		combinationTried: make([]bool, len(txns)),
	}, nil
}

func (e *matchEngine) close(ctx context.Context) {
	if err := e.docPool.Close(); err != nil {
		xlog.Warnf(ctx, "failed to close document pool: %v", err)
	}
	if err := e.docPool.Clean(); err != nil {
		xlog.Warnf(ctx, "failed to clean document pool: %v", err)
	}
}

func (e *matchEngine) loadDocuments(docs []models.FinancialDocument) error {
	for _, doc := range docs {
		key := amountKey(doc.Amount)
		bucket, err := e.docPool.Get(key)
		if err != nil {
			return err
		}
		if err := e.docPool.Set(key, append(bucket, doc)); err != nil {
			return err
		}
	}
	return nil
}

// amountKey is the absolute amount at exact precision.
func amountKey(d models.Decimal) string {
	return d.Abs().String()
}

// singlePass evaluates every transaction against its amount bucket in
// parallel, then accepts candidates sequentially so a document can only
// ever leave the pool once.
func (e *matchEngine) singlePass(ctx context.Context) error {
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(e.conf.WorkerCount)

	for i := range e.txns {
		i := i
		group.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ev, err := e.evaluateTransaction(e.txns[i])
			if err != nil {
				return err
			}
			e.evals[i] = ev
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	for i := range e.txns {
		ev := &e.evals[i]
		e.trace = append(e.trace, ev.trace...)

		for _, cand := range ev.candidates {
			doc := cand.Documents[0]
			if e.consumed[docKey(doc)] {
				continue
			}
			if err := e.consumeDocument(doc); err != nil {
				return err
			}
			e.results[i] = models.MatchResult{
				Transaction:      cand.Transaction,
				Documents:        cand.Documents,
				Matched:          true,
				Kind:             models.MatchKindSingle,
				Context:          cand.Context,
				DateDiffDays:     cand.DateDiffDays,
				PartnerScore:     cand.PartnerScore,
				DescriptionScore: cand.DescriptionScore,
			}
			break
		}
		if !e.results[i].Matched {
			ev.consumedAway = len(ev.candidates) > 0
			e.results[i] = models.MatchResult{Transaction: e.txns[i]}
		}
	}

	return nil
}

func (e *matchEngine) evaluateTransaction(txn models.BankTransaction) (singleEval, error) {
	var ev singleEval

	bucket, err := e.docPool.Get(amountKey(txn.Amount))
	if err != nil {
		return ev, err
	}

	ev.amountHits = len(bucket)
	if len(bucket) == 0 {
		ev.trace = append(ev.trace, models.TraceEntry{
			Stage:         stageAmountGate,
			TransactionID: txn.ID,
			Target:        txn.Amount,
			Verdict:       models.TraceVerdictRejected,
			Reason:        string(models.ReasonAmountMismatch),
			Detail:        "no open document at this amount",
		})
		return ev, nil
	}

	for _, doc := range bucket {
		cand, entry, passed := e.evaluatePair(txn, doc)
		ev.trace = append(ev.trace, entry)
		if passed {
			ev.candidates = append(ev.candidates, cand)
			continue
		}
		if entry.Reason == string(models.ReasonDateOutOfRange) {
			ev.dateRejected = true
		} else {
			ev.simRejected = true
		}
	}

	// Ties break on highest combined similarity, then smallest date
	// distance, then document id to stay deterministic.
	sort.SliceStable(ev.candidates, func(a, b int) bool {
		ca, cb := ev.candidates[a], ev.candidates[b]
		if ca.CombinedScore() != cb.CombinedScore() {
			return ca.CombinedScore() > cb.CombinedScore()
		}
		if ca.DateDiffDays != cb.DateDiffDays {
			return ca.DateDiffDays < cb.DateDiffDays
		}
		return ca.Documents[0].ID < cb.Documents[0].ID
	})

	return ev, nil
}

// evaluatePair runs the flexible stage on one amount-gated pairing:
// context classification, similarity scoring, date window. The amount is
// never re-checked here.
func (e *matchEngine) evaluatePair(txn models.BankTransaction, doc models.FinancialDocument) (models.MatchCandidate, models.TraceEntry, bool) {
	bizCtx := classifyContext(txn, doc)
	dateDiff := common.DaysBetween(txn.Date, doc.Date)

	partnerScore := partnerSimilarity(txn, doc)
	shared, ratio := textnorm.Overlap(txn.Description, doc.Description)

	flexiblePass := partnerScore >= e.conf.PartnerNameThreshold ||
		shared >= e.conf.MinSharedKeywords || ratio >= e.conf.KeywordOverlapRatio
	datePass := dateDiff <= bizCtx.DateToleranceDays()

	cand := models.MatchCandidate{
		Transaction:      txn,
		Documents:        []models.FinancialDocument{doc},
		Kind:             models.MatchKindSingle,
		Context:          bizCtx,
		AmountExact:      true,
		DateDiffDays:     dateDiff,
		PartnerScore:     partnerScore,
		DescriptionScore: ratio,
	}

	entry := models.TraceEntry{
		Stage:         stageSingle,
		TransactionID: txn.ID,
		DocumentIDs:   []int64{doc.ID},
		Sum:           doc.Amount,
		Target:        txn.Amount,
		Detail: fmt.Sprintf("context=%s date_diff=%dd partner=%.2f keywords=%d/%.2f",
			bizCtx, dateDiff, partnerScore, shared, ratio),
	}

	switch {
	case flexiblePass && datePass:
		entry.Verdict = models.TraceVerdictExact
		return cand, entry, true
	case flexiblePass:
		entry.Verdict = models.TraceVerdictRejected
		entry.Reason = string(models.ReasonDateOutOfRange)
	default:
		entry.Verdict = models.TraceVerdictRejected
		entry.Reason = string(models.ReasonNoFlexibleMatch)
	}

	return cand, entry, false
}

// partnerSimilarity compares the document counter-party against both the
// transaction's counter-party field and its narrative, since bank feeds
// often carry the payee only inside the description.
func partnerSimilarity(txn models.BankTransaction, doc models.FinancialDocument) float64 {
	score := textnorm.Similarity(txn.PartnerName, doc.PartnerName)
	if s := textnorm.Similarity(txn.Description, doc.PartnerName); s > score {
		score = s
	}
	return score
}

// consumeDocument removes a document from its amount bucket and records
// it as spent. Callers run serialized.
func (e *matchEngine) consumeDocument(doc models.FinancialDocument) error {
	e.consumed[docKey(doc)] = true

	key := amountKey(doc.Amount)
	bucket, err := e.docPool.Get(key)
	if err != nil {
		return err
	}

	rest := make([]models.FinancialDocument, 0, len(bucket))
	for _, d := range bucket {
		if d.Type == doc.Type && d.ID == doc.ID {
			continue
		}
		rest = append(rest, d)
	}

	if len(rest) == 0 {
		return e.docPool.Delete(key)
	}
	return e.docPool.Set(key, rest)
}

// leftoverDocuments drains the pool into a deterministic order for the
// combination stage.
func (e *matchEngine) leftoverDocuments() ([]models.FinancialDocument, error) {
	var left []models.FinancialDocument
	err := e.docPool.ForEach(func(_ string, bucket []models.FinancialDocument) error {
		left = append(left, bucket...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(left, func(a, b int) bool {
		if !left[a].Date.Equal(left[b].Date) {
			return left[a].Date.Before(left[b].Date)
		}
		if left[a].Type != left[b].Type {
			return left[a].Type < left[b].Type
		}
		return left[a].ID < left[b].ID
	})

	return left, nil
}

// finalize is the validator stage: confidence for committed matches,
// reason code and expected-type hint for everything else.
func (e *matchEngine) finalize() {
	for i := range e.results {
		res := &e.results[i]
		if res.Matched {
			res.Confidence = assignConfidence(*res, e.conf.PartnerNameThreshold)
			continue
		}

		ev := e.evals[i]
		switch {
		case ev.amountHits > 0 && ev.dateRejected && !ev.simRejected:
			res.Reason = models.ReasonDateOutOfRange
		case ev.consumedAway:
			// The only documents at this amount went to earlier
			// transactions, so by now the pool has none left.
			res.Reason = models.ReasonAmountMismatch
		case ev.amountHits > 0:
			res.Reason = models.ReasonNoFlexibleMatch
		case e.combinationTried[i]:
			res.Reason = models.ReasonNoCombinationFound
		default:
			res.Reason = models.ReasonAmountMismatch
		}
		res.ExpectedType = expectedTransactionType(e.txns[i])

		e.trace = append(e.trace, models.TraceEntry{
			Stage:         stageValidator,
			TransactionID: e.txns[i].ID,
			Target:        e.txns[i].Amount,
			Verdict:       models.TraceVerdictRejected,
			Reason:        string(res.Reason),
			Detail:        fmt.Sprintf("expected=%s", res.ExpectedType),
		})
	}
}

// assignConfidence grades a committed match. A single with a same-day
// date and a strong partner score is HIGH; a single that passed on the
// flexible criteria is MEDIUM; combinations carry no similarity evidence
// and stay LOW.
func assignConfidence(res models.MatchResult, partnerThreshold float64) models.Confidence {
	if res.Kind != models.MatchKindSingle {
		return models.ConfidenceLow
	}
	if res.DateDiffDays == 0 && res.PartnerScore >= partnerThreshold {
		return models.ConfidenceHigh
	}
	return models.ConfidenceMedium
}

func buildMatchSummary(results []models.MatchResult, totalDocs int) models.MatchSummary {
	summary := models.MatchSummary{
		TotalTransactions: len(results),
		TotalDocuments:    totalDocs,
		RejectionCounts:   map[models.UnmatchedReason]int{},
	}

	for _, res := range results {
		switch {
		case res.Matched && res.Kind == models.MatchKindSingle:
			summary.SinglePass++
		case res.Matched:
			summary.CombinationPass++
		default:
			summary.Unmatched++
			summary.RejectionCounts[res.Reason]++
		}
	}

	summary.MatchRate = 100.0
	if len(results) > 0 {
		summary.MatchRate = float64(summary.SinglePass+summary.CombinationPass) / float64(len(results)) * 100
	}

	switch {
	case summary.MatchRate >= 90:
		summary.Status = models.SummaryStatusPass
	case summary.MatchRate >= 60:
		summary.Status = models.SummaryStatusReview
	default:
		summary.Status = models.SummaryStatusFail
	}

	return summary
}

// Context keyword buckets, checked highest priority first. Single words
// match whole tokens, phrases match as substrings of the normalized
// text. Keywords are stored pre-normalized, the Greek ones without
// tonos.
var contextBuckets = []struct {
	context  models.BusinessContext
	keywords []string
}{
	{models.ContextCorporateAction, []string{
		"share capital", "shares", "ordinary", "incorporation", "corporate", "equity", "investment",
	}},
	{models.ContextConstructionProject, []string{
		"topographical", "construction", "building", "project", "development",
		"engineering", "structural", "architectural", "planning", "permit",
		"τοπογραφικο", "διαγραμμα", "στασεων", "τεμαχιο", "ετοιμασια",
	}},
	{models.ContextProfessionalServices, []string{
		"architecture", "design", "topographical", "survey", "engineering",
		"legal", "accounting", "consulting", "professional", "advisory",
		"audit", "tax", "compliance", "architectural", "planning",
		"τοπογραφικο", "διαγραμμα",
	}},
	{models.ContextGovernment, []string{
		"registrar", "government", "ministry", "department", "republic",
		"cyprus", "intellectual property", "social insurance", "vat", "tax",
		"customs", "regulatory",
	}},
}

// classifyContext infers the business context of a pairing from the
// wording on both sides. The first bucket hit wins; buckets are ordered
// so CORPORATE_ACTION outranks everything else.
func classifyContext(txn models.BankTransaction, doc models.FinancialDocument) models.BusinessContext {
	text := textnorm.Normalize(strings.Join([]string{
		txn.Description, txn.PartnerName, doc.Description, doc.PartnerName,
	}, " "))
	tokens := tokenSet(text)

	for _, bucket := range contextBuckets {
		if matchesBucket(text, tokens, bucket.keywords) {
			return bucket.context
		}
	}

	return models.ContextStandard
}

func tokenSet(normalized string) map[string]bool {
	set := make(map[string]bool, 16)
	for _, tok := range strings.Fields(normalized) {
		set[tok] = true
	}
	return set
}

func matchesBucket(text string, tokens map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(kw, " ") {
			if strings.Contains(text, kw) {
				return true
			}
			continue
		}
		if tokens[kw] {
			return true
		}
	}
	return false
}

var expectedTypeKeywords = []struct {
	expected models.ExpectedType
	keywords []string
}{
	{models.ExpectedBankFees, []string{"fee", "fees", "charge", "charges", "commission", "προμηθεια", "εξοδα"}},
	{models.ExpectedWages, []string{"salary", "salaries", "wages", "payroll", "μισθοδοσια", "μισθοι"}},
	{models.ExpectedGovernmentPayment, []string{"registrar", "government", "ministry", "social insurance", "vat", "tax", "customs", "φπα", "εφορια"}},
}

// expectedTransactionType guesses what kind of document an unmatched
// transaction is still waiting for, from its sign and wording, so manual
// review starts in the right queue.
func expectedTransactionType(txn models.BankTransaction) models.ExpectedType {
	if txn.Amount.IsZero() {
		return models.ExpectedManualReview
	}
	if !txn.IsOutgoing() {
		return models.ExpectedInvoice
	}

	text := textnorm.Normalize(txn.Description + " " + txn.PartnerName)
	tokens := tokenSet(text)
	for _, group := range expectedTypeKeywords {
		if matchesBucket(text, tokens, group.keywords) {
			return group.expected
		}
	}

	return models.ExpectedBill
}
