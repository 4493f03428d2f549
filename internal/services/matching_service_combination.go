package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/atlasledger/go-bank-recon/internal/common"
	"github.com/atlasledger/go-bank-recon/internal/models"

	"github.com/shopspring/decimal"
)

// subsetItem is one candidate member of a subset-sum search, carrying
// its position in the caller's slice and its absolute amount.
type subsetItem struct {
	pos int
	abs decimal.Decimal
}

// combinationPass runs after the single pass over whatever is left: one
// leftover document against several transactions first, then one
// transaction against several documents. Runs serialized, the pool is
// mutated on every acceptance.
func (e *matchEngine) combinationPass(ctx context.Context) error {
	leftovers, err := e.leftoverDocuments()
	if err != nil {
		return err
	}
	for _, doc := range leftovers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.consumed[docKey(doc)] {
			continue
		}
		members := e.findTransactionSubset(doc)
		if members == nil {
			continue
		}
		if err := e.acceptTransactionSubset(doc, members); err != nil {
			return err
		}
	}

	leftovers, err = e.leftoverDocuments()
	if err != nil {
		return err
	}
	for i := range e.txns {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.results[i].Matched {
			continue
		}
		subset := e.findDocumentSubset(i, leftovers)
		if subset == nil {
			continue
		}
		if err := e.acceptDocumentSubset(i, subset); err != nil {
			return err
		}
	}

	return nil
}

// findTransactionSubset looks for unmatched transactions whose absolute
// amounts sum exactly to the document's. Candidates are split by sign
// before the search, so a subset can never mix inflows and outflows.
func (e *matchEngine) findTransactionSubset(doc models.FinancialDocument) []int {
	target := doc.Amount.Abs()
	if target.IsZero() {
		return nil
	}

	var negatives, positives []subsetItem
	for i, txn := range e.txns {
		if e.results[i].Matched || txn.Amount.IsZero() {
			continue
		}
		if !e.memberDateOK(txn, doc) {
			continue
		}
		abs := txn.Amount.Abs()
		if abs.GreaterThan(target) {
			continue
		}
		item := subsetItem{pos: i, abs: abs}
		if txn.IsOutgoing() {
			negatives = append(negatives, item)
		} else {
			positives = append(positives, item)
		}
	}

	attempts := 0
	onAttempt := func(chosen []subsetItem, sum decimal.Decimal, exact bool) {
		ids := make([]string, len(chosen))
		for i, item := range chosen {
			ids[i] = e.txns[item.pos].ID
			e.combinationTried[item.pos] = true
		}
		entry := models.TraceEntry{
			Stage:       stageCombination,
			DocumentIDs: []int64{doc.ID},
			Sum:         models.NewDecimalFromExternal(sum),
			Target:      models.NewDecimalFromExternal(target),
			Verdict:     models.TraceVerdictExact,
			Detail:      "transactions=" + strings.Join(ids, "+"),
		}
		if !exact {
			entry.Verdict = models.TraceVerdictRejected
			entry.Reason = "sum_mismatch"
		}
		e.trace = append(e.trace, entry)
	}

	for _, group := range [][]subsetItem{negatives, positives} {
		if len(group) < 2 {
			continue
		}
		if found := searchSubset(target, group, e.conf.MaxCombinationSize, &attempts, onAttempt); found != nil {
			members := make([]int, len(found))
			for i, item := range found {
				members[i] = item.pos
			}
			return members
		}
	}

	if attempts >= maxSubsetAttempts {
		e.trace = append(e.trace, models.TraceEntry{
			Stage:       stageCombination,
			DocumentIDs: []int64{doc.ID},
			Target:      models.NewDecimalFromExternal(target),
			Verdict:     models.TraceVerdictRejected,
			Reason:      "attempt_budget_exhausted",
			Detail:      fmt.Sprintf("stopped after %d subsets", attempts),
		})
	}

	return nil
}

func (e *matchEngine) acceptTransactionSubset(doc models.FinancialDocument, members []int) error {
	if err := e.consumeDocument(doc); err != nil {
		return err
	}
	for _, i := range members {
		txn := e.txns[i]
		e.results[i] = models.MatchResult{
			Transaction:  txn,
			Documents:    []models.FinancialDocument{doc},
			Matched:      true,
			Kind:         models.MatchKindTransactionCombination,
			Context:      models.ContextCombination,
			DateDiffDays: common.DaysBetween(txn.Date, doc.Date),
		}
	}
	return nil
}

// findDocumentSubset looks for leftover documents whose absolute amounts
// sum exactly to the transaction's.
func (e *matchEngine) findDocumentSubset(txnIdx int, leftovers []models.FinancialDocument) []models.FinancialDocument {
	txn := e.txns[txnIdx]
	target := txn.Amount.Abs()
	if target.IsZero() {
		return nil
	}

	var negatives, positives []subsetItem
	for i, doc := range leftovers {
		if e.consumed[docKey(doc)] || doc.Amount.IsZero() {
			continue
		}
		if !e.memberDateOK(txn, doc) {
			continue
		}
		abs := doc.Amount.Abs()
		if abs.GreaterThan(target) {
			continue
		}
		item := subsetItem{pos: i, abs: abs}
		if doc.Amount.IsNegative() {
			negatives = append(negatives, item)
		} else {
			positives = append(positives, item)
		}
	}

	attempts := 0
	onAttempt := func(chosen []subsetItem, sum decimal.Decimal, exact bool) {
		e.combinationTried[txnIdx] = true
		ids := make([]int64, len(chosen))
		keys := make([]string, len(chosen))
		for i, item := range chosen {
			ids[i] = leftovers[item.pos].ID
			keys[i] = docKey(leftovers[item.pos])
		}
		entry := models.TraceEntry{
			Stage:         stageCombination,
			TransactionID: txn.ID,
			DocumentIDs:   ids,
			Sum:           models.NewDecimalFromExternal(sum),
			Target:        models.NewDecimalFromExternal(target),
			Verdict:       models.TraceVerdictExact,
			Detail:        "documents=" + strings.Join(keys, "+"),
		}
		if !exact {
			entry.Verdict = models.TraceVerdictRejected
			entry.Reason = "sum_mismatch"
		}
		e.trace = append(e.trace, entry)
	}

	for _, group := range [][]subsetItem{positives, negatives} {
		if len(group) < 2 {
			continue
		}
		if found := searchSubset(target, group, e.conf.MaxCombinationSize, &attempts, onAttempt); found != nil {
			subset := make([]models.FinancialDocument, len(found))
			for i, item := range found {
				subset[i] = leftovers[item.pos]
			}
			return subset
		}
	}

	if attempts >= maxSubsetAttempts {
		e.trace = append(e.trace, models.TraceEntry{
			Stage:         stageCombination,
			TransactionID: txn.ID,
			Target:        models.NewDecimalFromExternal(target),
			Verdict:       models.TraceVerdictRejected,
			Reason:        "attempt_budget_exhausted",
			Detail:        fmt.Sprintf("stopped after %d subsets", attempts),
		})
	}

	return nil
}

func (e *matchEngine) acceptDocumentSubset(txnIdx int, subset []models.FinancialDocument) error {
	txn := e.txns[txnIdx]

	maxDiff := 0
	for _, doc := range subset {
		if err := e.consumeDocument(doc); err != nil {
			return err
		}
		if diff := common.DaysBetween(txn.Date, doc.Date); diff > maxDiff {
			maxDiff = diff
		}
	}

	e.results[txnIdx] = models.MatchResult{
		Transaction:  txn,
		Documents:    subset,
		Matched:      true,
		Kind:         models.MatchKindDocumentCombination,
		Context:      models.ContextCombination,
		DateDiffDays: maxDiff,
	}
	return nil
}

// memberDateOK bounds how far a combination member may sit from the
// target date. The window is the classified context's tolerance, widened
// to the combination floor when the classification is tighter.
func (e *matchEngine) memberDateOK(txn models.BankTransaction, doc models.FinancialDocument) bool {
	tolerance := models.ContextCombination.DateToleranceDays()
	if t := classifyContext(txn, doc).DateToleranceDays(); t > tolerance {
		tolerance = t
	}
	return common.DaysBetween(txn.Date, doc.Date) <= tolerance
}

// searchSubset is a depth-first exact subset-sum over amounts sorted
// ascending, so any partial sum past the target prunes the remaining
// branch. Every compared subset of two or more members is reported
// through onAttempt and counted against the shared attempt budget.
func searchSubset(target decimal.Decimal, items []subsetItem, maxSize int, attempts *int, onAttempt func(chosen []subsetItem, sum decimal.Decimal, exact bool)) []subsetItem {
	sorted := make([]subsetItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(a, b int) bool {
		return sorted[a].abs.LessThan(sorted[b].abs)
	})

	var found []subsetItem
	var walk func(start int, chosen []subsetItem, sum decimal.Decimal) bool
	walk = func(start int, chosen []subsetItem, sum decimal.Decimal) bool {
		if len(chosen) >= 2 {
			if *attempts >= maxSubsetAttempts {
				return false
			}
			*attempts++
			exact := sum.Equal(target)
			onAttempt(chosen, sum, exact)
			if exact {
				found = append([]subsetItem(nil), chosen...)
				return true
			}
		}
		if len(chosen) == maxSize {
			return false
		}
		for i := start; i < len(sorted); i++ {
			next := sum.Add(sorted[i].abs)
			if next.GreaterThan(target) {
				break
			}
			if walk(i+1, append(chosen, sorted[i]), next) {
				return true
			}
			if *attempts >= maxSubsetAttempts {
				return false
			}
		}
		return false
	}

	walk(0, nil, decimal.Zero)
	return found
}
