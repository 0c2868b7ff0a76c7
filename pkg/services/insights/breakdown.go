package insights

import (
	"sort"
	"strings"

	"github.com/de-tools/ledger-atlas/pkg/models/domain"
	"github.com/de-tools/ledger-atlas/pkg/models/report"
)

// expenseSections are the header labels that mark a branch as expense-like.
// Matching is case-insensitive substring.
var expenseSections = []string{
	"expenses",
	"other expenses",
	"cost of goods sold",
	"cost of sales",
	"cogs",
}

const maxBreakdownEntries = 10

// ExtractBreakdown collects the individual expense-category rows of a
// report, computes each category's share of the collected total, and returns
// the top entries by value. Subtotal rows (label containing "total") and
// rows with non-positive or unparsable amounts are dropped silently.
func ExtractBreakdown(rep *report.Report) []domain.ExpenseEntry {
	entries := collectCategories(rep.Children(), false, 0, nil)
	if len(entries) == 0 {
		return nil
	}

	var total float64
	for _, e := range entries {
		total += e.Value
	}
	if total > 0 {
		for i := range entries {
			entries[i].Percentage = entries[i].Value / total * 100
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > maxBreakdownEntries {
		entries = entries[:maxBreakdownEntries]
	}
	return entries
}

// collectCategories threads the "inside an expense-like section" flag
// through the recursion as an explicit parameter: once a header flips it on
// it stays on for the whole subtree, because category rows sit several
// levels below their section header.
func collectCategories(rows []report.Row, inSection bool, depth int, acc []domain.ExpenseEntry) []domain.ExpenseEntry {
	for i := range rows {
		row := &rows[i]

		branchInSection := inSection || isExpenseHeader(row.Header)

		if branchInSection && row.IsData() {
			if entry, ok := categoryEntry(row.ColData); ok {
				acc = append(acc, entry)
			}
		}

		if depth < maxDepth {
			acc = collectCategories(row.Children(), branchInSection, depth+1, acc)
		}
	}

	return acc
}

func isExpenseHeader(header *report.RowData) bool {
	label := strings.ToLower(header.Label())
	if label == "" {
		return false
	}
	for _, section := range expenseSections {
		if strings.Contains(label, section) {
			return true
		}
	}
	return false
}

func categoryEntry(cols []report.Col) (domain.ExpenseEntry, bool) {
	if len(cols) < 2 {
		return domain.ExpenseEntry{}, false
	}

	name := cols[0].Value
	if strings.Contains(strings.ToLower(name), "total") {
		return domain.ExpenseEntry{}, false
	}

	v, ok := parseAmount(cols[1].Value)
	if !ok || v <= 0 {
		return domain.ExpenseEntry{}, false
	}

	return domain.ExpenseEntry{Name: name, Value: v}, true
}
