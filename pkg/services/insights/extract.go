package insights

import (
	"math"
	"strconv"
	"strings"

	"github.com/de-tools/ledger-atlas/pkg/models/report"
)

// maxDepth bounds every recursive walk. Report documents are tree-shaped in
// practice; a node at this depth is still examined but treated as childless.
const maxDepth = 10

// ExtractValue walks the report depth-first and returns the first amount
// whose row label matches one of the candidate labels, checking leaf Data
// rows and section Summary rows at every level. The boolean is false when no
// candidate matched anywhere, so callers can tell "absent" from a true zero.
func ExtractValue(rep *report.Report, labels []string) (float64, bool) {
	return extractFromRows(rep.Children(), labels, 0)
}

func extractFromRows(rows []report.Row, labels []string, depth int) (float64, bool) {
	for i := range rows {
		row := &rows[i]

		if row.IsData() {
			if v, ok := matchColumns(row.ColData, labels); ok {
				return v, true
			}
			continue
		}

		if row.Summary != nil {
			if v, ok := matchColumns(row.Summary.ColData, labels); ok {
				return v, true
			}
		}

		if depth < maxDepth {
			if v, ok := extractFromRows(row.Children(), labels, depth+1); ok {
				return v, true
			}
		}
	}

	return 0, false
}

// matchColumns compares column 0 against the candidates in order and parses
// column 1 on the first hit. A row whose amount does not parse is treated as
// if it had no value at all.
func matchColumns(cols []report.Col, labels []string) (float64, bool) {
	if len(cols) < 2 {
		return 0, false
	}

	rowLabel := strings.ToLower(cols[0].Value)
	for _, candidate := range labels {
		if strings.Contains(rowLabel, strings.ToLower(candidate)) {
			return parseAmount(cols[1].Value)
		}
	}
	return 0, false
}

// parseAmount converts a comma-grouped decimal string to a float. Anything
// that does not parse to a finite number counts as absent, never as zero.
func parseAmount(s string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
