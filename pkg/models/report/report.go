package report

import (
	"bytes"
	"encoding/json"
)

type Kind string

const (
	KindProfitAndLoss Kind = "ProfitAndLoss"
	KindBalanceSheet  Kind = "BalanceSheet"
)

// Report is the top-level document returned by the accounting API's
// financial-report endpoints.
type Report struct {
	Header  Header  `json:"Header,omitempty"`
	Columns Columns `json:"Columns,omitempty"`
	Rows    Rows    `json:"Rows,omitempty"`
}

type Header struct {
	ReportName string `json:"ReportName,omitempty"`
	StartDate  string `json:"StartPeriod,omitempty"`
	EndDate    string `json:"EndPeriod,omitempty"`
	Currency   string `json:"Currency,omitempty"`
}

type Columns struct {
	Column []Column `json:"Column,omitempty"`
}

type Column struct {
	Title string `json:"ColTitle,omitempty"`
	Type  string `json:"ColType,omitempty"`
}

// Row is one node of the report tree. Which fields are present determines
// its role: Type == "Data" marks a leaf account line, Header labels a
// section, Summary carries a section total. Roles are not exclusive - a
// section can carry Header, Summary and child Rows at once.
type Row struct {
	Type    string   `json:"type,omitempty"`
	Group   string   `json:"group,omitempty"`
	Header  *RowData `json:"Header,omitempty"`
	Summary *RowData `json:"Summary,omitempty"`
	ColData []Col    `json:"ColData,omitempty"`
	Rows    *Rows    `json:"Rows,omitempty"`
}

type RowData struct {
	ColData []Col `json:"ColData,omitempty"`
}

type Col struct {
	Value string `json:"value"`
	ID    string `json:"id,omitempty"`
}

// Rows appears on the wire either as a bare array of rows or as an object
// wrapping the array under a "Row" key. Both decode into the same slice so
// the walkers never see the difference.
type Rows struct {
	Row []Row `json:"Row,omitempty"`
}

func (r *Rows) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, &r.Row)
	}

	type wrapped struct {
		Row []Row `json:"Row"`
	}
	var w wrapped
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return err
	}
	r.Row = w.Row
	return nil
}

// Children normalizes a node's subtree to a flat slice. Every recursive
// walk goes through here.
func (r *Row) Children() []Row {
	if r.Rows == nil {
		return nil
	}
	return r.Rows.Row
}

// Children returns the top-level rows of the document.
func (r *Report) Children() []Row {
	if r == nil {
		return nil
	}
	return r.Rows.Row
}

// IsData reports whether the row is a leaf account line.
func (r *Row) IsData() bool {
	return r.Type == "Data" && len(r.ColData) > 0
}

// Label returns the first column value of a row-data block, or "" when the
// block is missing or empty.
func (d *RowData) Label() string {
	if d == nil || len(d.ColData) == 0 {
		return ""
	}
	return d.ColData[0].Value
}
