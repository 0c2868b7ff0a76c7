package report

import (
	"encoding/json"
	"testing"
)

func TestRows_UnmarshalJSON_WrappedObject(t *testing.T) {
	// Given
	payload := `{"Row":[{"type":"Data","ColData":[{"value":"Rent"},{"value":"1,000.00"}]}]}`

	// When
	var rows Rows
	err := json.Unmarshal([]byte(payload), &rows)

	// Then
	if err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(rows.Row) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows.Row))
	}
	if !rows.Row[0].IsData() {
		t.Errorf("expected a data row, got %+v", rows.Row[0])
	}
}

func TestRows_UnmarshalJSON_BareArray(t *testing.T) {
	// Given
	payload := `[{"Header":{"ColData":[{"value":"EXPENSES"}]}},{"type":"Data","ColData":[{"value":"Utilities"},{"value":"500.00"}]}]`

	// When
	var rows Rows
	err := json.Unmarshal([]byte(payload), &rows)

	// Then
	if err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if len(rows.Row) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows.Row))
	}
	if rows.Row[0].Header.Label() != "EXPENSES" {
		t.Errorf("expected EXPENSES header, got %q", rows.Row[0].Header.Label())
	}
}

func TestRows_UnmarshalJSON_Null(t *testing.T) {
	var rows Rows
	if err := json.Unmarshal([]byte("null"), &rows); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if rows.Row != nil {
		t.Errorf("expected nil rows, got %v", rows.Row)
	}
}

func TestRow_Children_NestedWrappedRows(t *testing.T) {
	// Given
	payload := `{
		"Header": {"ColData": [{"value": "EXPENSES"}]},
		"Rows": {"Row": [
			{"type": "Data", "ColData": [{"value": "Rent"}, {"value": "1,000.00"}]}
		]},
		"Summary": {"ColData": [{"value": "Total Expenses"}, {"value": "1,000.00"}]}
	}`

	var row Row
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	// When
	children := row.Children()

	// Then
	if len(children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(children))
	}
	if children[0].ColData[0].Value != "Rent" {
		t.Errorf("expected Rent, got %q", children[0].ColData[0].Value)
	}
	if row.Summary.Label() != "Total Expenses" {
		t.Errorf("expected Total Expenses summary, got %q", row.Summary.Label())
	}
}

func TestRow_Children_NoRows(t *testing.T) {
	row := Row{Type: "Data"}
	if got := row.Children(); got != nil {
		t.Errorf("expected nil children, got %v", got)
	}
}

func TestRowData_Label_Empty(t *testing.T) {
	var d *RowData
	if got := d.Label(); got != "" {
		t.Errorf("expected empty label on nil row data, got %q", got)
	}
}
