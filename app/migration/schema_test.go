package migration

import (
	"reflect"
	"testing"
)

func TestDecodeRows(t *testing.T) {
	schema := SheetSchema{
		Name: "Test",
		Columns: []Column{
			{Key: "a", Title: "A", Required: true},
			{Key: "b", Title: "B"},
			{Key: "c", Title: "C"},
		},
	}
	raw := [][]string{
		{"A", "B", "C"},
		{"1", "x", "y"},
		{"", "", ""},       // fully blank, dropped
		{"none", "-", "N/A"}, // placeholders only, dropped
		{"2", "z"},         // short row pads missing cells
	}

	rows := DecodeRows(schema, raw)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Num != 2 || rows[1].Num != 5 {
		t.Errorf("row numbers = %d, %d; want 2, 5", rows[0].Num, rows[1].Num)
	}
	if got := rows[0].Get("b"); got != "x" {
		t.Errorf("row 2 b = %q, want x", got)
	}
	if got := rows[1].Get("c"); got != "" {
		t.Errorf("short row c = %q, want empty", got)
	}
}

func TestMissingRequired(t *testing.T) {
	row := Row{Num: 2, Fields: map[string]string{
		"studentId": "STU001",
		"name":      "",
		"dob":       "",
	}}
	missing := StudentsSchema.MissingRequired(row)

	for _, key := range []string{"name", "dob", "gender", "className"} {
		found := false
		for _, m := range missing {
			if m == key {
				found = true
			}
		}
		if !found {
			t.Errorf("missing does not include %q: %v", key, missing)
		}
	}
	for _, m := range missing {
		if m == "studentId" {
			t.Errorf("studentId reported missing despite being present")
		}
	}
}

func TestSchemaHeaders(t *testing.T) {
	got := FeeReceiptsSchema.Headers()
	want := []string{
		"Receipt No", "Student ID", "Receipt Date (DD-MM-YYYY)", "Payment Mode",
		"Fee Type", "Amount", "Discount", "Net Amount", "Session", "Remarks",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("headers = %v, want %v", got, want)
	}
}

func TestRollKeyCaseInsensitive(t *testing.T) {
	a := rollKey("2024-25", "Class 5", "A", "12")
	b := rollKey("2024-25", "class 5", "a", "12")
	if a != b {
		t.Errorf("roll keys differ: %q vs %q", a, b)
	}
	c := rollKey("2024-25", "Class 5", "B", "12")
	if a == c {
		t.Errorf("different sections collapsed to one key: %q", a)
	}
}
