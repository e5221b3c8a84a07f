package migration

import (
	"strings"
	"testing"
)

func TestReadSheetFallsBackToFirstSheet(t *testing.T) {
	data := buildSheet(t, "Export", [][]string{
		{"Student ID", "Name"},
		{"STU001", "John Doe"},
	})

	raw, err := ReadSheet(data, "Students")
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}
	if len(raw) != 2 || raw[1][0] != "STU001" {
		t.Errorf("raw = %v", raw)
	}
}

func TestReadSheetErrors(t *testing.T) {
	if _, err := ReadSheet(nil, "Students"); err == nil || !strings.Contains(err.Error(), "no file") {
		t.Errorf("empty upload err = %v", err)
	}
	if _, err := ReadSheet([]byte("not an xlsx"), "Students"); err == nil {
		t.Error("garbage upload should not open")
	}

	headerOnly := buildSheet(t, "Students", [][]string{{"Student ID", "Name"}})
	if _, err := ReadSheet(headerOnly, "Students"); err == nil || !strings.Contains(err.Error(), "no data rows") {
		t.Errorf("header-only err = %v", err)
	}
}
