package migration

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateTemplate(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	data, err := svc.GenerateTemplate()
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open generated workbook: %v", err)
	}
	defer f.Close()

	want := []string{
		instructionsSheet, referenceSheet,
		StudentsSchema.Name, FeeReceiptsSchema.Name, DemandBillsSchema.Name,
		DiscountsSchema.Name, AcademicHistorySchema.Name,
	}
	have := make(map[string]bool)
	for _, s := range f.GetSheetList() {
		have[s] = true
	}
	for _, s := range want {
		if !have[s] {
			t.Errorf("sheet %q missing from template", s)
		}
	}

	// Header row must match the upload layout exactly.
	rows, err := f.GetRows(StudentsSchema.Name)
	if err != nil {
		t.Fatalf("read Students sheet: %v", err)
	}
	if len(rows) < 2 {
		t.Fatalf("Students sheet has %d rows, want headers plus a sample", len(rows))
	}
	if !reflect.DeepEqual(rows[0], StudentsSchema.Headers()) {
		t.Errorf("Students headers = %v, want %v", rows[0], StudentsSchema.Headers())
	}

	// Reference data reflects the stored snapshot.
	refRows, err := f.GetRows(referenceSheet)
	if err != nil {
		t.Fatalf("read reference sheet: %v", err)
	}
	foundClass := false
	for _, row := range refRows {
		for _, cell := range row {
			if cell == "Class 5" {
				foundClass = true
			}
		}
	}
	if !foundClass {
		t.Error("reference sheet does not list the Class 5 snapshot entry")
	}
}

func TestGeneratedTemplateRoundTrips(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	data, err := svc.GenerateTemplate()
	if err != nil {
		t.Fatalf("GenerateTemplate: %v", err)
	}

	// A freshly generated template, filled only with its own sample row,
	// must validate cleanly.
	res, err := svc.ValidateStudents(data)
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if !res.IsValid {
		t.Errorf("sample row fails validation: %v", res.Errors)
	}
	if res.TotalRows != 1 {
		t.Errorf("TotalRows = %d, want the single sample row", res.TotalRows)
	}
}
