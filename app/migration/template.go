package migration

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

const (
	instructionsSheet = "Instructions"
	referenceSheet    = "Reference Data"
	// dropdowns cover this many data rows on each entity sheet
	dropdownRows = 2000
)

var instructionsText = []string{
	"Bulk Data Import Template",
	"",
	"1. Fill one sheet per entity you want to import. Do not rename sheets or reorder columns.",
	"2. Dates use DD-MM-YYYY (e.g. 15-03-2015). YYYY-MM-DD is also accepted.",
	"3. Leave optional cells blank instead of writing none, N/A or -.",
	"4. Class, Session, Transport Route and Fee Type values must match the Reference Data sheet.",
	"5. One fee receipt may span several rows: repeat the Receipt No with one fee type per row.",
	"6. Validate the file from the admin panel before importing; warnings do not block the import.",
	"7. Re-importing an unchanged student row is safe: matching rows are skipped, not duplicated.",
}

// GenerateTemplate builds the multi-sheet import workbook: instructions,
// a reference-data sheet reflecting the current snapshot, and one sheet
// per importable entity with headers, a sample row and dropdown
// validations.
func (s *Service) GenerateTemplate() ([]byte, error) {
	ref, err := LoadRefData(s.store)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", instructionsSheet); err != nil {
		return nil, err
	}
	for i, line := range instructionsText {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetCellValue(instructionsSheet, cell, line); err != nil {
			return nil, err
		}
	}
	_ = f.SetColWidth(instructionsSheet, "A", "A", 100)

	refCols, err := writeReferenceSheet(f, ref)
	if err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}

	sheets := []struct {
		schema SheetSchema
		sample []string
	}{
		{StudentsSchema, studentSampleRow()},
		{FeeReceiptsSchema, []string{"RCPT-0001", "STU001", "05-04-2024", "cash", "Tuition Fee", "1500", "0", "1500", "", ""}},
		{DemandBillsSchema, []string{"BILL-0001", "STU001", "01-04-2024", "15-04-2024", "Tuition Fee", "1500", "0", "0", "1500", "unpaid", ""}},
		{DiscountsSchema, []string{"STU001", "Tuition Fee", "percentage", "10", "", "Sibling concession"}},
		{AcademicHistorySchema, []string{"STU001", "2023-24", "Class 4", "A", "12", "active"}},
	}
	for _, sh := range sheets {
		if _, err := f.NewSheet(sh.schema.Name); err != nil {
			return nil, err
		}
		for i, title := range sh.schema.Headers() {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			if err := f.SetCellValue(sh.schema.Name, cell, title); err != nil {
				return nil, err
			}
		}
		last, _ := excelize.CoordinatesToCellName(len(sh.schema.Columns), 1)
		_ = f.SetCellStyle(sh.schema.Name, "A1", last, headerStyle)
		for i, v := range sh.sample {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, 2)
			if err := f.SetCellValue(sh.schema.Name, cell, v); err != nil {
				return nil, err
			}
		}
		lastCol, _ := excelize.ColumnNumberToName(len(sh.schema.Columns))
		_ = f.SetColWidth(sh.schema.Name, "A", lastCol, 18)
		if err := addDropdowns(f, sh.schema, refCols); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func studentSampleRow() []string {
	row := make([]string, len(StudentsSchema.Columns))
	sample := map[string]string{
		"studentId":     "STU001",
		"name":          "John Doe",
		"fatherName":    "R. Doe",
		"dob":           "15-03-2015",
		"gender":        "male",
		"className":     "Class 5",
		"section":       "A",
		"rollNumber":    "12",
		"admissionDate": "01-04-2024",
		"address":       "12 Main Road",
		"phone":         "9876543210",
		"status":        "active",
	}
	for i, c := range StudentsSchema.Columns {
		row[i] = sample[c.Key]
	}
	return row
}

// refColumn records where one reference list landed on the reference
// sheet so entity-sheet dropdowns can bind to its range.
type refColumn struct {
	col   string
	count int
}

func (rc refColumn) sqref() string {
	if rc.count == 0 {
		return ""
	}
	return fmt.Sprintf("'%s'!$%s$2:$%s$%d", referenceSheet, rc.col, rc.col, rc.count+1)
}

func writeReferenceSheet(f *excelize.File, ref *RefData) (map[string]refColumn, error) {
	if _, err := f.NewSheet(referenceSheet); err != nil {
		return nil, err
	}

	lists := []struct {
		key    string
		header string
		values []string
	}{
		{"classes", "Classes", classNames(ref)},
		{"feeTypes", "Fee Types", feeTypeNames(ref)},
		{"routes", "Transport Routes", routeLabels(ref)},
		{"stops", "Route Stops", stopLabels(ref)},
		{"sessions", "Sessions", sessionNames(ref)},
		{"gender", "Gender", models.GenderValues()},
		{"status", "Student Status", models.StudentStatusValues()},
		{"paymentMode", "Payment Modes", models.PaymentModeValues()},
		{"discountType", "Discount Types", models.DiscountTypeValues()},
		{"billStatus", "Bill Status", models.BillStatusValues()},
	}

	cols := make(map[string]refColumn, len(lists))
	for i, list := range lists {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		head, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(referenceSheet, head, list.header); err != nil {
			return nil, err
		}
		for j, v := range list.values {
			cell, _ := excelize.CoordinatesToCellName(i+1, j+2)
			if err := f.SetCellValue(referenceSheet, cell, v); err != nil {
				return nil, err
			}
		}
		cols[list.key] = refColumn{col: colName, count: len(list.values)}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(lists))
	_ = f.SetColWidth(referenceSheet, "A", lastCol, 22)
	return cols, nil
}

// dropdown bindings per column key: either a reference-sheet range or a
// static list.
var rangeBound = map[string]string{
	"className":    "classes",
	"feeType":      "feeTypes",
	"routeCode":    "routes",
	"stopName":     "stops",
	"sessionName":  "sessions",
	"gender":       "gender",
	"status":       "status",
	"paymentMode":  "paymentMode",
	"discountType": "discountType",
	"billStatus":   "billStatus",
}

func addDropdowns(f *excelize.File, schema SheetSchema, refCols map[string]refColumn) error {
	for i, c := range schema.Columns {
		key := c.Key
		if schema.Name == DemandBillsSchema.Name && key == "status" {
			key = "billStatus"
		}
		bound, ok := rangeBound[key]
		if !ok {
			continue
		}
		rc := refCols[bound]
		if rc.count == 0 {
			continue
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", colName, colName, dropdownRows)
		dv.SetSqrefDropList(rc.sqref())
		if err := f.AddDataValidation(schema.Name, dv); err != nil {
			return err
		}
	}
	return nil
}

func sortStrings(s []string) { sort.Strings(s) }

func classNames(ref *RefData) []string {
	out := make([]string, 0, len(ref.Classes))
	for _, c := range ref.Classes {
		out = append(out, c.Name)
	}
	sortStrings(out)
	return out
}

func feeTypeNames(ref *RefData) []string {
	out := make([]string, 0, len(ref.FeeTypes))
	for _, ft := range ref.FeeTypes {
		out = append(out, ft.Name)
	}
	sortStrings(out)
	return out
}

func routeLabels(ref *RefData) []string {
	out := make([]string, 0, len(ref.Routes))
	for _, rt := range ref.Routes {
		out = append(out, fmt.Sprintf("%s: %s", rt.Code, rt.Name))
	}
	sortStrings(out)
	return out
}

func stopLabels(ref *RefData) []string {
	out := make([]string, 0, len(ref.Stops))
	for _, rt := range ref.Routes {
		for _, stop := range rt.Stops {
			out = append(out, fmt.Sprintf("%s - %s", rt.Code, stop.Name))
		}
	}
	sortStrings(out)
	return out
}

func sessionNames(ref *RefData) []string {
	out := make([]string, 0, len(ref.Sessions))
	for _, s := range ref.Sessions {
		out = append(out, s.Name)
	}
	sortStrings(out)
	return out
}
