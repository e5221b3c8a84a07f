package migration

import "strings"

// Column declares one spreadsheet column of an entity sheet: the field
// key used by the validator/importer, the header shown to operators, and
// whether a value is required on every row.
type Column struct {
	Key      string
	Title    string
	Required bool
}

// SheetSchema is the ordered column layout of one entity sheet. The
// validator and the importer share one decoding path driven by these
// declarations instead of positional cell access.
type SheetSchema struct {
	Name    string
	Columns []Column
}

// Headers returns the display titles in column order.
func (s SheetSchema) Headers() []string {
	out := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		out[i] = c.Title
	}
	return out
}

// Row is one decoded data row: sanitized cell text per column key plus
// the 1-based spreadsheet row number (header is row 1).
type Row struct {
	Num    int
	Fields map[string]string
}

// Get returns the sanitized value for a column key.
func (r Row) Get(key string) string { return r.Fields[key] }

// IsEmpty reports whether every cell in the row is blank.
func (r Row) IsEmpty() bool {
	for _, v := range r.Fields {
		if v != "" {
			return false
		}
	}
	return true
}

// DecodeRows maps raw sheet rows onto the schema. The first row is
// assumed to be the header; fully blank rows are dropped.
func DecodeRows(schema SheetSchema, raw [][]string) []Row {
	var rows []Row
	for i, cells := range raw {
		if i == 0 {
			continue
		}
		row := Row{Num: i + 1, Fields: make(map[string]string, len(schema.Columns))}
		for j, col := range schema.Columns {
			if j < len(cells) {
				row.Fields[col.Key] = SanitizeText(cells[j])
			} else {
				row.Fields[col.Key] = ""
			}
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// MissingRequired returns the keys of required columns that are blank.
func (s SheetSchema) MissingRequired(r Row) []string {
	var missing []string
	for _, c := range s.Columns {
		if c.Required && r.Get(c.Key) == "" {
			missing = append(missing, c.Key)
		}
	}
	return missing
}

// Sheet schemas for every importable entity. Column order here is the
// template layout and the expected upload layout.
var (
	StudentsSchema = SheetSchema{
		Name: "Students",
		Columns: []Column{
			{Key: "studentId", Title: "Student ID", Required: true},
			{Key: "name", Title: "Name", Required: true},
			{Key: "fatherName", Title: "Father Name"},
			{Key: "motherName", Title: "Mother Name"},
			{Key: "dob", Title: "Date of Birth (DD-MM-YYYY)", Required: true},
			{Key: "gender", Title: "Gender", Required: true},
			{Key: "className", Title: "Class", Required: true},
			{Key: "section", Title: "Section", Required: true},
			{Key: "rollNumber", Title: "Roll No"},
			{Key: "admissionDate", Title: "Admission Date (DD-MM-YYYY)", Required: true},
			{Key: "address", Title: "Address", Required: true},
			{Key: "phone", Title: "Phone", Required: true},
			{Key: "status", Title: "Status"},
			{Key: "sessionName", Title: "Session"},
			{Key: "previousDues", Title: "Previous Dues"},
			{Key: "routeCode", Title: "Transport Route"},
			{Key: "stopName", Title: "Transport Stop"},
			{Key: "aadharNumber", Title: "Aadhar No"},
			{Key: "email", Title: "Email"},
			{Key: "bloodGroup", Title: "Blood Group"},
			{Key: "category", Title: "Category"},
			{Key: "religion", Title: "Religion"},
			{Key: "nationality", Title: "Nationality"},
			{Key: "previousSchool", Title: "Previous School"},
			{Key: "fatherPhone", Title: "Father Phone"},
			{Key: "fatherOccupation", Title: "Father Occupation"},
			{Key: "motherPhone", Title: "Mother Phone"},
			{Key: "motherOccupation", Title: "Mother Occupation"},
			{Key: "guardianName", Title: "Guardian Name"},
			{Key: "guardianPhone", Title: "Guardian Phone"},
			{Key: "guardianRelation", Title: "Guardian Relation"},
		},
	}

	FeeReceiptsSchema = SheetSchema{
		Name: "Fee Receipts",
		Columns: []Column{
			{Key: "receiptNo", Title: "Receipt No", Required: true},
			{Key: "studentId", Title: "Student ID", Required: true},
			{Key: "receiptDate", Title: "Receipt Date (DD-MM-YYYY)", Required: true},
			{Key: "paymentMode", Title: "Payment Mode", Required: true},
			{Key: "feeType", Title: "Fee Type", Required: true},
			{Key: "amount", Title: "Amount", Required: true},
			{Key: "discount", Title: "Discount"},
			{Key: "netAmount", Title: "Net Amount", Required: true},
			{Key: "sessionName", Title: "Session"},
			{Key: "remarks", Title: "Remarks"},
		},
	}

	DemandBillsSchema = SheetSchema{
		Name: "Demand Bills",
		Columns: []Column{
			{Key: "billNo", Title: "Bill No", Required: true},
			{Key: "studentId", Title: "Student ID", Required: true},
			{Key: "billDate", Title: "Bill Date (DD-MM-YYYY)", Required: true},
			{Key: "dueDate", Title: "Due Date (DD-MM-YYYY)"},
			{Key: "feeType", Title: "Fee Type", Required: true},
			{Key: "amount", Title: "Amount", Required: true},
			{Key: "discount", Title: "Discount"},
			{Key: "lateFee", Title: "Late Fee"},
			{Key: "netAmount", Title: "Net Amount", Required: true},
			{Key: "status", Title: "Status"},
			{Key: "sessionName", Title: "Session"},
		},
	}

	DiscountsSchema = SheetSchema{
		Name: "Discounts",
		Columns: []Column{
			{Key: "studentId", Title: "Student ID", Required: true},
			{Key: "feeType", Title: "Fee Type", Required: true},
			{Key: "discountType", Title: "Discount Type", Required: true},
			{Key: "discountValue", Title: "Discount Value", Required: true},
			{Key: "sessionName", Title: "Session"},
			{Key: "remarks", Title: "Remarks"},
		},
	}

	AcademicHistorySchema = SheetSchema{
		Name: "Academic History",
		Columns: []Column{
			{Key: "studentId", Title: "Student ID", Required: true},
			{Key: "sessionName", Title: "Session", Required: true},
			{Key: "className", Title: "Class", Required: true},
			{Key: "section", Title: "Section", Required: true},
			{Key: "rollNumber", Title: "Roll No"},
			{Key: "status", Title: "Status"},
		},
	}
)

// rollKey builds the case-insensitive uniqueness key that scopes roll
// numbers to one (session, class, section).
func rollKey(sessionName, className, section, roll string) string {
	return strings.ToLower(sessionName + "|" + className + "|" + section + "|" + roll)
}
