package migration

import (
	"fmt"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// fakeStore is an in-memory Store for pipeline tests.
type fakeStore struct {
	classes  []models.Class
	feeTypes []models.FeeType
	routes   []models.TransportRoute
	sessions []models.AcademicSession

	students   map[string]*StudentIdentity // keyed lower(studentID)
	aadhars    map[string]bool
	rolls      map[string]bool // sessionID|class|section|roll, lowercased
	receipts   map[string]*models.FeeReceipt
	bills      map[string]*models.DemandBill
	discounts  map[string]*models.Discount // studentID|feeTypeID|sessionID
	history    map[string]*models.AcademicHistory
	assignments []*models.TransportAssignment

	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		classes: []models.Class{
			{ID: "c1", Name: "Class 5", IsActive: true},
			{ID: "c2", Name: "Class 6", IsActive: true},
		},
		feeTypes: []models.FeeType{
			{ID: "f1", Name: "Tuition", IsActive: true},
		},
		routes: []models.TransportRoute{
			{ID: "r1", Code: "R01", Name: "North Loop", IsActive: true,
				Stops: []*models.RouteStop{{ID: "st1", RouteID: "r1", Name: "Main Gate"}}},
		},
		sessions: []models.AcademicSession{
			{ID: "sess1", Name: "2024-25", IsCurrent: true},
			{ID: "sess0", Name: "2023-24"},
		},
		students:  make(map[string]*StudentIdentity),
		aadhars:   make(map[string]bool),
		rolls:     make(map[string]bool),
		receipts:  make(map[string]*models.FeeReceipt),
		bills:     make(map[string]*models.DemandBill),
		discounts: make(map[string]*models.Discount),
		history:   make(map[string]*models.AcademicHistory),
	}
}

func (f *fakeStore) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeStore) ActiveClasses() ([]models.Class, error)       { return f.classes, nil }
func (f *fakeStore) FeeTypes() ([]models.FeeType, error)          { return f.feeTypes, nil }
func (f *fakeStore) ActiveRoutes() ([]models.TransportRoute, error) { return f.routes, nil }
func (f *fakeStore) Sessions() ([]models.AcademicSession, error)  { return f.sessions, nil }

func (f *fakeStore) CreateFeeType(ft *models.FeeType) error {
	ft.ID = f.id("ft")
	f.feeTypes = append(f.feeTypes, *ft)
	return nil
}

func (f *fakeStore) StudentIdentityByID(studentID string) (*StudentIdentity, error) {
	return f.students[strings.ToLower(studentID)], nil
}

func (f *fakeStore) RollNumberTaken(sessionID, className, section string, roll int) (bool, error) {
	return f.rolls[fakeRollKey(sessionID, className, section, roll)], nil
}

func fakeRollKey(sessionID, className, section string, roll int) string {
	return strings.ToLower(fmt.Sprintf("%s|%s|%s|%d", sessionID, className, section, roll))
}

func (f *fakeStore) AadharTaken(aadhar string) (bool, error) { return f.aadhars[aadhar], nil }
func (f *fakeStore) ReceiptExists(receiptNo string) (bool, error) {
	_, ok := f.receipts[receiptNo]
	return ok, nil
}
func (f *fakeStore) BillExists(billNo string) (bool, error) {
	_, ok := f.bills[billNo]
	return ok, nil
}

func (f *fakeStore) CreateStudentUnit(st *models.Student, openingBill *models.DemandBill, transport *models.TransportAssignment) error {
	key := strings.ToLower(st.StudentID)
	if _, ok := f.students[key]; ok {
		return ErrDuplicate
	}
	st.ID = f.id("stu")
	ident := &StudentIdentity{ID: st.ID, StudentID: st.StudentID, Name: st.Name}
	if st.FatherName != nil {
		ident.FatherName = *st.FatherName
	}
	f.students[key] = ident
	if st.AadharNumber != nil {
		f.aadhars[*st.AadharNumber] = true
	}
	if st.RollNumber != nil {
		f.rolls[fakeRollKey(st.SessionID, st.ClassName, st.Section, *st.RollNumber)] = true
	}
	if openingBill != nil {
		openingBill.StudentID = st.ID
		f.bills[openingBill.BillNo] = openingBill
	}
	if transport != nil {
		transport.StudentID = st.ID
		f.assignments = append(f.assignments, transport)
	}
	return nil
}

func (f *fakeStore) CreateFeeReceipt(r *models.FeeReceipt) error {
	if _, ok := f.receipts[r.ReceiptNo]; ok {
		return ErrDuplicate
	}
	r.ID = f.id("rcpt")
	f.receipts[r.ReceiptNo] = r
	return nil
}

func (f *fakeStore) CreateDemandBill(b *models.DemandBill) error {
	if _, ok := f.bills[b.BillNo]; ok {
		return ErrDuplicate
	}
	b.ID = f.id("bill")
	f.bills[b.BillNo] = b
	return nil
}

func (f *fakeStore) UpsertDiscount(d *models.Discount) error {
	key := d.StudentID + "|" + d.FeeTypeID + "|" + d.SessionID
	f.discounts[key] = d
	return nil
}

func (f *fakeStore) UpsertAcademicHistory(h *models.AcademicHistory) error {
	f.history[h.StudentID+"|"+h.SessionID] = h
	return nil
}

// seedStudent registers an already-imported student for receipt/bill tests.
func (f *fakeStore) seedStudent(studentID, name, fatherName string) *StudentIdentity {
	ident := &StudentIdentity{ID: f.id("stu"), StudentID: studentID, Name: name, FatherName: fatherName}
	f.students[strings.ToLower(studentID)] = ident
	return ident
}

// buildSheet writes rows into a single-sheet workbook and returns the
// xlsx bytes, the way an upload arrives at the pipeline.
func buildSheet(t *testing.T, name string, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(name, cell, &rows[i]); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf.Bytes()
}

// rowFor lays out values in the schema's column order.
func rowFor(schema SheetSchema, vals map[string]string) []string {
	out := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		out[i] = vals[c.Key]
	}
	return out
}

// validStudent is a row that passes every student check.
func validStudent(overrides map[string]string) map[string]string {
	vals := map[string]string{
		"studentId":     "STU001",
		"name":          "John Doe",
		"fatherName":    "R. Doe",
		"dob":           "15-03-2015",
		"gender":        "male",
		"className":     "Class 5",
		"section":       "Class 5-A",
		"rollNumber":    "12",
		"admissionDate": "01-04-2024",
		"address":       "12 Park Lane",
		"phone":         "9876543210",
	}
	for k, v := range overrides {
		vals[k] = v
	}
	return vals
}

func studentsSheet(t *testing.T, rows ...map[string]string) []byte {
	t.Helper()
	data := [][]string{StudentsSchema.Headers()}
	for _, r := range rows {
		data = append(data, rowFor(StudentsSchema, r))
	}
	return buildSheet(t, StudentsSchema.Name, data)
}

func errorFields(errs []ValidationError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}
