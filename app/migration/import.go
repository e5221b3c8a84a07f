package migration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

const openingDuesWindow = 7 * 24 * time.Hour

// importRun bundles the per-run state every entity importer needs.
type importRun struct {
	store  Store
	ref    *RefData
	policy failurePolicy
	res    *ImportResult
}

// begin loads the reference snapshot and checks the run-wide
// preconditions. A nil run means the result is already final.
func (s *Service) begin(data []byte, sheet SheetSchema, opts Options, needActive bool) (*importRun, []Row, *ImportResult, error) {
	res := &ImportResult{Success: true, Errors: []ValidationError{}}

	raw, err := ReadSheet(data, sheet.Name)
	if err != nil {
		res.Success = false
		res.addError(0, "file", "", err.Error())
		return nil, nil, res, nil
	}

	ref, err := LoadRefData(s.store)
	if err != nil {
		return nil, nil, nil, err
	}
	if needActive && ref.Active == nil {
		res.Success = false
		res.addError(0, "session", "", "No active academic session; mark one session as current before importing")
		return nil, nil, res, nil
	}

	rows := DecodeRows(sheet, raw)
	res.TotalRows = len(rows)
	return &importRun{store: s.store, ref: ref, policy: policyFor(opts), res: res}, rows, res, nil
}

// ImportStudents imports a Students sheet. Each student together with an
// optional opening-dues bill and transport assignment is one atomic unit.
func (s *Service) ImportStudents(data []byte, opts Options) (*ImportResult, error) {
	run, rows, res, err := s.begin(data, StudentsSchema, opts, true)
	if err != nil || run == nil {
		return res, err
	}

	for _, row := range rows {
		ok, err := run.importStudentRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			return res, nil
		}
	}
	return res, nil
}

func (r *importRun) importStudentRow(row Row) (bool, error) {
	studentID := row.Get("studentId")

	if missing := StudentsSchema.MissingRequired(row); len(missing) > 0 {
		return r.policy.onFailure(r.res, row.Num, studentID,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))), nil
	}

	// Repeat the duplicate lookup rather than trusting an earlier
	// validation call; the store may have changed in between.
	existing, err := r.store.StudentIdentityByID(studentID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if identityMatches(existing, row.Get("name"), row.Get("fatherName")) {
			r.res.skip(row.Num, studentID, "student already exists with matching details")
			return true, nil
		}
		return r.policy.onFailure(r.res, row.Num, studentID,
			"student ID exists but name/father name conflict with the stored record"), nil
	}

	session := r.ref.ResolveSession(row.Get("sessionName"))
	st := &models.Student{
		StudentID: studentID,
		Name:      row.Get("name"),
		ClassName: row.Get("className"),
		Section:   CleanSection(row.Get("section")),
		SessionID: session.ID,
		Status:    models.StudentActive,
	}
	if v := strings.ToLower(row.Get("status")); v != "" {
		st.Status = models.StudentStatus(v)
	}
	if strings.EqualFold(st.ClassName, "PASS OUT") {
		st.Status = models.StudentPassOut
	}
	st.DateOfBirth = ParseDate(row.Get("dob"))
	if st.DateOfBirth == nil {
		return r.policy.onFailure(r.res, row.Num, studentID, "invalid date of birth"), nil
	}
	st.AdmissionDate = ParseDate(row.Get("admissionDate"))
	if st.AdmissionDate == nil {
		return r.policy.onFailure(r.res, row.Num, studentID, "invalid admission date"), nil
	}
	if g := strings.ToLower(row.Get("gender")); models.ValidGender(g) {
		gender := models.Gender(g)
		st.Gender = &gender
	} else {
		return r.policy.onFailure(r.res, row.Num, studentID, "invalid gender"), nil
	}
	st.RollNumber = ParseRollNumber(row.Get("rollNumber"))
	setOptional(&st.FatherName, row.Get("fatherName"))
	setOptional(&st.MotherName, row.Get("motherName"))
	setOptional(&st.Address, row.Get("address"))
	setOptional(&st.Phone, row.Get("phone"))
	setOptional(&st.AadharNumber, row.Get("aadharNumber"))
	setOptional(&st.Email, row.Get("email"))
	setOptional(&st.BloodGroup, row.Get("bloodGroup"))
	setOptional(&st.Category, row.Get("category"))
	setOptional(&st.Religion, row.Get("religion"))
	setOptional(&st.Nationality, row.Get("nationality"))
	setOptional(&st.PreviousSchool, row.Get("previousSchool"))
	setOptional(&st.FatherPhone, row.Get("fatherPhone"))
	setOptional(&st.FatherOccupation, row.Get("fatherOccupation"))
	setOptional(&st.MotherPhone, row.Get("motherPhone"))
	setOptional(&st.MotherOccupation, row.Get("motherOccupation"))
	setOptional(&st.GuardianName, row.Get("guardianName"))
	setOptional(&st.GuardianPhone, row.Get("guardianPhone"))
	setOptional(&st.GuardianRelation, row.Get("guardianRelation"))

	// Previous dues become one opening-balance bill due in a week.
	var openingBill *models.DemandBill
	if dues := ParseAmount(row.Get("previousDues")); dues > 0 {
		ft, resolution, err := r.ref.ResolveFeeType(r.store, "Previous Dues")
		if err != nil {
			return false, err
		}
		if resolution == FeeTypeAutoCreated {
			r.res.addWarning(row.Num, "previousDues", "", "fee type Previous Dues did not exist and was created automatically")
		}
		now := time.Now()
		due := now.Add(openingDuesWindow)
		openingBill = &models.DemandBill{
			BillNo:    "OPN-" + studentID,
			SessionID: session.ID,
			FeeTypeID: ft.ID,
			BillDate:  now,
			DueDate:   &due,
			Amount:    dues,
			NetAmount: dues,
			Status:    models.BillUnpaid,
		}
	}

	// Transport is attempted only when the route code resolves.
	var transport *models.TransportAssignment
	if code := CleanRouteCode(row.Get("routeCode")); code != "" {
		if route, ok := r.ref.Routes[refKey(code)]; ok {
			transport = &models.TransportAssignment{RouteID: route.ID, SessionID: session.ID}
			if stopName := CleanStopName(row.Get("stopName")); stopName != "" {
				if stop, ok := r.ref.Stops[refKey(code)+"|"+refKey(stopName)]; ok {
					transport.StopID = &stop.ID
				}
			}
		}
	}

	if err := r.store.CreateStudentUnit(st, openingBill, transport); err != nil {
		if errors.Is(err, ErrDuplicate) {
			r.res.skip(row.Num, studentID, "duplicate record in storage")
			return true, nil
		}
		return r.policy.onFailure(r.res, row.Num, studentID, err.Error()), nil
	}
	r.res.Imported++
	return true, nil
}

// receiptGroup is all rows of one receipt, in first-seen order.
type receiptGroup struct {
	receiptNo string
	rows      []Row
}

// ImportFeeReceipts imports a Fee Receipts sheet. Rows are grouped by
// receipt number first: one receipt spanning several fee-type lines
// becomes a single parent record with nested items.
func (s *Service) ImportFeeReceipts(data []byte, opts Options) (*ImportResult, error) {
	run, rows, res, err := s.begin(data, FeeReceiptsSchema, opts, true)
	if err != nil || run == nil {
		return res, err
	}

	var groups []*receiptGroup
	byNo := make(map[string]*receiptGroup)
	for _, row := range rows {
		no := row.Get("receiptNo")
		g, ok := byNo[no]
		if !ok {
			g = &receiptGroup{receiptNo: no}
			byNo[no] = g
			groups = append(groups, g)
		}
		g.rows = append(g.rows, row)
	}

	for _, g := range groups {
		ok, err := run.importReceiptGroup(g)
		if err != nil {
			return nil, err
		}
		if !ok {
			return res, nil
		}
	}
	return res, nil
}

func (r *importRun) importReceiptGroup(g *receiptGroup) (bool, error) {
	first := g.rows[0]
	studentID := first.Get("studentId")

	if g.receiptNo == "" {
		return r.policy.onFailure(r.res, first.Num, studentID, "receipt number is required"), nil
	}

	// Whole-group validation before any write.
	for _, row := range g.rows {
		if missing := FeeReceiptsSchema.MissingRequired(row); len(missing) > 0 {
			return r.policy.onFailure(r.res, row.Num, studentID,
				fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))), nil
		}
	}
	student, err := r.store.StudentIdentityByID(studentID)
	if err != nil {
		return false, err
	}
	if student == nil {
		return r.policy.onFailure(r.res, first.Num, studentID, "student not found"), nil
	}
	exists, err := r.store.ReceiptExists(g.receiptNo)
	if err != nil {
		return false, err
	}
	if exists {
		r.res.skip(first.Num, studentID, fmt.Sprintf("receipt %s already exists", g.receiptNo))
		return true, nil
	}
	receiptDate := ParseDate(first.Get("receiptDate"))
	if receiptDate == nil {
		return r.policy.onFailure(r.res, first.Num, studentID, "invalid receipt date"), nil
	}

	session := r.ref.ResolveSession(first.Get("sessionName"))
	receipt := &models.FeeReceipt{
		ReceiptNo:   g.receiptNo,
		StudentID:   student.ID,
		SessionID:   session.ID,
		ReceiptDate: *receiptDate,
		PaymentMode: models.PaymentMode(strings.ToLower(first.Get("paymentMode"))),
	}
	setOptional(&receipt.Remarks, first.Get("remarks"))

	for _, row := range g.rows {
		ft, resolution, err := r.ref.ResolveFeeType(r.store, row.Get("feeType"))
		if err != nil {
			return false, err
		}
		if ft == nil {
			return r.policy.onFailure(r.res, row.Num, studentID, "fee type is required"), nil
		}
		if resolution == FeeTypeAutoCreated {
			r.res.addWarning(row.Num, "feeType", ft.Name, "fee type did not exist and was created automatically")
		}
		item := &models.FeeReceiptItem{
			FeeTypeID: ft.ID,
			Amount:    ParseAmount(row.Get("amount")),
			Discount:  ParseAmount(row.Get("discount")),
			NetAmount: ParseAmount(row.Get("netAmount")),
		}
		receipt.Items = append(receipt.Items, item)
		receipt.TotalAmount += item.NetAmount
	}

	if err := r.store.CreateFeeReceipt(receipt); err != nil {
		if errors.Is(err, ErrDuplicate) {
			r.res.skip(first.Num, studentID, "duplicate receipt in storage")
			return true, nil
		}
		return r.policy.onFailure(r.res, first.Num, studentID, err.Error()), nil
	}
	r.res.Imported++
	return true, nil
}

// ImportDemandBills imports a Demand Bills sheet; one row is one bill.
// Duplicate bill numbers are hard skips, never upserts.
func (s *Service) ImportDemandBills(data []byte, opts Options) (*ImportResult, error) {
	run, rows, res, err := s.begin(data, DemandBillsSchema, opts, true)
	if err != nil || run == nil {
		return res, err
	}

	for _, row := range rows {
		ok, err := run.importBillRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			return res, nil
		}
	}
	return res, nil
}

func (r *importRun) importBillRow(row Row) (bool, error) {
	studentID := row.Get("studentId")

	if missing := DemandBillsSchema.MissingRequired(row); len(missing) > 0 {
		return r.policy.onFailure(r.res, row.Num, studentID,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))), nil
	}
	student, err := r.store.StudentIdentityByID(studentID)
	if err != nil {
		return false, err
	}
	if student == nil {
		return r.policy.onFailure(r.res, row.Num, studentID, "student not found"), nil
	}
	billNo := row.Get("billNo")
	exists, err := r.store.BillExists(billNo)
	if err != nil {
		return false, err
	}
	if exists {
		r.res.skip(row.Num, studentID, fmt.Sprintf("bill %s already exists", billNo))
		r.res.addError(row.Num, "billNo", billNo, "duplicate bill number")
		return true, nil
	}
	billDate := ParseDate(row.Get("billDate"))
	if billDate == nil {
		return r.policy.onFailure(r.res, row.Num, studentID, "invalid bill date"), nil
	}
	ft, resolution, err := r.ref.ResolveFeeType(r.store, row.Get("feeType"))
	if err != nil {
		return false, err
	}
	if resolution == FeeTypeAutoCreated {
		r.res.addWarning(row.Num, "feeType", ft.Name, "fee type did not exist and was created automatically")
	}

	session := r.ref.ResolveSession(row.Get("sessionName"))
	bill := &models.DemandBill{
		BillNo:    billNo,
		StudentID: student.ID,
		SessionID: session.ID,
		FeeTypeID: ft.ID,
		BillDate:  *billDate,
		DueDate:   ParseDate(row.Get("dueDate")),
		Amount:    ParseAmount(row.Get("amount")),
		Discount:  ParseAmount(row.Get("discount")),
		LateFee:   ParseAmount(row.Get("lateFee")),
		NetAmount: ParseAmount(row.Get("netAmount")),
		Status:    models.BillUnpaid,
	}
	if v := strings.ToLower(row.Get("status")); v != "" {
		bill.Status = models.BillStatus(v)
	}

	if err := r.store.CreateDemandBill(bill); err != nil {
		if errors.Is(err, ErrDuplicate) {
			r.res.skip(row.Num, studentID, "duplicate bill in storage")
			return true, nil
		}
		return r.policy.onFailure(r.res, row.Num, studentID, err.Error()), nil
	}
	r.res.Imported++
	return true, nil
}

// ImportDiscounts imports a Discounts sheet. Discounts are corrections
// and must converge under repeated import, so they are upserted on
// (student, fee type, session).
func (s *Service) ImportDiscounts(data []byte, opts Options) (*ImportResult, error) {
	run, rows, res, err := s.begin(data, DiscountsSchema, opts, true)
	if err != nil || run == nil {
		return res, err
	}

	for _, row := range rows {
		ok, err := run.importDiscountRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			return res, nil
		}
	}
	return res, nil
}

func (r *importRun) importDiscountRow(row Row) (bool, error) {
	studentID := row.Get("studentId")

	if missing := DiscountsSchema.MissingRequired(row); len(missing) > 0 {
		return r.policy.onFailure(r.res, row.Num, studentID,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))), nil
	}
	student, err := r.store.StudentIdentityByID(studentID)
	if err != nil {
		return false, err
	}
	if student == nil {
		return r.policy.onFailure(r.res, row.Num, studentID, "student not found"), nil
	}
	ft, resolution, err := r.ref.ResolveFeeType(r.store, row.Get("feeType"))
	if err != nil {
		return false, err
	}
	if resolution == FeeTypeAutoCreated {
		r.res.addWarning(row.Num, "feeType", ft.Name, "fee type did not exist and was created automatically")
	}

	dt := models.DiscountType(strings.ToLower(row.Get("discountType")))
	if dt != models.DiscountPercentage && dt != models.DiscountFixed {
		return r.policy.onFailure(r.res, row.Num, studentID, "discount type must be percentage or fixed"), nil
	}

	session := r.ref.ResolveSession(row.Get("sessionName"))
	d := &models.Discount{
		StudentID:     student.ID,
		FeeTypeID:     ft.ID,
		SessionID:     session.ID,
		DiscountType:  dt,
		DiscountValue: ParseAmount(row.Get("discountValue")),
	}
	setOptional(&d.Remarks, row.Get("remarks"))

	if err := r.store.UpsertDiscount(d); err != nil {
		return r.policy.onFailure(r.res, row.Num, studentID, err.Error()), nil
	}
	r.res.Imported++
	return true, nil
}

// ImportAcademicHistory imports an Academic History sheet; upserted on
// (student, session) so re-runs converge like discounts.
func (s *Service) ImportAcademicHistory(data []byte, opts Options) (*ImportResult, error) {
	run, rows, res, err := s.begin(data, AcademicHistorySchema, opts, true)
	if err != nil || run == nil {
		return res, err
	}

	for _, row := range rows {
		ok, err := run.importHistoryRow(row)
		if err != nil {
			return nil, err
		}
		if !ok {
			return res, nil
		}
	}
	return res, nil
}

func (r *importRun) importHistoryRow(row Row) (bool, error) {
	studentID := row.Get("studentId")

	if missing := AcademicHistorySchema.MissingRequired(row); len(missing) > 0 {
		return r.policy.onFailure(r.res, row.Num, studentID,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))), nil
	}
	student, err := r.store.StudentIdentityByID(studentID)
	if err != nil {
		return false, err
	}
	if student == nil {
		return r.policy.onFailure(r.res, row.Num, studentID, "student not found"), nil
	}
	session := r.ref.ResolveSession(row.Get("sessionName"))
	if row.Get("sessionName") != "" {
		if _, ok := r.ref.Sessions[refKey(row.Get("sessionName"))]; !ok {
			return r.policy.onFailure(r.res, row.Num, studentID,
				fmt.Sprintf("unknown session %q", row.Get("sessionName"))), nil
		}
	}

	h := &models.AcademicHistory{
		StudentID:  student.ID,
		SessionID:  session.ID,
		ClassName:  row.Get("className"),
		Section:    CleanSection(row.Get("section")),
		RollNumber: ParseRollNumber(row.Get("rollNumber")),
		Status:     models.StudentActive,
	}
	if v := strings.ToLower(row.Get("status")); v != "" {
		h.Status = models.StudentStatus(v)
	}

	if err := r.store.UpsertAcademicHistory(h); err != nil {
		return r.policy.onFailure(r.res, row.Num, studentID, err.Error()), nil
	}
	r.res.Imported++
	return true, nil
}

func setOptional(dst **string, v string) {
	if v != "" {
		s := v
		*dst = &s
	}
}
