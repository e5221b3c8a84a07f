package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Sumit21adm/School-Management-System-sub003/app/migration"
	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// Store implements migration.Store over a Postgres connection pool.
// Each logical unit is written inside one transaction.
type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// wrapDup maps Postgres unique-constraint violations onto the pipeline's
// sentinel so the importer can count them as skips.
func wrapDup(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
		return fmt.Errorf("%w: %s", migration.ErrDuplicate, pqErr.Constraint)
	}
	return err
}

func (s *Store) ActiveClasses() ([]models.Class, error) {
	return GetActiveClasses(s.DB)
}

func (s *Store) FeeTypes() ([]models.FeeType, error) {
	return GetAllFeeTypes(s.DB)
}

func (s *Store) ActiveRoutes() ([]models.TransportRoute, error) {
	return GetActiveRoutesWithStops(s.DB)
}

func (s *Store) Sessions() ([]models.AcademicSession, error) {
	return GetAllSessions(s.DB)
}

func (s *Store) CreateFeeType(ft *models.FeeType) error {
	return CreateFeeType(s.DB, ft)
}

func (s *Store) StudentIdentityByID(studentID string) (*migration.StudentIdentity, error) {
	var ident migration.StudentIdentity
	err := s.DB.QueryRow(
		`SELECT id, student_id, name, COALESCE(father_name, '')
		 FROM students WHERE student_id = $1 AND deleted_at IS NULL`,
		studentID,
	).Scan(&ident.ID, &ident.StudentID, &ident.Name, &ident.FatherName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ident, nil
}

func (s *Store) RollNumberTaken(sessionID, className, section string, roll int) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (
			SELECT 1 FROM students
			WHERE session_id = $1 AND lower(class_name) = lower($2)
			  AND lower(section) = lower($3) AND roll_number = $4
			  AND deleted_at IS NULL
		 )`,
		sessionID, className, section, roll,
	).Scan(&exists)
	return exists, err
}

func (s *Store) AadharTaken(aadhar string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM students WHERE aadhar_number = $1 AND deleted_at IS NULL)`,
		aadhar,
	).Scan(&exists)
	return exists, err
}

func (s *Store) ReceiptExists(receiptNo string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM fee_receipts WHERE receipt_no = $1)`, receiptNo,
	).Scan(&exists)
	return exists, err
}

func (s *Store) BillExists(billNo string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM demand_bills WHERE bill_no = $1)`, billNo,
	).Scan(&exists)
	return exists, err
}

// CreateStudentUnit creates a student, an optional opening-dues bill and
// an optional transport assignment in one transaction.
func (s *Store) CreateStudentUnit(st *models.Student, openingBill *models.DemandBill, transport *models.TransportAssignment) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	st.ID = uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO students (
			id, student_id, name, father_name, mother_name, date_of_birth, gender,
			class_name, section, roll_number, admission_date, address, phone, status,
			session_id, aadhar_number, email, blood_group, category, religion,
			nationality, previous_school, father_phone, father_occupation,
			mother_phone, mother_occupation, guardian_name, guardian_phone, guardian_relation
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29
		)`,
		st.ID, st.StudentID, st.Name, st.FatherName, st.MotherName, st.DateOfBirth, st.Gender,
		st.ClassName, st.Section, st.RollNumber, st.AdmissionDate, st.Address, st.Phone, st.Status,
		st.SessionID, st.AadharNumber, st.Email, st.BloodGroup, st.Category, st.Religion,
		st.Nationality, st.PreviousSchool, st.FatherPhone, st.FatherOccupation,
		st.MotherPhone, st.MotherOccupation, st.GuardianName, st.GuardianPhone, st.GuardianRelation,
	)
	if err != nil {
		return wrapDup(err)
	}

	if openingBill != nil {
		openingBill.ID = uuid.NewString()
		openingBill.StudentID = st.ID
		_, err = tx.Exec(
			`INSERT INTO demand_bills (
				id, bill_no, student_id, session_id, fee_type_id, bill_date, due_date,
				amount, discount, late_fee, net_amount, paid_amount, status
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
			openingBill.ID, openingBill.BillNo, openingBill.StudentID, openingBill.SessionID,
			openingBill.FeeTypeID, openingBill.BillDate, openingBill.DueDate,
			openingBill.Amount, openingBill.Discount, openingBill.LateFee,
			openingBill.NetAmount, openingBill.PaidAmount, openingBill.Status,
		)
		if err != nil {
			return wrapDup(err)
		}
	}

	if transport != nil {
		transport.ID = uuid.NewString()
		transport.StudentID = st.ID
		_, err = tx.Exec(
			`INSERT INTO transport_assignments (id, student_id, route_id, stop_id, session_id)
			 VALUES ($1,$2,$3,$4,$5)`,
			transport.ID, transport.StudentID, transport.RouteID, transport.StopID, transport.SessionID,
		)
		if err != nil {
			return wrapDup(err)
		}
	}

	return tx.Commit()
}

// CreateFeeReceipt creates the receipt and all its line items in one
// transaction.
func (s *Store) CreateFeeReceipt(r *models.FeeReceipt) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	r.ID = uuid.NewString()
	_, err = tx.Exec(
		`INSERT INTO fee_receipts (id, receipt_no, student_id, session_id, receipt_date, payment_mode, total_amount, remarks)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		r.ID, r.ReceiptNo, r.StudentID, r.SessionID, r.ReceiptDate, r.PaymentMode, r.TotalAmount, r.Remarks,
	)
	if err != nil {
		return wrapDup(err)
	}

	for _, item := range r.Items {
		item.ID = uuid.NewString()
		item.ReceiptID = r.ID
		_, err = tx.Exec(
			`INSERT INTO fee_receipt_items (id, receipt_id, fee_type_id, amount, discount, net_amount)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			item.ID, item.ReceiptID, item.FeeTypeID, item.Amount, item.Discount, item.NetAmount,
		)
		if err != nil {
			return wrapDup(err)
		}
	}

	return tx.Commit()
}

func (s *Store) CreateDemandBill(b *models.DemandBill) error {
	b.ID = uuid.NewString()
	_, err := s.DB.Exec(
		`INSERT INTO demand_bills (
			id, bill_no, student_id, session_id, fee_type_id, bill_date, due_date,
			amount, discount, late_fee, net_amount, paid_amount, status, remarks
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		b.ID, b.BillNo, b.StudentID, b.SessionID, b.FeeTypeID, b.BillDate, b.DueDate,
		b.Amount, b.Discount, b.LateFee, b.NetAmount, b.PaidAmount, b.Status, b.Remarks,
	)
	return wrapDup(err)
}

func (s *Store) UpsertDiscount(d *models.Discount) error {
	d.ID = uuid.NewString()
	_, err := s.DB.Exec(
		`INSERT INTO discounts (id, student_id, fee_type_id, session_id, discount_type, discount_value, remarks)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (student_id, fee_type_id, session_id) DO UPDATE
		 SET discount_type = EXCLUDED.discount_type,
		     discount_value = EXCLUDED.discount_value,
		     remarks = EXCLUDED.remarks,
		     updated_at = now()`,
		d.ID, d.StudentID, d.FeeTypeID, d.SessionID, d.DiscountType, d.DiscountValue, d.Remarks,
	)
	return err
}

func (s *Store) UpsertAcademicHistory(h *models.AcademicHistory) error {
	h.ID = uuid.NewString()
	_, err := s.DB.Exec(
		`INSERT INTO academic_history (id, student_id, session_id, class_name, section, roll_number, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (student_id, session_id) DO UPDATE
		 SET class_name = EXCLUDED.class_name,
		     section = EXCLUDED.section,
		     roll_number = EXCLUDED.roll_number,
		     status = EXCLUDED.status,
		     updated_at = now()`,
		h.ID, h.StudentID, h.SessionID, h.ClassName, h.Section, h.RollNumber, h.Status,
	)
	return err
}
