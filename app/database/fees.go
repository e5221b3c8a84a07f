package database

import (
	"database/sql"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// GetReceiptsByStudent retrieves receipts for one student, newest first,
// with line items nested.
func GetReceiptsByStudent(db *sql.DB, studentID string) ([]*models.FeeReceipt, error) {
	rows, err := db.Query(
		`SELECT id, receipt_no, student_id, session_id, receipt_date, payment_mode, total_amount, remarks, created_at
		 FROM fee_receipts WHERE student_id = $1 ORDER BY receipt_date DESC, receipt_no DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var receipts []*models.FeeReceipt
	byID := make(map[string]*models.FeeReceipt)
	for rows.Next() {
		var r models.FeeReceipt
		if err := rows.Scan(&r.ID, &r.ReceiptNo, &r.StudentID, &r.SessionID, &r.ReceiptDate, &r.PaymentMode, &r.TotalAmount, &r.Remarks, &r.CreatedAt); err != nil {
			return nil, err
		}
		receipts = append(receipts, &r)
		byID[r.ID] = &r
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(receipts) == 0 {
		return receipts, nil
	}

	itemRows, err := db.Query(
		`SELECT i.id, i.receipt_id, i.fee_type_id, i.amount, i.discount, i.net_amount
		 FROM fee_receipt_items i
		 JOIN fee_receipts r ON r.id = i.receipt_id
		 WHERE r.student_id = $1`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.FeeReceiptItem
		if err := itemRows.Scan(&item.ID, &item.ReceiptID, &item.FeeTypeID, &item.Amount, &item.Discount, &item.NetAmount); err != nil {
			return nil, err
		}
		if r, ok := byID[item.ReceiptID]; ok {
			it := item
			r.Items = append(r.Items, &it)
		}
	}
	return receipts, itemRows.Err()
}

// GetBillsByStudent retrieves demand bills for one student, newest first.
func GetBillsByStudent(db *sql.DB, studentID string) ([]*models.DemandBill, error) {
	rows, err := db.Query(
		`SELECT id, bill_no, student_id, session_id, fee_type_id, bill_date, due_date,
			amount, discount, late_fee, net_amount, paid_amount, status, remarks, created_at, updated_at
		 FROM demand_bills WHERE student_id = $1 ORDER BY bill_date DESC, bill_no DESC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*models.DemandBill
	for rows.Next() {
		var b models.DemandBill
		if err := rows.Scan(&b.ID, &b.BillNo, &b.StudentID, &b.SessionID, &b.FeeTypeID, &b.BillDate, &b.DueDate,
			&b.Amount, &b.Discount, &b.LateFee, &b.NetAmount, &b.PaidAmount, &b.Status, &b.Remarks, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		bills = append(bills, &b)
	}
	return bills, rows.Err()
}

// GetDiscountsByStudent retrieves the discounts configured for a student.
func GetDiscountsByStudent(db *sql.DB, studentID string) ([]*models.Discount, error) {
	rows, err := db.Query(
		`SELECT id, student_id, fee_type_id, session_id, discount_type, discount_value, remarks, created_at, updated_at
		 FROM discounts WHERE student_id = $1 ORDER BY created_at ASC`,
		studentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var discounts []*models.Discount
	for rows.Next() {
		var d models.Discount
		if err := rows.Scan(&d.ID, &d.StudentID, &d.FeeTypeID, &d.SessionID, &d.DiscountType, &d.DiscountValue, &d.Remarks, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		discounts = append(discounts, &d)
	}
	return discounts, rows.Err()
}

// MarkOverdueBills flips unpaid bills past their due date to overdue and
// returns how many were updated.
func MarkOverdueBills(db *sql.DB) (int64, error) {
	res, err := db.Exec(
		`UPDATE demand_bills SET status = 'overdue', updated_at = now()
		 WHERE status = 'unpaid' AND due_date IS NOT NULL AND due_date < CURRENT_DATE`,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
