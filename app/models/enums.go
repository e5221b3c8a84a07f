package models

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// ValidGender reports whether s is one of the accepted gender values.
func ValidGender(s string) bool {
	switch Gender(s) {
	case Male, Female, Other:
		return true
	}
	return false
}

// StudentStatus defines the lifecycle status of a student record.
type StudentStatus string

const (
	StudentActive      StudentStatus = "active"
	StudentInactive    StudentStatus = "inactive"
	StudentTransferred StudentStatus = "transferred"
	StudentPassOut     StudentStatus = "passout"
)

// BillStatus defines the status of a demand bill.
type BillStatus string

const (
	BillUnpaid    BillStatus = "unpaid"
	BillPartial   BillStatus = "partial"
	BillPaid      BillStatus = "paid"
	BillOverdue   BillStatus = "overdue"
	BillCancelled BillStatus = "cancelled"
)

// PaymentMode defines how a fee receipt was settled.
type PaymentMode string

const (
	PayCash         PaymentMode = "cash"
	PayCheque       PaymentMode = "cheque"
	PayOnline       PaymentMode = "online"
	PayUPI          PaymentMode = "upi"
	PayCard         PaymentMode = "card"
	PayBankTransfer PaymentMode = "bank_transfer"
)

// DiscountType defines how a discount value is applied.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// GenderValues lists the accepted gender strings for template dropdowns.
func GenderValues() []string { return []string{"male", "female", "other"} }

// StudentStatusValues lists the accepted student status strings.
func StudentStatusValues() []string {
	return []string{"active", "inactive", "transferred", "passout"}
}

// BillStatusValues lists the accepted demand bill status strings.
func BillStatusValues() []string {
	return []string{"unpaid", "partial", "paid", "overdue", "cancelled"}
}

// PaymentModeValues lists the accepted payment mode strings.
func PaymentModeValues() []string {
	return []string{"cash", "cheque", "online", "upi", "card", "bank_transfer"}
}

// DiscountTypeValues lists the accepted discount type strings.
func DiscountTypeValues() []string { return []string{"percentage", "fixed"} }
