package migration

import (
	"errors"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// ErrDuplicate is returned by Store implementations when a write hits a
// unique constraint the pre-validation lookups did not catch (concurrent
// import, stale snapshot). The importer counts these as skips.
var ErrDuplicate = errors.New("duplicate record")

// StudentIdentity is the slice of a stored student the duplicate check
// compares against an incoming row.
type StudentIdentity struct {
	ID         string
	StudentID  string
	Name       string
	FatherName string
}

// Store is the storage surface the pipeline runs against. Each Create*
// method persists one logical unit atomically; a mid-unit failure must
// leave no partial rows.
type Store interface {
	// Reference snapshots, loaded once per run.
	ActiveClasses() ([]models.Class, error)
	FeeTypes() ([]models.FeeType, error)
	ActiveRoutes() ([]models.TransportRoute, error)
	Sessions() ([]models.AcademicSession, error)
	CreateFeeType(ft *models.FeeType) error

	// Collision lookups.
	StudentIdentityByID(studentID string) (*StudentIdentity, error)
	RollNumberTaken(sessionID, className, section string, roll int) (bool, error)
	AadharTaken(aadhar string) (bool, error)
	ReceiptExists(receiptNo string) (bool, error)
	BillExists(billNo string) (bool, error)

	// Logical-unit writers.
	CreateStudentUnit(st *models.Student, openingBill *models.DemandBill, transport *models.TransportAssignment) error
	CreateFeeReceipt(r *models.FeeReceipt) error
	CreateDemandBill(b *models.DemandBill) error
	UpsertDiscount(d *models.Discount) error
	UpsertAcademicHistory(h *models.AcademicHistory) error
}

// Service runs validation and import passes against one Store.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}
