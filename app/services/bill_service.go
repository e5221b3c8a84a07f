package services

import (
	"database/sql"
	"log"

	"github.com/Sumit21adm/School-Management-System-sub003/app/database"
)

// MarkOverdueDemandBills flags unpaid bills past their due date.
func MarkOverdueDemandBills(db *sql.DB) error {
	n, err := database.MarkOverdueBills(db)
	if err != nil {
		return err
	}
	if n > 0 {
		log.Printf("Marked %d demand bill(s) as overdue", n)
	}
	return nil
}
