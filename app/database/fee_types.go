package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// GetAllFeeTypes retrieves every fee type, active ones first.
func GetAllFeeTypes(db *sql.DB) ([]models.FeeType, error) {
	query := `SELECT id, name, description, is_active, created_at, updated_at
			  FROM fee_types WHERE deleted_at IS NULL ORDER BY is_active DESC, name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []models.FeeType
	for rows.Next() {
		var ft models.FeeType
		if err := rows.Scan(&ft.ID, &ft.Name, &ft.Description, &ft.IsActive, &ft.CreatedAt, &ft.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, ft)
	}
	return types, rows.Err()
}

// CreateFeeType inserts a new fee type.
func CreateFeeType(db *sql.DB, ft *models.FeeType) error {
	ft.ID = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO fee_types (id, name, description, is_active) VALUES ($1,$2,$3,$4)`,
		ft.ID, ft.Name, ft.Description, ft.IsActive,
	)
	return err
}

// UpdateFeeType updates name, description and active flag.
func UpdateFeeType(db *sql.DB, ft *models.FeeType) error {
	_, err := db.Exec(
		`UPDATE fee_types SET name = $1, description = $2, is_active = $3, updated_at = now() WHERE id = $4`,
		ft.Name, ft.Description, ft.IsActive, ft.ID,
	)
	return err
}
