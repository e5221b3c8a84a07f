package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// GetActiveClasses retrieves active classes ordered by name.
func GetActiveClasses(db *sql.DB) ([]models.Class, error) {
	query := `SELECT id, name, code, is_active, created_at, updated_at
			  FROM classes WHERE is_active = true AND deleted_at IS NULL ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []models.Class
	for rows.Next() {
		var c models.Class
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// GetClassStudentCounts returns the number of students per class name.
func GetClassStudentCounts(db *sql.DB) (map[string]int, error) {
	rows, err := db.Query(
		`SELECT class_name, COUNT(*) FROM students WHERE deleted_at IS NULL GROUP BY class_name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var name string
		var n int
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		counts[name] = n
	}
	return counts, rows.Err()
}

// CreateClass inserts a new class.
func CreateClass(db *sql.DB, c *models.Class) error {
	c.ID = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO classes (id, name, code, is_active) VALUES ($1,$2,$3,$4)`,
		c.ID, c.Name, c.Code, c.IsActive,
	)
	return err
}

// UpdateClass updates name, code and active flag.
func UpdateClass(db *sql.DB, c *models.Class) error {
	_, err := db.Exec(
		`UPDATE classes SET name = $1, code = $2, is_active = $3, updated_at = now() WHERE id = $4`,
		c.Name, c.Code, c.IsActive, c.ID,
	)
	return err
}
