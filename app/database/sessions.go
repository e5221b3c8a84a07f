package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// GetAllSessions retrieves every academic session, newest first.
func GetAllSessions(db *sql.DB) ([]models.AcademicSession, error) {
	query := `SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
			  FROM academic_sessions WHERE deleted_at IS NULL ORDER BY start_date DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.AcademicSession
	for rows.Next() {
		var s models.AcademicSession
		if err := rows.Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsCurrent, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// GetCurrentSession returns the session flagged current, or nil.
func GetCurrentSession(db *sql.DB) (*models.AcademicSession, error) {
	var s models.AcademicSession
	err := db.QueryRow(
		`SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
		 FROM academic_sessions WHERE is_current = true AND deleted_at IS NULL`,
	).Scan(&s.ID, &s.Name, &s.StartDate, &s.EndDate, &s.IsCurrent, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateSession inserts a new academic session.
func CreateSession(db *sql.DB, s *models.AcademicSession) error {
	s.ID = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO academic_sessions (id, name, start_date, end_date, is_current, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		s.ID, s.Name, s.StartDate, s.EndDate, s.IsCurrent, s.IsActive,
	)
	return err
}

// ActivateSession marks one session current and clears the flag on all
// others, atomically.
func ActivateSession(db *sql.DB, sessionID string) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE academic_sessions SET is_current = false, updated_at = now() WHERE is_current = true`); err != nil {
		return err
	}
	res, err := tx.Exec(`UPDATE academic_sessions SET is_current = true, updated_at = now() WHERE id = $1`, sessionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return tx.Commit()
}
