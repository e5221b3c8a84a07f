package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func CreateUser(db *sql.DB, user *models.User) error {
	user.ID = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO users (id, email, password, first_name, last_name, role, is_active)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		user.ID, user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.IsActive,
	)
	return err
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	res, err := db.Exec(
		`UPDATE users SET password = $1, updated_at = now() WHERE id = $2`,
		hashedPassword, userID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
