package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// StudentFilters represents filtering options for student listings.
type StudentFilters struct {
	Search    string
	Status    string
	ClassName string
	Section   string
	SessionID string
	Limit     int
	Offset    int
}

const studentColumns = `id, student_id, name, father_name, mother_name, date_of_birth, gender,
	class_name, section, roll_number, admission_date, address, phone, status, session_id,
	aadhar_number, email, blood_group, category, religion, nationality, previous_school,
	father_phone, father_occupation, mother_phone, mother_occupation,
	guardian_name, guardian_phone, guardian_relation, created_at, updated_at`

func scanStudent(row interface{ Scan(...any) error }) (*models.Student, error) {
	var st models.Student
	err := row.Scan(
		&st.ID, &st.StudentID, &st.Name, &st.FatherName, &st.MotherName, &st.DateOfBirth, &st.Gender,
		&st.ClassName, &st.Section, &st.RollNumber, &st.AdmissionDate, &st.Address, &st.Phone, &st.Status, &st.SessionID,
		&st.AadharNumber, &st.Email, &st.BloodGroup, &st.Category, &st.Religion, &st.Nationality, &st.PreviousSchool,
		&st.FatherPhone, &st.FatherOccupation, &st.MotherPhone, &st.MotherOccupation,
		&st.GuardianName, &st.GuardianPhone, &st.GuardianRelation, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// GetStudentsWithFilters retrieves students matching the filters plus the
// total count before pagination.
func GetStudentsWithFilters(db *sql.DB, f StudentFilters) ([]*models.Student, int, error) {
	var conds []string
	var args []any
	conds = append(conds, "deleted_at IS NULL")

	if f.Search != "" {
		args = append(args, "%"+strings.ToLower(f.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(lower(name) LIKE $%d OR lower(student_id) LIKE $%d)", n, n))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.ClassName != "" {
		args = append(args, f.ClassName)
		conds = append(conds, fmt.Sprintf("lower(class_name) = lower($%d)", len(args)))
	}
	if f.Section != "" {
		args = append(args, f.Section)
		conds = append(conds, fmt.Sprintf("lower(section) = lower($%d)", len(args)))
	}
	if f.SessionID != "" {
		args = append(args, f.SessionID)
		conds = append(conds, fmt.Sprintf("session_id = $%d", len(args)))
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := db.QueryRow("SELECT COUNT(*) FROM students WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("SELECT %s FROM students WHERE %s ORDER BY student_id ASC", studentColumns, where)
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, st)
	}
	return students, total, rows.Err()
}

// GetStudentByStudentID retrieves one student by admission number.
func GetStudentByStudentID(db *sql.DB, studentID string) (*models.Student, error) {
	row := db.QueryRow(
		fmt.Sprintf("SELECT %s FROM students WHERE student_id = $1 AND deleted_at IS NULL", studentColumns),
		studentID,
	)
	return scanStudent(row)
}

// UpdateStudent updates the editable fields of a student record.
func UpdateStudent(db *sql.DB, st *models.Student) error {
	_, err := db.Exec(
		`UPDATE students SET
			name = $1, father_name = $2, mother_name = $3, date_of_birth = $4, gender = $5,
			class_name = $6, section = $7, roll_number = $8, address = $9, phone = $10,
			status = $11, updated_at = now()
		 WHERE id = $12`,
		st.Name, st.FatherName, st.MotherName, st.DateOfBirth, st.Gender,
		st.ClassName, st.Section, st.RollNumber, st.Address, st.Phone,
		st.Status, st.ID,
	)
	return err
}

// DeleteStudent soft-deletes a student.
func DeleteStudent(db *sql.DB, id string) error {
	res, err := db.Exec(`UPDATE students SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetStudentsStats returns headline counts for the students page.
func GetStudentsStats(db *sql.DB) (map[string]int, error) {
	stats := make(map[string]int)
	var total, active, passout int
	err := db.QueryRow(
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'passout')
		 FROM students WHERE deleted_at IS NULL`,
	).Scan(&total, &active, &passout)
	if err != nil {
		return nil, err
	}
	stats["total"] = total
	stats["active"] = active
	stats["passout"] = passout
	return stats, nil
}
