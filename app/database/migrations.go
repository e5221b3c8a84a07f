package database

import (
	"database/sql"
	"log"
)

// RunMigrations bootstraps the schema. Statements are idempotent so a
// restart against an existing database is a no-op.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role VARCHAR(20) NOT NULL DEFAULT 'admin',
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS academic_sessions (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		start_date DATE NOT NULL,
		end_date DATE NOT NULL,
		is_current BOOLEAN NOT NULL DEFAULT false,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS classes (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		code TEXT UNIQUE,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS fee_types (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS transport_routes (
		id UUID PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS route_stops (
		id UUID PRIMARY KEY,
		route_id UUID NOT NULL REFERENCES transport_routes(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		fare NUMERIC NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (route_id, name)
	)`,

	`CREATE TABLE IF NOT EXISTS students (
		id UUID PRIMARY KEY,
		student_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		father_name TEXT,
		mother_name TEXT,
		date_of_birth DATE,
		gender VARCHAR(10),
		class_name TEXT NOT NULL,
		section TEXT NOT NULL,
		roll_number INTEGER,
		admission_date DATE,
		address TEXT,
		phone VARCHAR(20),
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		session_id UUID NOT NULL REFERENCES academic_sessions(id),
		aadhar_number TEXT,
		email TEXT,
		blood_group VARCHAR(5),
		category TEXT,
		religion TEXT,
		nationality TEXT,
		previous_school TEXT,
		father_phone VARCHAR(20),
		father_occupation TEXT,
		mother_phone VARCHAR(20),
		mother_occupation TEXT,
		guardian_name TEXT,
		guardian_phone VARCHAR(20),
		guardian_relation TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		deleted_at TIMESTAMPTZ
	)`,

	// Aadhar is globally unique when present.
	`CREATE UNIQUE INDEX IF NOT EXISTS students_aadhar_uniq
		ON students (aadhar_number) WHERE aadhar_number IS NOT NULL`,

	// Roll numbers are unique per (session, class, section) when present.
	`CREATE UNIQUE INDEX IF NOT EXISTS students_roll_uniq
		ON students (session_id, lower(class_name), lower(section), roll_number)
		WHERE roll_number IS NOT NULL`,

	`CREATE TABLE IF NOT EXISTS transport_assignments (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		route_id UUID NOT NULL REFERENCES transport_routes(id),
		stop_id UUID REFERENCES route_stops(id),
		session_id UUID NOT NULL REFERENCES academic_sessions(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (student_id, session_id)
	)`,

	`CREATE TABLE IF NOT EXISTS fee_receipts (
		id UUID PRIMARY KEY,
		receipt_no TEXT NOT NULL UNIQUE,
		student_id UUID NOT NULL REFERENCES students(id),
		session_id UUID NOT NULL REFERENCES academic_sessions(id),
		receipt_date DATE NOT NULL,
		payment_mode VARCHAR(20) NOT NULL,
		total_amount NUMERIC NOT NULL,
		remarks TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS fee_receipt_items (
		id UUID PRIMARY KEY,
		receipt_id UUID NOT NULL REFERENCES fee_receipts(id) ON DELETE CASCADE,
		fee_type_id UUID NOT NULL REFERENCES fee_types(id),
		amount NUMERIC NOT NULL,
		discount NUMERIC NOT NULL DEFAULT 0,
		net_amount NUMERIC NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS demand_bills (
		id UUID PRIMARY KEY,
		bill_no TEXT NOT NULL UNIQUE,
		student_id UUID NOT NULL REFERENCES students(id),
		session_id UUID NOT NULL REFERENCES academic_sessions(id),
		fee_type_id UUID NOT NULL REFERENCES fee_types(id),
		bill_date DATE NOT NULL,
		due_date DATE,
		amount NUMERIC NOT NULL,
		discount NUMERIC NOT NULL DEFAULT 0,
		late_fee NUMERIC NOT NULL DEFAULT 0,
		net_amount NUMERIC NOT NULL,
		paid_amount NUMERIC NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'unpaid',
		remarks TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS discounts (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		fee_type_id UUID NOT NULL REFERENCES fee_types(id),
		session_id UUID NOT NULL REFERENCES academic_sessions(id),
		discount_type VARCHAR(20) NOT NULL,
		discount_value NUMERIC NOT NULL,
		remarks TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (student_id, fee_type_id, session_id)
	)`,

	`CREATE TABLE IF NOT EXISTS academic_history (
		id UUID PRIMARY KEY,
		student_id UUID NOT NULL REFERENCES students(id) ON DELETE CASCADE,
		session_id UUID NOT NULL REFERENCES academic_sessions(id),
		class_name TEXT NOT NULL,
		section TEXT NOT NULL,
		roll_number INTEGER,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (student_id, session_id)
	)`,

	`CREATE INDEX IF NOT EXISTS demand_bills_student_idx ON demand_bills (student_id)`,
	`CREATE INDEX IF NOT EXISTS fee_receipts_student_idx ON fee_receipts (student_id)`,
	`CREATE INDEX IF NOT EXISTS students_session_idx ON students (session_id)`,
}
