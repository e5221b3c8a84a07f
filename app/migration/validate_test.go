package migration

import (
	"strings"
	"testing"
)

func TestValidateStudentsValidRow(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(nil)))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if !res.IsValid {
		t.Fatalf("expected valid, got errors: %v", res.Errors)
	}
	if res.TotalRows != 1 || res.ValidRows != 1 || res.ErrorCount != 0 {
		t.Errorf("counts = %d/%d/%d, want 1/1/0", res.TotalRows, res.ValidRows, res.ErrorCount)
	}
}

func TestValidateStudentsInvalidGender(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"gender": "unknown"})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if res.IsValid {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("got %d errors (%v), want 1", len(res.Errors), errorFields(res.Errors))
	}
	if res.Errors[0].Field != "gender" || res.Errors[0].Row != 2 {
		t.Errorf("error = %+v, want field gender on row 2", res.Errors[0])
	}
	if res.ValidRows != 0 {
		t.Errorf("ValidRows = %d, want 0", res.ValidRows)
	}
}

func TestValidateStudentsBadDates(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{
		"dob":           "31-31-2020",
		"admissionDate": "soon",
	})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	fields := errorFields(res.Errors)
	if len(fields) != 2 {
		t.Fatalf("got errors on %v, want dob and admissionDate", fields)
	}
	for _, f := range fields {
		if f != "dob" && f != "admissionDate" {
			t.Errorf("unexpected error field %q", f)
		}
	}
}

func TestValidateStudentsMissingRequired(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"name": ""})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if res.IsValid {
		t.Fatal("expected invalid result")
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "name" {
		t.Errorf("errors = %v, want one error on name", res.Errors)
	}
	if !strings.Contains(res.Errors[0].Message, "Name") {
		t.Errorf("message %q should carry the display title", res.Errors[0].Message)
	}
}

func TestValidateStudentsUnknownClass(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"className": "Class 99"})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "className" {
		t.Errorf("errors = %v, want one error on className", res.Errors)
	}
}

func TestValidateStudentsPassOutClassAccepted(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"className": "PASS OUT"})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if !res.IsValid {
		t.Errorf("PASS OUT rejected: %v", res.Errors)
	}
}

func TestValidateStudentsDuplicateIDInFile(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t,
		validStudent(nil),
		validStudent(map[string]string{"studentId": "stu001", "rollNumber": "13"}),
	))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "studentId" || res.Errors[0].Row != 3 {
		t.Errorf("errors = %v, want duplicate-ID error on row 3", res.Errors)
	}
	if res.ValidRows != 1 {
		t.Errorf("ValidRows = %d, want 1", res.ValidRows)
	}
}

func TestValidateStudentsExistingMatchingIsWarning(t *testing.T) {
	store := newFakeStore()
	store.seedStudent("STU001", "john doe", "r. doe") // case differs from row
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"rollNumber": ""})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if !res.IsValid {
		t.Fatalf("matching duplicate should not error: %v", res.Errors)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Field != "studentId" {
		t.Errorf("warnings = %v, want one studentId warning", res.Warnings)
	}
}

func TestValidateStudentsExistingConflictIsError(t *testing.T) {
	store := newFakeStore()
	store.seedStudent("STU001", "John Doe", "Someone Else")
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"rollNumber": ""})))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "studentId" {
		t.Errorf("errors = %v, want one studentId conflict error", res.Errors)
	}
}

func TestValidateStudentsRollNumberScope(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	// Same roll in different sections is fine.
	res, err := svc.ValidateStudents(studentsSheet(t,
		validStudent(nil),
		validStudent(map[string]string{"studentId": "STU002", "section": "Class 5-B"}),
	))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if !res.IsValid {
		t.Errorf("different sections should not collide: %v", res.Errors)
	}

	// Same (session, class, section, roll) on two rows is an error.
	res, err = svc.ValidateStudents(studentsSheet(t,
		validStudent(nil),
		validStudent(map[string]string{"studentId": "STU002", "section": "class 5-a"}),
	))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "rollNumber" || res.Errors[0].Row != 3 {
		t.Errorf("errors = %v, want rollNumber collision on row 3", res.Errors)
	}
}

func TestValidateStudentsRollNumberTakenInStore(t *testing.T) {
	store := newFakeStore()
	store.rolls[fakeRollKey("sess1", "Class 5", "A", 12)] = true
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t, validStudent(nil)))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "rollNumber" {
		t.Errorf("errors = %v, want stored rollNumber collision", res.Errors)
	}
}

func TestValidateStudentsAadhar(t *testing.T) {
	store := newFakeStore()
	store.aadhars["999988887777"] = true
	svc := NewService(store)

	tests := []struct {
		name   string
		aadhar string
		field  string
	}{
		{"bad length", "12345", "aadharNumber"},
		{"already registered", "999988887777", "aadharNumber"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.ValidateStudents(studentsSheet(t, validStudent(map[string]string{"aadharNumber": tt.aadhar})))
			if err != nil {
				t.Fatalf("ValidateStudents: %v", err)
			}
			if len(res.Errors) != 1 || res.Errors[0].Field != tt.field {
				t.Errorf("errors = %v, want one %s error", res.Errors, tt.field)
			}
		})
	}
}

func TestValidateStudentsDuplicateAadharInFile(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(studentsSheet(t,
		validStudent(map[string]string{"aadharNumber": "111122223333"}),
		validStudent(map[string]string{"studentId": "STU002", "rollNumber": "13", "aadharNumber": "111122223333"}),
	))
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if len(res.Errors) != 1 || res.Errors[0].Field != "aadharNumber" || res.Errors[0].Row != 3 {
		t.Errorf("errors = %v, want aadhar duplicate on row 3", res.Errors)
	}
}

func TestValidateStudentsNoFile(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	res, err := svc.ValidateStudents(nil)
	if err != nil {
		t.Fatalf("ValidateStudents: %v", err)
	}
	if res.IsValid {
		t.Fatal("expected invalid result for empty upload")
	}
	if len(res.Errors) != 1 || res.Errors[0].Row != 0 || res.Errors[0].Field != "file" {
		t.Errorf("errors = %v, want one row-0 file error", res.Errors)
	}
}
