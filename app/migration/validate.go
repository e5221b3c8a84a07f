package migration

import (
	"fmt"
	"strings"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// field display names used in validation messages.
var fieldTitles = func() map[string]string {
	m := make(map[string]string)
	for _, c := range StudentsSchema.Columns {
		m[c.Key] = c.Title
	}
	return m
}()

// ValidateStudents runs the read-only validation pass over a Students
// sheet. Nothing is persisted; the importer repeats the storage lookups
// at import time since data may change between the two calls.
func (s *Service) ValidateStudents(data []byte) (*ValidationResult, error) {
	res := &ValidationResult{
		Errors:   []ValidationError{},
		Warnings: []ValidationError{},
	}

	raw, err := ReadSheet(data, StudentsSchema.Name)
	if err != nil {
		res.addError(0, "file", "", err.Error())
		res.ErrorCount = 1
		return res, nil
	}

	ref, err := LoadRefData(s.store)
	if err != nil {
		return nil, err
	}

	rows := DecodeRows(StudentsSchema, raw)
	res.TotalRows = len(rows)

	// Within-file collision trackers.
	seenIDs := make(map[string]int)
	seenRolls := make(map[string]int)
	seenAadhars := make(map[string]int)
	errorRows := make(map[int]bool)

	for _, row := range rows {
		rowHadError := func(field, value, msg string) {
			res.addError(row.Num, field, value, msg)
			errorRows[row.Num] = true
		}

		for _, key := range StudentsSchema.MissingRequired(row) {
			rowHadError(key, "", fmt.Sprintf("%s is required", fieldTitles[key]))
		}

		studentID := row.Get("studentId")
		name := row.Get("name")
		fatherName := row.Get("fatherName")

		if g := row.Get("gender"); g != "" && !models.ValidGender(strings.ToLower(g)) {
			rowHadError("gender", g, "Gender must be male, female or other")
		}
		if cn := row.Get("className"); cn != "" && !ref.HasClass(cn) {
			rowHadError("className", cn, "Class not found (use an existing class or PASS OUT)")
		}
		if dob := row.Get("dob"); dob != "" && !ValidDate(dob) {
			rowHadError("dob", dob, "Invalid date (expected DD-MM-YYYY)")
		}
		if ad := row.Get("admissionDate"); ad != "" && !ValidDate(ad) {
			rowHadError("admissionDate", ad, "Invalid date (expected DD-MM-YYYY)")
		}
		if ph := row.Get("phone"); ph != "" && !ValidPhone(ph) {
			rowHadError("phone", ph, "Phone must be 10-15 digits")
		}

		// Smart duplicate detection: a stored student with the same ID is
		// benign when name and father name match, a conflict otherwise.
		if studentID != "" {
			idKey := strings.ToLower(studentID)
			if prev, ok := seenIDs[idKey]; ok {
				rowHadError("studentId", studentID, fmt.Sprintf("Duplicate Student ID within file (also on row %d)", prev))
			} else {
				seenIDs[idKey] = row.Num
				existing, err := s.store.StudentIdentityByID(studentID)
				if err != nil {
					return nil, err
				}
				if existing != nil {
					if identityMatches(existing, name, fatherName) {
						res.addWarning(row.Num, "studentId", studentID, "Student ID already exists with matching details; row will be skipped")
					} else {
						rowHadError("studentId", studentID, "Student ID already exists but name/father name conflict with the stored record")
					}
				}
			}
		}

		// Roll-number collisions, scoped to (session, class, section).
		if roll := row.Get("rollNumber"); roll != "" {
			session := ref.ResolveSession(row.Get("sessionName"))
			sessionName := row.Get("sessionName")
			sessionID := ""
			if session != nil {
				sessionName = session.Name
				sessionID = session.ID
			}
			key := rollKey(sessionName, row.Get("className"), CleanSection(row.Get("section")), roll)
			if prev, ok := seenRolls[key]; ok {
				rowHadError("rollNumber", roll, fmt.Sprintf("Duplicate roll number within file for the same session/class/section (also on row %d)", prev))
			} else {
				seenRolls[key] = row.Num
				if n := ParseRollNumber(roll); n != nil && sessionID != "" {
					taken, err := s.store.RollNumberTaken(sessionID, row.Get("className"), CleanSection(row.Get("section")), *n)
					if err != nil {
						return nil, err
					}
					if taken {
						rowHadError("rollNumber", roll, "Roll number already taken in this session/class/section")
					}
				}
			}
		}

		// Aadhar numbers are globally unique when present.
		if aadhar := row.Get("aadharNumber"); aadhar != "" {
			if !ValidAadhar(aadhar) {
				rowHadError("aadharNumber", aadhar, "Aadhar number must be 12 digits")
			} else if prev, ok := seenAadhars[aadhar]; ok {
				rowHadError("aadharNumber", aadhar, fmt.Sprintf("Duplicate Aadhar number within file (also on row %d)", prev))
			} else {
				seenAadhars[aadhar] = row.Num
				taken, err := s.store.AadharTaken(aadhar)
				if err != nil {
					return nil, err
				}
				if taken {
					rowHadError("aadharNumber", aadhar, "Aadhar number already registered to another student")
				}
			}
		}
	}

	res.ErrorCount = len(res.Errors)
	res.ValidRows = res.TotalRows - len(errorRows)
	res.IsValid = res.ErrorCount == 0
	return res, nil
}

func identityMatches(existing *StudentIdentity, name, fatherName string) bool {
	return strings.EqualFold(strings.TrimSpace(existing.Name), strings.TrimSpace(name)) &&
		strings.EqualFold(strings.TrimSpace(existing.FatherName), strings.TrimSpace(fatherName))
}
