package migration

// ValidationError describes one problem found in the uploaded sheet.
// Row 0 marks a run-wide precondition failure (missing sheet, no active
// session) rather than a problem with a particular row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ValidationResult is the outcome of a read-only validation pass.
// Warnings never block an import; IsValid is true iff there are no errors.
type ValidationResult struct {
	IsValid    bool              `json:"isValid"`
	TotalRows  int               `json:"totalRows"`
	ValidRows  int               `json:"validRows"`
	ErrorCount int               `json:"errorCount"`
	Errors     []ValidationError `json:"errors"`
	Warnings   []ValidationError `json:"warnings"`
}

func (r *ValidationResult) addError(row int, field, value, message string) {
	r.Errors = append(r.Errors, ValidationError{Row: row, Field: field, Value: value, Message: message})
}

func (r *ValidationResult) addWarning(row int, field, value, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Row: row, Field: field, Value: value, Message: message})
}

// RowDetail records why one logical unit was skipped or failed.
type RowDetail struct {
	Row       int    `json:"row"`
	Status    string `json:"status"` // "skipped" or "failed"
	StudentID string `json:"studentId,omitempty"`
	Reason    string `json:"reason"`
}

// ImportResult is the outcome of a mutating import pass.
type ImportResult struct {
	Success   bool              `json:"success"`
	TotalRows int               `json:"totalRows"`
	Imported  int               `json:"imported"`
	Skipped   int               `json:"skipped"`
	Errors    []ValidationError `json:"errors"`
	Warnings  []ValidationError `json:"warnings,omitempty"`
	Details   []RowDetail       `json:"details,omitempty"`
}

func (r *ImportResult) addError(row int, field, value, message string) {
	r.Errors = append(r.Errors, ValidationError{Row: row, Field: field, Value: value, Message: message})
}

func (r *ImportResult) addWarning(row int, field, value, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Row: row, Field: field, Value: value, Message: message})
}

func (r *ImportResult) skip(row int, studentID, reason string) {
	r.Skipped++
	r.Details = append(r.Details, RowDetail{Row: row, Status: "skipped", StudentID: studentID, Reason: reason})
}

func (r *ImportResult) fail(row int, studentID, reason string) {
	r.Details = append(r.Details, RowDetail{Row: row, Status: "failed", StudentID: studentID, Reason: reason})
}
