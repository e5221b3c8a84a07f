package migration

import "strings"

// Options carries caller choices for one import run. The HTTP layer
// accepts skipOnError as a bool or the string "true".
type Options struct {
	SkipOnError bool `json:"skipOnError"`
}

// ParseOptions builds Options from a loosely-typed form value.
func ParseOptions(skipOnError string) Options {
	return Options{SkipOnError: strings.EqualFold(strings.TrimSpace(skipOnError), "true")}
}

// failurePolicy is the single decision point for row-level failures.
// Every entity importer reports failed units here instead of branching
// on a flag at each call site.
type failurePolicy struct {
	skipOnError bool
}

func policyFor(opts Options) failurePolicy {
	return failurePolicy{skipOnError: opts.SkipOnError}
}

// onFailure records the failed unit and reports whether processing should
// continue. When skipOnError is off the importer aborts with the partial
// result accumulated so far.
func (p failurePolicy) onFailure(res *ImportResult, row int, studentID, reason string) bool {
	res.fail(row, studentID, reason)
	res.addError(row, "", "", reason)
	if p.skipOnError {
		return true
	}
	res.Success = false
	return false
}
