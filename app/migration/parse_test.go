package migration

import (
	"testing"
	"time"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  John  ", "John"},
		{"none", ""},
		{"NONE", ""},
		{"N/A", ""},
		{"null", ""},
		{"-", ""},
		{"na", ""},
		{"NaN", ""},
		{"", ""},
		{"Nanette", "Nanette"},
	}
	for _, tt := range tests {
		if got := SanitizeText(tt.in); got != tt.want {
			t.Errorf("SanitizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string // empty means nil expected
	}{
		{"15-03-2015", "2015-03-15"},
		{"2015-03-15", "2015-03-15"},
		{"15/03/2015", "2015-03-15"},
		{"2 Jan 2006", "2006-01-02"},
		{"31-31-2020", ""},
		{"not a date", ""},
		{"none", ""},
		{"", ""},
	}
	for _, tt := range tests {
		got := ParseDate(tt.in)
		if tt.want == "" {
			if got != nil {
				t.Errorf("ParseDate(%q) = %v, want nil", tt.in, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseDate(%q) = nil, want %s", tt.in, tt.want)
			continue
		}
		if got.Format("2006-01-02") != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestParseDateAmbiguousIsDayFirst(t *testing.T) {
	// 05-03-2015 must read as 5 March, not 3 May.
	got := ParseDate("05-03-2015")
	if got == nil || got.Month() != time.March || got.Day() != 5 {
		t.Fatalf("ParseDate(05-03-2015) = %v, want 5 March 2015", got)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{"1,500.50", 1500.50},
		{"", 0},
		{"n/a", 0},
		{"abc", 0},
		{"  250 ", 250},
	}
	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"4", 4},
		{"12", 12},
		{"0", 1},
		{"13", 1},
		{"", 1},
		{"April", 1},
	}
	for _, tt := range tests {
		if got := ParseMonth(tt.in); got != tt.want {
			t.Errorf("ParseMonth(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseRollNumber(t *testing.T) {
	if got := ParseRollNumber("12"); got == nil || *got != 12 {
		t.Errorf("ParseRollNumber(12) = %v, want 12", got)
	}
	if got := ParseRollNumber(""); got != nil {
		t.Errorf("ParseRollNumber(\"\") = %v, want nil", got)
	}
	if got := ParseRollNumber("A12"); got != nil {
		t.Errorf("ParseRollNumber(A12) = %v, want nil", got)
	}
}

func TestCleanSection(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Class 5-A", "A"},
		{"A", "A"},
		{"UKG - B", "B"},
		{"  B  ", "B"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanSection(tt.in); got != tt.want {
			t.Errorf("CleanSection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanRouteCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R01: North Loop", "R01"},
		{"R01", "R01"},
		{" R02 : South ", "R02"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanRouteCode(tt.in); got != tt.want {
			t.Errorf("CleanRouteCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanStopName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"R01 - Main Gate", "Main Gate"},
		{"Main Gate", "Main Gate"},
		{"R01 - Park - East", "East"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanStopName(tt.in); got != tt.want {
			t.Errorf("CleanStopName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"9876543210", true},
		{"919876543210", true},
		{"12345", false},
		{"98765abc10", false},
		{"1234567890123456", false},
	}
	for _, tt := range tests {
		if got := ValidPhone(tt.in); got != tt.want {
			t.Errorf("ValidPhone(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidAadhar(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"123456789012", true},
		{"12345678901", false},
		{"1234567890123", false},
		{"12345678901a", false},
	}
	for _, tt := range tests {
		if got := ValidAadhar(tt.in); got != tt.want {
			t.Errorf("ValidAadhar(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
