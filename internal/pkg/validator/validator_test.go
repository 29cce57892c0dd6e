package validator

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"valid simple", "user@example.com", true},
		{"valid with plus", "user+tag@example.co.in", true},
		{"valid with dots", "first.last@sub.example.com", true},
		{"missing at", "userexample.com", false},
		{"missing domain", "user@", false},
		{"missing tld", "user@example", false},
		{"empty", "", false},
		{"spaces", "user @example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		name    string
		dateStr string
		want    bool
	}{
		{"valid date", "2026-01-14", true},
		{"valid leap day", "2024-02-29", true},
		{"invalid leap day", "2026-02-29", false},
		{"wrong format", "14-01-2026", false},
		{"with time", "2026-01-14T09:30:00Z", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDate(tt.dateStr); got != tt.want {
				t.Errorf("IsValidDate(%q) = %v, want %v", tt.dateStr, got, tt.want)
			}
		})
	}
}

func TestIsValidDateTime(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"utc", "2026-01-14T09:30:00Z", true},
		{"offset", "2026-01-14T09:30:00+05:30", true},
		{"nanos", "2026-01-14T09:30:00.123456789Z", true},
		{"date only", "2026-01-14", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := IsValidDateTime(tt.in); got != tt.want {
				t.Errorf("IsValidDateTime(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("   ") {
		t.Error("expected whitespace-only string to be empty")
	}
	if IsEmpty(" a ") {
		t.Error("expected non-blank string to not be empty")
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"PENDING", "APPROVED", "REJECTED"}

	if !IsInSlice("APPROVED", statuses) {
		t.Error("expected APPROVED to be found")
	}
	if IsInSlice("CANCELLED", statuses) {
		t.Error("expected CANCELLED to not be found")
	}
	if IsInSlice("approved", statuses) {
		t.Error("membership check must be case sensitive")
	}
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		name string
		uuid string
		want bool
	}{
		{"valid v7", "01912d68-783e-7a03-8467-5661c1f0d7aa", true},
		{"uppercase v7", "01912D68-783E-7A03-8467-5661C1F0D7AA", true},
		{"v4 rejected", "f47ac10b-58cc-4372-a567-0e02b2c3d479", false},
		{"not a uuid", "hello-world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUID(tt.uuid); got != tt.want {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.uuid, got, tt.want)
			}
		})
	}
}
