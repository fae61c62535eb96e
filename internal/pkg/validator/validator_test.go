package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-15"); !ok {
		t.Error("IsValidDate(2025-03-15) = false, want true")
	}
	for _, s := range []string{"15-03-2025", "2025/03/15", "2025-13-01", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:30", "17:59", "23:59"}
	invalid := []string{"24:00", "8:30", "08:60", "08:3", "0830", "", "ab:cd"}
	for _, s := range valid {
		if !IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClockTime(s) {
			t.Errorf("IsValidClockTime(%q) = true, want false", s)
		}
	}
}
