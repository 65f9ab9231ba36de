package crypto

import (
	"strings"
	"testing"
)

func TestGeneratePasswordLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr error
	}{
		{name: "minimum", length: MinPasswordLength},
		{name: "typical", length: 20},
		{name: "maximum", length: MaxPasswordLength},
		{name: "too short", length: MinPasswordLength - 1, wantErr: ErrPasswordLength},
		{name: "too long", length: MaxPasswordLength + 1, wantErr: ErrPasswordLength},
		{name: "zero", length: 0, wantErr: ErrPasswordLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GeneratePassword(tt.length)
			if err != tt.wantErr {
				t.Fatalf("GeneratePassword() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if got != "" {
					t.Error("GeneratePassword() should return empty string on error")
				}
				return
			}
			if len(got) != tt.length {
				t.Errorf("GeneratePassword() length = %d, want %d", len(got), tt.length)
			}
		})
	}
}

func TestGeneratePasswordContainsEveryClass(t *testing.T) {
	// Repeated to make a lucky pass unlikely.
	for i := 0; i < 50; i++ {
		password, err := GeneratePassword(MinPasswordLength)
		if err != nil {
			t.Fatalf("GeneratePassword() unexpected error: %v", err)
		}
		for _, class := range passwordClasses {
			if !strings.ContainsAny(password, class) {
				t.Errorf("password %q has no character from %q", password, class)
			}
		}
	}
}

func TestGeneratePasswordUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		password, err := GeneratePassword(16)
		if err != nil {
			t.Fatalf("GeneratePassword() unexpected error: %v", err)
		}
		if seen[password] {
			t.Errorf("duplicate password generated: %q", password)
		}
		seen[password] = true
	}
}
