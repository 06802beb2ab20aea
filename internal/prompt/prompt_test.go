package prompt_test

import (
	"testing"

	"github.com/iceinvein/create-react-csr-app/internal/prompt"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "myapp", false},
		{"name with spaces", "My App", false},
		{"name with hyphen and underscore", "my-app_v2", false},
		{"digits only", "2048", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"exclamation mark", "bad!name", true},
		{"slash", "my/app", true},
		{"dot", "my.app", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := prompt.ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"My App", "My-App"},
		{"my   spaced   app", "my-spaced-app"},
		{"  padded  ", "padded"},
		{"already-fine", "already-fine"},
		{"tab\tseparated", "tab-separated"},
	}

	for _, tt := range tests {
		if got := prompt.NormalizeName(tt.input); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
