package common

import "testing"

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"clean", "https://example.com", "https://example.com"},
		{"whitespace", "  https://example.com \n", "https://example.com"},
		{"trailing comma", "https://example.com,", "https://example.com"},
		{"markdown link", "[repo](https://github.com/x/y)", "https://github.com/x/y"},
		{"wrapping parens", "(https://example.com)", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeURL(tt.in); got != tt.want {
				t.Errorf("SanitizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid https", "https://github.com/x/y", false},
		{"valid with junk", " https://github.com/x/y, ", false},
		{"ftp scheme", "ftp://example.com", true},
		{"no host", "https://", true},
		{"spaces", "https://exa mple.com", true},
		{"empty", "   ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateURL(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}
