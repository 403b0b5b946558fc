package security

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text untouched", "كيف أتوضأ؟", "كيف أتوضأ؟"},
		{"trims whitespace", "  hello  ", "hello"},
		{"removes script tag", "before<script>alert(1)</script>after", "beforeafter"},
		{"removes script tag case insensitive", "<SCRIPT>x</SCRIPT>ok", "ok"},
		{"removes javascript protocol", "javascript:void(0) question", "void(0) question"},
		{"removes event handler", "text onclick= more", "text  more"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Sanitize(tc.input)
			if got != tc.expected {
				t.Errorf("Sanitize(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestSuspicious(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"what are the pillars of prayer?", false},
		{"<script>alert(1)</script>", true},
		{"<SCRIPT src=x>", true},
		{"javascript:alert(1)", true},
		{"data:text/html,payload", true},
		{"vbscript:msgbox", true},
		{"", false},
	}

	for _, tc := range tests {
		if got := Suspicious(tc.input); got != tc.expected {
			t.Errorf("Suspicious(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}
