package utils

import "testing"

func TestSanitizeUserInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  hello  ", "hello"},
		{"drops control chars", "he\x00ll\x1Fo", "hello"},
		{"strips script tags", `before<script>alert(1)</script>after`, "beforeafter"},
		{"strips event handlers", `<img src="x" onerror="alert(1)">`, `<img src="x" >`},
		{"strips javascript protocol", `<a href="javascript:alert(1)">x</a>`, `<a href="alert(1)">x</a>`},
		{"plain text untouched", "just words", "just words"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeUserInput(tt.in); got != tt.want {
				t.Errorf("SanitizeUserInput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"defuses js link", "[click](javascript:alert(1))", "[click](alert(1))"},
		{"defuses js image", "![pic](javascript:alert(1))", "![pic](alert(1))"},
		{"keeps normal link", "[docs](https://example.com)", "[docs](https://example.com)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeMarkdown(tt.in); got != tt.want {
				t.Errorf("SanitizeMarkdown(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report final.pdf", "report_final.pdf"},
		{"../../etc/passwd", "._._etc_passwd"},
		{"weird!!name??.txt", "weird_name_.txt"},
		{"a...b", "a.b"},
	}

	for _, tt := range tests {
		if got := SanitizeFileName(tt.in); got != tt.want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeSearchQuery(t *testing.T) {
	if got := SanitizeSearchQuery(`  <script>'find me'"  `); got != "scriptfind me" {
		t.Errorf("SanitizeSearchQuery() = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a longer sentence", 10, "this is..."},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
