package utils

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name       string
		password   string
		wantErrors int
	}{
		{"strong", "Str0ngPass", 0},
		{"too short", "Ab1", 1},
		{"no uppercase", "weakpass1", 1},
		{"no lowercase", "WEAKPASS1", 1},
		{"no digit", "WeakPassword", 1},
		{"everything wrong", "abc", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errors := ValidatePassword(tt.password)
			if len(errors) != tt.wantErrors {
				t.Errorf("ValidatePassword(%q) returned %d errors %v, want %d",
					tt.password, len(errors), errors, tt.wantErrors)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/path", true},
		{"http://localhost:8080", true},
		{"ftp://example.com", false},
		{"not a url", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateURL(tt.url); got != tt.want {
			t.Errorf("ValidateURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestValidateContentTitle(t *testing.T) {
	if err := ValidateContentTitle("A fine title"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateContentTitle("   "); err == nil {
		t.Error("expected error for blank title")
	}
	if err := ValidateContentTitle(strings.Repeat("x", 201)); err == nil {
		t.Error("expected error for oversized title")
	}
}

func TestValidateContentBody(t *testing.T) {
	if err := ValidateContentBody("body"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateContentBody(""); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestValidateTags(t *testing.T) {
	if err := ValidateTags([]string{"go", "web dev", "api 2"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateTags(make([]string, 21)); err == nil {
		t.Error("expected error for too many tags")
	}
	if err := ValidateTags([]string{"bad#tag"}); err == nil {
		t.Error("expected error for special characters")
	}
	if err := ValidateTags([]string{strings.Repeat("x", 51)}); err == nil {
		t.Error("expected error for oversized tag")
	}
}
