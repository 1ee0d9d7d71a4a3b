package ai

import (
	"strings"
	"testing"

	"github.com/contentflowhq/contentflow-backend/internal/models"
)

func TestBuildIdeasPrompt(t *testing.T) {
	prompt := buildIdeasPrompt(&models.GenerateIdeasRequest{
		BusinessDescription: "indie game studio",
		ContentTypes:        []string{"blog", "video"},
		Count:               3,
	})

	for _, want := range []string{
		"Generate 3 creative content ideas",
		`"indie game studio"`,
		"blog, video",
		"ONLY a valid JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("ideas prompt missing %q", want)
		}
	}
}

func TestBuildHooksPrompt(t *testing.T) {
	prompt := buildHooksPrompt(&models.GenerateHooksRequest{
		Topic:       "time management",
		ContentType: "newsletter",
		Count:       4,
	})

	for _, want := range []string{
		"Generate 4 compelling opening hooks",
		`about "time management"`,
		"newsletter format",
		"ONLY a JSON array of strings",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("hooks prompt missing %q", want)
		}
	}
}

func TestBuildOutlinePrompt(t *testing.T) {
	prompt := buildOutlinePrompt(&models.GenerateOutlineRequest{
		Topic:       "composting",
		Hook:        "Your trash is treasure.",
		ContentType: "blog",
	})

	for _, want := range []string{
		`blog about "composting"`,
		`Opening Hook: "Your trash is treasure."`,
		`"keyPoints"`,
		`"cta"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("outline prompt missing %q", want)
		}
	}
}

func TestBuildTextOperationPrompt(t *testing.T) {
	tests := []struct {
		operation string
		want      string
	}{
		{models.TextOpExpand, "Expand the following text"},
		{models.TextOpCondense, "Condense the following text"},
		{models.TextOpImprove, "Improve the following text"},
		{models.TextOpRephrase, "Rephrase the following text"},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			prompt, err := buildTextOperationPrompt(&models.TextOperationRequest{
				Text:      "original words",
				Operation: tt.operation,
			})
			if err != nil {
				t.Fatalf("buildTextOperationPrompt() error = %v", err)
			}
			if !strings.HasPrefix(prompt, tt.want) {
				t.Errorf("prompt = %.40q, want prefix %q", prompt, tt.want)
			}
			if !strings.HasSuffix(prompt, "original words") {
				t.Errorf("prompt does not end with the input text")
			}
		})
	}

	if _, err := buildTextOperationPrompt(&models.TextOperationRequest{Text: "x", Operation: "translate"}); err == nil {
		t.Error("expected error for unknown operation")
	}
}

func TestBuildAnalysisPrompt(t *testing.T) {
	t.Run("with title", func(t *testing.T) {
		prompt := buildAnalysisPrompt(&models.AnalyzeContentRequest{Text: "body text", Title: "My Post"})
		if !strings.Contains(prompt, `titled "My Post"`) {
			t.Error("analysis prompt missing title clause")
		}
		if !strings.Contains(prompt, "body text") {
			t.Error("analysis prompt missing content")
		}
	})

	t.Run("without title", func(t *testing.T) {
		prompt := buildAnalysisPrompt(&models.AnalyzeContentRequest{Text: "body text"})
		if strings.Contains(prompt, "titled") {
			t.Error("analysis prompt should omit title clause")
		}
		if !strings.Contains(prompt, `"seoScore"`) {
			t.Error("analysis prompt missing format block")
		}
	})
}
