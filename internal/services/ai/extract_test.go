package ai

import (
	"reflect"
	"testing"

	"github.com/contentflowhq/contentflow-backend/internal/models"
)

func TestExtractOutlineFencedJSON(t *testing.T) {
	raw := "```json\n{\"sections\":[{\"id\":1,\"heading\":\"Intro\",\"keyPoints\":[\"a\",\"b\"]}],\"cta\":\"Read more\"}\n```"

	got := extractOutline(raw, "testing")

	want := &models.GeneratedOutline{
		Sections: []models.OutlineSection{
			{ID: 1, Heading: "Intro", KeyPoints: []string{"a", "b"}},
		},
		CTA: "Read more",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractOutline() = %+v, want %+v", got, want)
	}
}

func TestExtractOutlineProseWrapped(t *testing.T) {
	raw := "Here is your outline:\n{\"sections\":[{\"id\":1,\"heading\":\"Setup\",\"keyPoints\":[\"x\"]}],\"cta\":\"Go\"}\nHope this helps!"

	got := extractOutline(raw, "testing")

	if len(got.Sections) != 1 || got.Sections[0].Heading != "Setup" || got.CTA != "Go" {
		t.Errorf("extractOutline() = %+v, want the embedded outline", got)
	}
}

func TestExtractOutlineRefusalFallsBack(t *testing.T) {
	before := FallbackCount()

	got := extractOutline("Sorry, I can't help with that.", "gardening")

	if FallbackCount() != before+1 {
		t.Errorf("FallbackCount() = %d, want %d", FallbackCount(), before+1)
	}
	if len(got.Sections) != 4 {
		t.Fatalf("fallback outline has %d sections, want 4", len(got.Sections))
	}
	if got.Sections[0].Heading != "Introduction to gardening" {
		t.Errorf("fallback first heading = %q", got.Sections[0].Heading)
	}
	if got.Sections[3].Heading != "Conclusion" {
		t.Errorf("fallback last heading = %q", got.Sections[3].Heading)
	}
	if got.CTA != "Learn more and get started today" {
		t.Errorf("fallback cta = %q", got.CTA)
	}
}

func TestExtractIdeas(t *testing.T) {
	req := &models.GenerateIdeasRequest{
		BusinessDescription: "indie coffee roastery",
		ContentTypes:        []string{"blog"},
		Count:               2,
	}

	tests := []struct {
		name      string
		raw       string
		wantLen   int
		wantTitle string
	}{
		{
			name:      "clean array",
			raw:       `[{"title":"Bean to Cup","description":"d","contentType":"blog","platforms":["medium"],"category":"tutorial"}]`,
			wantLen:   1,
			wantTitle: "Bean to Cup",
		},
		{
			name:      "fenced array with preamble",
			raw:       "Sure!\n```json\n[{\"title\":\"Roast Levels\",\"description\":\"d\",\"contentType\":\"blog\",\"platforms\":[],\"category\":\"how-to\"}]\n```",
			wantLen:   1,
			wantTitle: "Roast Levels",
		},
		{
			name:      "unparseable falls back",
			raw:       "I'd be happy to brainstorm with you.",
			wantLen:   1,
			wantTitle: "Content Ideas for indie coffee roastery",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractIdeas(tt.raw, req)
			if len(got) != tt.wantLen {
				t.Fatalf("got %d ideas, want %d", len(got), tt.wantLen)
			}
			if got[0].Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", got[0].Title, tt.wantTitle)
			}
		})
	}
}

func TestExtractIdeasFallbackShape(t *testing.T) {
	req := &models.GenerateIdeasRequest{
		BusinessDescription: "yoga studio",
		ContentTypes:        []string{"video", "blog"},
	}

	got := extractIdeas("not json", req)

	want := []models.GeneratedIdea{
		{
			Title:       "Content Ideas for yoga studio",
			Description: "AI-generated content idea based on your business description.",
			ContentType: "video",
			Platforms:   []string{"medium", "linkedin"},
			Category:    "general",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fallback = %+v, want %+v", got, want)
	}
}

func TestExtractHooks(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantLen int
	}{
		{
			name: "clean array",
			raw:  `["Hook one", "Hook two"]`,
			want: []string{"Hook one", "Hook two"},
		},
		{
			name: "array inside prose",
			raw:  "Here you go:\n[\"Did you know?\", \"Stop scrolling.\"]\nEnjoy!",
			want: []string{"Did you know?", "Stop scrolling."},
		},
		{
			name:    "fallback is five templated hooks",
			raw:     "no hooks today",
			wantLen: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractHooks(tt.raw, "remote work")
			if tt.want != nil {
				if !reflect.DeepEqual(got, tt.want) {
					t.Errorf("extractHooks() = %v, want %v", got, tt.want)
				}
				return
			}
			if len(got) != tt.wantLen {
				t.Fatalf("got %d hooks, want %d", len(got), tt.wantLen)
			}
			if got[0] != "Discover the surprising truth about remote work" {
				t.Errorf("first fallback hook = %q", got[0])
			}
		})
	}
}

func TestExtractAnalysis(t *testing.T) {
	t.Run("parsed", func(t *testing.T) {
		raw := `{"seoScore":91,"seoExplanation":"strong","readabilityScore":80,"gradeLevel":"College","tone":"Casual","strengths":["s"],"improvements":["i"],"suggestions":["g"]}`

		got := extractAnalysis(raw)

		if got.SEOScore != 91 || got.Tone != "Casual" || got.GradeLevel != "College" {
			t.Errorf("extractAnalysis() = %+v", got)
		}
	})

	t.Run("fallback", func(t *testing.T) {
		got := extractAnalysis("I cannot analyze that.")

		if got.SEOScore != 75 || got.ReadabilityScore != 70 {
			t.Errorf("fallback scores = %d/%d, want 75/70", got.SEOScore, got.ReadabilityScore)
		}
		if got.Tone != "Professional" || got.GradeLevel != "High School" {
			t.Errorf("fallback tone/grade = %q/%q", got.Tone, got.GradeLevel)
		}
		if len(got.Suggestions) != 5 {
			t.Errorf("fallback has %d suggestions, want 5", len(got.Suggestions))
		}
	})
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n[1,2]\n```", "[1,2]"},
		{"no fence", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanResponse(tt.in); got != tt.want {
				t.Errorf("cleanResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
