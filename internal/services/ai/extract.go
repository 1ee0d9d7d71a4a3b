package ai

import (
	"encoding/json"
	"regexp"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/contentflowhq/contentflow-backend/internal/models"
)

// Models are told to answer with raw JSON but frequently wrap it in
// markdown fences or chatty prose anyway. Extraction runs a fixed chain
// per expected shape: strip fences, grab the outermost bracket pair,
// parse, retry on the whole cleaned text, and finally substitute a
// canned payload so the caller always gets the shape it asked for.

var (
	fenceRe        = regexp.MustCompile("```json\n?|```\n?")
	objectArrayRe  = regexp.MustCompile(`(?s)\[\s*\{.*\}\s*\]`)
	stringArrayRe  = regexp.MustCompile(`(?s)\[\s*["'].*["']\s*\]`)
	objectRe       = regexp.MustCompile(`(?s)\{.*\}`)
	fallbackServed atomic.Int64
)

// FallbackCount reports how many responses were replaced with a canned
// payload since startup. Exposed on the admin stats endpoint.
func FallbackCount() int64 {
	return fallbackServed.Load()
}

func cleanResponse(raw string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))
}

func noteFallback(operation, raw string) {
	fallbackServed.Add(1)
	logrus.WithFields(logrus.Fields{
		"operation": operation,
		"served":    fallbackServed.Load(),
	}).Warnf("Failed to parse AI response, serving fallback: %.200s", raw)
}

func parseJSON(candidate, whole string, out interface{}) bool {
	if candidate != "" && json.Unmarshal([]byte(candidate), out) == nil {
		return true
	}
	return json.Unmarshal([]byte(whole), out) == nil
}

func extractIdeas(raw string, req *models.GenerateIdeasRequest) []models.GeneratedIdea {
	cleaned := cleanResponse(raw)

	var ideas []models.GeneratedIdea
	if parseJSON(objectArrayRe.FindString(cleaned), cleaned, &ideas) {
		return ideas
	}

	noteFallback("generate-ideas", raw)
	return []models.GeneratedIdea{
		{
			Title:       "Content Ideas for " + req.BusinessDescription,
			Description: "AI-generated content idea based on your business description.",
			ContentType: req.ContentTypes[0],
			Platforms:   []string{"medium", "linkedin"},
			Category:    "general",
		},
	}
}

func extractHooks(raw, topic string) []string {
	cleaned := cleanResponse(raw)

	var hooks []string
	if parseJSON(stringArrayRe.FindString(cleaned), cleaned, &hooks) {
		return hooks
	}

	noteFallback("generate-hooks", raw)
	return []string{
		"Discover the surprising truth about " + topic,
		"Why " + topic + " matters more than you think",
		"The complete guide to understanding " + topic,
		"What everyone gets wrong about " + topic,
		topic + ": Everything you need to know",
	}
}

func extractOutline(raw, topic string) *models.GeneratedOutline {
	cleaned := cleanResponse(raw)

	var outline models.GeneratedOutline
	if parseJSON(objectRe.FindString(cleaned), cleaned, &outline) && len(outline.Sections) > 0 {
		return &outline
	}

	noteFallback("generate-outline", raw)
	return &models.GeneratedOutline{
		Sections: []models.OutlineSection{
			{ID: 1, Heading: "Introduction to " + topic, KeyPoints: []string{"Context", "Why it matters", "What we will cover"}},
			{ID: 2, Heading: "Key Concepts", KeyPoints: []string{"Definition", "Historical context", "Current applications"}},
			{ID: 3, Heading: "Best Practices", KeyPoints: []string{"Tip 1", "Tip 2", "Common mistakes to avoid"}},
			{ID: 4, Heading: "Conclusion", KeyPoints: []string{"Summary", "Key takeaways", "Next steps"}},
		},
		CTA: "Learn more and get started today",
	}
}

func extractAnalysis(raw string) *models.ContentAnalysis {
	cleaned := cleanResponse(raw)

	var analysis models.ContentAnalysis
	if parseJSON(objectRe.FindString(cleaned), cleaned, &analysis) && analysis.Tone != "" {
		return &analysis
	}

	noteFallback("analyze-content", raw)
	return &models.ContentAnalysis{
		SEOScore:         75,
		SEOExplanation:   "Content analyzed successfully",
		ReadabilityScore: 70,
		GradeLevel:       "High School",
		Tone:             "Professional",
		Strengths:        []string{"Clear structure", "Good flow", "Engaging content"},
		Improvements:     []string{"Add more keywords", "Improve transitions", "Enhance conclusion"},
		Suggestions: []string{
			"Add relevant keywords naturally",
			"Include internal/external links",
			"Optimize meta description",
			"Use more subheadings",
			"Add multimedia elements",
		},
	}
}
