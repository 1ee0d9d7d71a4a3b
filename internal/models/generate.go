package models

// Text transform operations
const (
	TextOpExpand   = "expand"
	TextOpCondense = "condense"
	TextOpImprove  = "improve"
	TextOpRephrase = "rephrase"
)

// GenerateIdeasRequest represents the request for the idea generation operation
type GenerateIdeasRequest struct {
	BusinessDescription string   `json:"businessDescription"`
	ContentTypes        []string `json:"contentTypes"`
	Count               int      `json:"count"`
}

// GeneratedIdea is one idea returned by the model (or the fallback)
type GeneratedIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ContentType string   `json:"contentType"`
	Platforms   []string `json:"platforms"`
	Category    string   `json:"category"`
}

// GenerateHooksRequest represents the request for the hook generation operation
type GenerateHooksRequest struct {
	Topic       string `json:"topic"`
	ContentType string `json:"contentType"`
	Count       int    `json:"count"`
}

// GenerateOutlineRequest represents the request for the outline generation operation
type GenerateOutlineRequest struct {
	Topic       string `json:"topic"`
	Hook        string `json:"hook"`
	ContentType string `json:"contentType"`
}

// GeneratedOutline is the structured outline returned by the model (or the fallback)
type GeneratedOutline struct {
	Sections []OutlineSection `json:"sections"`
	CTA      string           `json:"cta"`
}

// TextOperationRequest represents the request for a text transform operation
type TextOperationRequest struct {
	Text      string `json:"text"`
	Operation string `json:"operation"`
}

// AnalyzeContentRequest represents the request for the content analysis operation
type AnalyzeContentRequest struct {
	Text  string `json:"text"`
	Title string `json:"title,omitempty"`
}

// ContentAnalysis is the structured analysis returned by the model (or the fallback)
type ContentAnalysis struct {
	SEOScore         int      `json:"seoScore"`
	SEOExplanation   string   `json:"seoExplanation"`
	ReadabilityScore int      `json:"readabilityScore"`
	GradeLevel       string   `json:"gradeLevel"`
	Tone             string   `json:"tone"`
	Strengths        []string `json:"strengths"`
	Improvements     []string `json:"improvements"`
	Suggestions      []string `json:"suggestions"`
}
