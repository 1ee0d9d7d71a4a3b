package ai

import (
	"fmt"
	"strings"

	"github.com/contentflowhq/contentflow-backend/internal/models"
)

// Prompt templates per operation. Caller input is interpolated verbatim;
// every template ends with an explicit output-format directive that the
// extraction step depends on.

func buildIdeasPrompt(req *models.GenerateIdeasRequest) string {
	return fmt.Sprintf(`Generate %d creative content ideas for a business/creator with this description:

"%s"

Content types they're interested in: %s

For each idea, provide:
1. A compelling title
2. A brief description (2-3 sentences)
3. The most suitable content type
4. Suggested platforms for distribution
5. A category (e.g., tutorial, opinion, how-to, case study, listicle)

CRITICAL: You must respond with ONLY a valid JSON array. Do not include markdown code blocks, explanations, or any other text. Just the raw JSON array.

Format: [{"title": "...", "description": "...", "contentType": "...", "platforms": ["..."], "category": "..."}]`,
		req.Count, req.BusinessDescription, strings.Join(req.ContentTypes, ", "))
}

func buildHooksPrompt(req *models.GenerateHooksRequest) string {
	return fmt.Sprintf(`Generate %d compelling opening hooks for a %s about "%s".

Each hook should:
- Be attention-grabbing and make the reader want to continue
- Be suitable for the %s format
- Be different in style (question, statement, statistic, story, etc.)
- Be concise (1-2 sentences max)

Return ONLY a JSON array of strings, with each string being one hook. No other text or explanation.`,
		req.Count, req.ContentType, req.Topic, req.ContentType)
}

func buildOutlinePrompt(req *models.GenerateOutlineRequest) string {
	return fmt.Sprintf(`Create a detailed content outline for a %s about "%s".

Opening Hook: "%s"

Provide a structured outline with:
1. 3-5 main sections, each with:
   - A clear heading
   - 3-5 key points to cover
2. A compelling call-to-action at the end

Format your response as JSON with this structure:
{
  "sections": [
    {
      "id": 1,
      "heading": "Section Title",
      "keyPoints": ["point 1", "point 2", "point 3"]
    }
  ],
  "cta": "Your call to action"
}`,
		req.ContentType, req.Topic, req.Hook)
}

func buildTextOperationPrompt(req *models.TextOperationRequest) (string, error) {
	var instruction string
	switch req.Operation {
	case models.TextOpExpand:
		instruction = "Expand the following text by adding more detail, examples, and context. Make it more comprehensive while maintaining the original meaning and tone"
	case models.TextOpCondense:
		instruction = "Condense the following text to make it more concise while preserving all key information and maintaining clarity"
	case models.TextOpImprove:
		instruction = "Improve the following text by enhancing grammar, flow, clarity, and engagement. Make it more professional and compelling"
	case models.TextOpRephrase:
		instruction = "Rephrase the following text using different words and sentence structures while keeping the exact same meaning"
	default:
		return "", fmt.Errorf("invalid operation type: %s", req.Operation)
	}

	return fmt.Sprintf("%s:\n\n%s", instruction, req.Text), nil
}

func buildAnalysisPrompt(req *models.AnalyzeContentRequest) string {
	titled := ""
	if req.Title != "" {
		titled = fmt.Sprintf(" titled %q", req.Title)
	}

	return fmt.Sprintf(`Analyze the following content%s:

%s

Provide a comprehensive analysis including:
1. SEO Score (0-100) with explanation
2. Readability Score (0-100, Flesch-Kincaid scale) with grade level
3. Tone Analysis (formal, casual, professional, friendly, etc.)
4. Key strengths (3-5 points)
5. Areas for improvement (3-5 points)
6. Specific optimization suggestions (5-7 actionable items)

Format your response as JSON:
{
  "seoScore": 85,
  "seoExplanation": "...",
  "readabilityScore": 72,
  "gradeLevel": "High School",
  "tone": "Professional",
  "strengths": ["..."],
  "improvements": ["..."],
  "suggestions": ["..."]
}`,
		titled, req.Text)
}
