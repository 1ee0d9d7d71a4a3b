package utils

import (
	"regexp"
	"strings"
)

// Content bodies arrive as user-authored markdown/HTML; these helpers
// strip the pieces that must never reach storage or other clients.

var (
	scriptTagRe    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	eventAttrRe    = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)
	jsProtocolRe   = regexp.MustCompile(`(?i)javascript:`)
	controlCharsRe = regexp.MustCompile("[\x00-\x1F\x7F]")
	mdJSImageRe    = regexp.MustCompile(`(?i)!\[([^\]]*)\]\(javascript:[^\)]+\)`)
	mdJSLinkRe     = regexp.MustCompile(`(?i)\[([^\]]*)\]\(javascript:[^\)]+\)`)
	fileNameBadRe  = regexp.MustCompile(`[^a-zA-Z0-9._-]`)
	multiDotRe     = regexp.MustCompile(`\.{2,}`)
	multiUnderRe   = regexp.MustCompile(`_{2,}`)
)

// RemoveScripts strips script tags, inline event handlers and
// javascript: protocols from content
func RemoveScripts(content string) string {
	content = scriptTagRe.ReplaceAllString(content, "")
	content = eventAttrRe.ReplaceAllString(content, "")
	return jsProtocolRe.ReplaceAllString(content, "")
}

// SanitizeUserInput trims, drops control characters and removes
// active script content from free-form text
func SanitizeUserInput(input string) string {
	sanitized := strings.TrimSpace(input)
	sanitized = controlCharsRe.ReplaceAllString(sanitized, "")
	return RemoveScripts(sanitized)
}

// SanitizeMarkdown additionally neutralizes javascript: links and
// images inside markdown syntax
func SanitizeMarkdown(markdown string) string {
	sanitized := SanitizeUserInput(markdown)
	sanitized = mdJSImageRe.ReplaceAllString(sanitized, "")
	return mdJSLinkRe.ReplaceAllString(sanitized, "[$1]()")
}

// SanitizeFileName reduces an uploaded file name to a safe charset
func SanitizeFileName(fileName string) string {
	sanitized := fileNameBadRe.ReplaceAllString(fileName, "_")
	sanitized = multiDotRe.ReplaceAllString(sanitized, ".")
	sanitized = multiUnderRe.ReplaceAllString(sanitized, "_")
	if len(sanitized) > 255 {
		sanitized = sanitized[:255]
	}
	return sanitized
}

// SanitizeSearchQuery trims a search term and drops characters that
// have no place in an ILIKE pattern
func SanitizeSearchQuery(query string) string {
	sanitized := strings.TrimSpace(query)
	sanitized = strings.NewReplacer("<", "", ">", "", "'", "", `"`, "").Replace(sanitized)
	if len(sanitized) > 200 {
		sanitized = sanitized[:200]
	}
	return sanitized
}

// Truncate shortens text to maxLength, appending an ellipsis when cut
func Truncate(text string, maxLength int) string {
	const ellipsis = "..."
	if len(text) <= maxLength {
		return text
	}
	if maxLength <= len(ellipsis) {
		return text[:maxLength]
	}
	return text[:maxLength-len(ellipsis)] + ellipsis
}
