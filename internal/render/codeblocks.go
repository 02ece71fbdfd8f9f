package render

import (
	"regexp"
	"strings"
)

// Language identifiers returned by DetectLanguage.
const (
	LanguageCode   = "typescript"
	LanguageMarkup = "html"
	LanguagePlain  = "text"
)

// fencedLanguages is the set of language hints recognized on a code fence
// line. An unrecognized hint is treated as block content, not a hint.
var fencedLanguages = map[string]bool{
	"ts": true, "typescript": true, "tsx": true,
	"js": true, "javascript": true, "jsx": true,
	"go": true, "python": true, "py": true, "rust": true, "java": true,
	"c": true, "cpp": true, "sh": true, "bash": true, "shell": true,
	"json": true, "yaml": true, "html": true, "css": true, "sql": true,
	"text": true, "plaintext": true,
}

// FencedCodeBlocks scans text for triple-backtick fenced regions and
// returns the trimmed inner text of each, in order of appearance. A fence
// left unclosed runs to the end of the text. Each call is a fresh scan.
func FencedCodeBlocks(text string) []string {
	var blocks []string
	rest := text
	for {
		start := strings.Index(rest, "```")
		if start < 0 {
			return blocks
		}
		rest = rest[start+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			hint := strings.TrimSpace(rest[:nl])
			if hint == "" || fencedLanguages[strings.ToLower(hint)] {
				rest = rest[nl+1:]
			}
		}
		end := strings.Index(rest, "```")
		if end < 0 {
			if block := strings.TrimSpace(rest); block != "" {
				blocks = append(blocks, block)
			}
			return blocks
		}
		if block := strings.TrimSpace(rest[:end]); block != "" {
			blocks = append(blocks, block)
		}
		rest = rest[end+3:]
	}
}

// codeHintPatterns are coarse signals that a piece of text is code rather
// than prose. False positives are acceptable.
var codeHintPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bfunction\b`),
	regexp.MustCompile(`\b(?:const|let|var)\s+\w`),
	regexp.MustCompile(`\b(?:async|await)\b`),
	regexp.MustCompile(`\b(?:import|export)\b`),
	regexp.MustCompile(`=>`),
	regexp.MustCompile(`[{}]`),
	regexp.MustCompile(`\w+\([^)]*\)`),
}

// LooksLikeCode reports whether text appears to contain code: a fence
// marker or any of the coarse declaration/expression patterns.
func LooksLikeCode(text string) bool {
	if strings.Contains(text, "```") {
		return true
	}
	for _, pattern := range codeHintPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

var (
	languageKeywords = regexp.MustCompile(`\b(?:function|const|let|var|class|interface|return|if|for|while|new|type|enum)\b|=>|[{};]`)
	tagMarker        = regexp.MustCompile(`@[A-Za-z]`)
)

// DetectLanguage classifies example text by a fixed sequence of checks:
// code keywords or structural tokens first, an HTML-comment opener second,
// an @-prefixed tag marker third, plain text last. The first matching rule
// wins.
func DetectLanguage(text string) string {
	switch {
	case languageKeywords.MatchString(text):
		return LanguageCode
	case strings.Contains(text, "<!--"):
		return LanguageMarkup
	case tagMarker.MatchString(text):
		return LanguageCode
	default:
		return LanguagePlain
	}
}
