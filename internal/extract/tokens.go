package extract

import "strings"

const (
	summaryTokenLimit = 10
	tagTokenLimit     = 5
)

// searchTokens derives the keyword tokens for one record: name, full path,
// kind, the first ten words of the summary, then the first five words of
// each example and tutorial tag, in that order. Tokens keep their case;
// the lookup index lowercases at key time.
func searchTokens(rec *Record) []string {
	var tokens []string
	for _, t := range []string{rec.Name, rec.FullPath, rec.Kind} {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	tokens = appendWords(tokens, rec.Documentation.Summary, summaryTokenLimit)
	for _, ex := range rec.Tags.Examples {
		tokens = appendWords(tokens, ex.Text, tagTokenLimit)
	}
	for _, tut := range rec.Tags.Tutorials {
		tokens = appendWords(tokens, tut, tagTokenLimit)
	}
	return tokens
}

func appendWords(tokens []string, text string, limit int) []string {
	words := strings.Fields(text)
	if len(words) > limit {
		words = words[:limit]
	}
	return append(tokens, words...)
}
