// Package ingestion normalizes scraped text before it is classified and scored.
package ingestion

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	horizontalSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankRun        = regexp.MustCompile(`\n{3,}`)
	tagLike         = regexp.MustCompile(`</?[a-zA-Z][a-zA-Z0-9]*(\s[^<>]*)?/?>`)
	zeroWidth       = strings.NewReplacer("\u200b", "", "\u200c", "", "\u200d", "", "\ufeff", "")
)

// CleanText normalizes post or bio text while keeping its line structure:
// CRLF becomes LF, zero-width characters are dropped, runs of spaces collapse
// and at most one blank line survives between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = zeroWidth.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = blankRun.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" {
		return ""
	}
	return horizontalSpace.ReplaceAllString(line, " ")
}

// LooksLikeHTML reports whether text carries markup tags.
func LooksLikeHTML(text string) bool {
	return tagLike.MatchString(text)
}

// StripHTML converts an HTML fragment to plain text. Block boundaries and <br>
// become line breaks; entities are decoded.
func StripHTML(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", &ParseError{Message: "failed to parse HTML fragment", Cause: err}
	}

	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})

	return CleanText(doc.Text()), nil
}

// Normalize cleans scraped text, stripping markup first when present. Text
// whose markup cannot be parsed is cleaned as-is.
func Normalize(text string) string {
	if LooksLikeHTML(text) {
		if stripped, err := StripHTML(text); err == nil {
			return stripped
		}
	}
	return CleanText(text)
}

// ParseError wraps failures to parse scraped markup.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
