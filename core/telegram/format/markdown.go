package format

import (
	"regexp"
	"strings"
)

// Messages are sent with tele.ModeMarkdown, Telegram's legacy Markdown.
var mdSpecials = regexp.MustCompile("[_*`\\[]")

// Escape escapes text for legacy Markdown outside of entities.
func Escape(text string) string {
	return mdSpecials.ReplaceAllString(text, `\$0`)
}

// Code renders text as a legacy Markdown code span.
// Legacy Markdown has no escape inside code spans, so backticks are swapped for a look-alike.
func Code(text string) string {
	return "`" + strings.ReplaceAll(text, "`", "ˋ") + "`"
}

// Bold renders text as a legacy Markdown bold entity.
// Entities do not nest in legacy Markdown, so asterisks inside are swapped for a look-alike.
func Bold(text string) string {
	return "*" + strings.ReplaceAll(text, "*", "∗") + "*"
}
