package prayer

import (
	"regexp"
	"strings"
)

// mention matches the bot's @username case-insensitively, only when it ends at a word boundary.
type mention struct {
	token string
	re    *regexp.Regexp
}

func newMention(token string) mention {
	token = strings.TrimSpace(token)
	if token == "" || token == "@" {
		return mention{}
	}
	if !strings.HasPrefix(token, "@") {
		token = "@" + token
	}
	return mention{
		token: token,
		re:    regexp.MustCompile(`(?i)` + regexp.QuoteMeta(token) + `\b`),
	}
}

// In reports whether text mentions the bot. An unset token never matches.
func (m mention) In(text string) bool {
	return m.re != nil && m.re.MatchString(text)
}

// Strip removes every mention of the bot and trims the result.
func (m mention) Strip(text string) string {
	if m.re == nil {
		return strings.TrimSpace(text)
	}
	return strings.TrimSpace(m.re.ReplaceAllString(text, ""))
}
