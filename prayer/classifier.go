package prayer

import "strings"

// Intent is the kind of a free-text message.
type Intent int

const (
	IntentFallback Intent = iota
	IntentGreeting
	IntentGratitude
	IntentNickname
	IntentPrayer
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// Rules are tried in order; the first rule with a keyword contained in the text wins.
var intentRules = []intentRule{
	{IntentGreeting, []string{"hello", "hi", "hey"}},
	{IntentGratitude, []string{"thank", "thanks", "appreciate"}},
	{IntentNickname, []string{"nickname"}},
	{IntentPrayer, []string{"pray"}},
}

// Classify picks the intent of text by case-insensitive keyword containment.
func Classify(text string) Intent {
	text = strings.ToLower(text)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.intent
			}
		}
	}
	return IntentFallback
}

func (i Intent) String() string {
	switch i {
	case IntentGreeting:
		return "greeting"
	case IntentGratitude:
		return "gratitude"
	case IntentNickname:
		return "nickname"
	case IntentPrayer:
		return "prayer"
	default:
		return "fallback"
	}
}

// Reply is the plain-text answer for the intent.
func (i Intent) Reply() string {
	switch i {
	case IntentGreeting:
		return "Hello! Send /help to see how I can assist you 🙏"
	case IntentGratitude:
		return "You're welcome! May God bless you abundantly ❤️"
	case IntentNickname:
		return "Set a nickname with /setnick (optional)"
	case IntentPrayer:
		return "Submit prayer requests with /pray [your request]"
	default:
		return "I'm a prayer request bot. Send /help for guidance."
	}
}
