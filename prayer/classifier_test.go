package prayer

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"Hello there", IntentGreeting},
		{"HEY", IntentGreeting},
		{"thanks a lot", IntentGratitude},
		{"I appreciate it", IntentGratitude},
		{"how do I change my nickname", IntentNickname},
		{"can you pray for me", IntentPrayer},
		{"what is this bot", IntentGreeting}, // "this" contains "hi"
		{"ok", IntentFallback},
		{"", IntentFallback},
		{"hello, thanks", IntentGreeting},
	}
	for _, tt := range tests {
		if got := Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestIntentReplies(t *testing.T) {
	if got := IntentGratitude.Reply(); got != "You're welcome! May God bless you abundantly ❤️" {
		t.Fatalf("gratitude reply = %q", got)
	}
	if got := IntentFallback.Reply(); got != "I'm a prayer request bot. Send /help for guidance." {
		t.Fatalf("fallback reply = %q", got)
	}
}

func TestMention(t *testing.T) {
	m := newMention("@PrayBot")
	tests := []struct {
		text    string
		in      bool
		trimmed string
	}{
		{"@PrayBot hello", true, "hello"},
		{"hi @praybot", true, "hi"},
		{"@PrayBotFan hello", false, "@PrayBotFan hello"},
		{"hello", false, "hello"},
	}
	for _, tt := range tests {
		if got := m.In(tt.text); got != tt.in {
			t.Errorf("In(%q) = %v, want %v", tt.text, got, tt.in)
		}
		if got := m.Strip(tt.text); got != tt.trimmed {
			t.Errorf("Strip(%q) = %q, want %q", tt.text, got, tt.trimmed)
		}
	}

	if newMention("").In("@anything") {
		t.Fatal("empty token must never match")
	}
	if !newMention("PrayBot").In("@PrayBot hi") {
		t.Fatal("token without @ should be normalised")
	}
}
