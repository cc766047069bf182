package prayer

import "testing"

func TestEveryCommandHasHandlerAndDescription(t *testing.T) {
	cmds := Commands()
	if len(cmds) != 5 {
		t.Fatalf("Commands() = %d entries, want 5", len(cmds))
	}
	for _, c := range cmds {
		if handlers[c] == nil {
			t.Errorf("%s has no handler", c)
		}
		if c.Description() == "" {
			t.Errorf("%s has no description", c)
		}
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in   string
		want Command
		ok   bool
	}{
		{"start", CommandStart, true},
		{"/help", CommandHelp, true},
		{"/PRAY", CommandPray, true},
		{" setnick ", CommandSetNick, true},
		{"mynick", CommandMyNick, true},
		{"/unknown", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseCommand(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("parseCommand(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for _, c := range Commands() {
		got, ok := parseCommand(c.Endpoint())
		if !ok || got != c {
			t.Fatalf("parseCommand(%q) = %v, %v", c.Endpoint(), got, ok)
		}
	}
	if Command(99).String() != "unknown" {
		t.Fatal("out of range command must render as unknown")
	}
}
