package format

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"*bold* _it_ [x] `c`", `\*bold\* \_it\_ \[x] ` + "\\`c\\`"},
		{"a.b! (x)", "a.b! (x)"},
		{"my_friend's", `my\_friend's`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	if got := Code("Sam"); got != "`Sam`" {
		t.Fatalf("Code = %q", got)
	}
	if got := Code("a`b"); got != "`aˋb`" {
		t.Fatalf("Code must neutralise backticks, got %q", got)
	}
}

func TestBold(t *testing.T) {
	if got := Bold("Anonymous"); got != "*Anonymous*" {
		t.Fatalf("Bold = %q", got)
	}
	if got := Bold("a*b"); got != "*a∗b*" {
		t.Fatalf("Bold must neutralise asterisks, got %q", got)
	}
}
