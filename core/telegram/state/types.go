package state

import "strings"

// Nickname is an optional display name. The zero value is "no nickname".
type Nickname struct {
	value string
	set   bool
}

// NoNickname returns the absent nickname.
func NoNickname() Nickname {
	return Nickname{}
}

// SomeNickname returns a present nickname holding the trimmed value.
// A value that trims to empty yields the absent nickname.
func SomeNickname(value string) Nickname {
	value = strings.TrimSpace(value)
	if value == "" {
		return Nickname{}
	}
	return Nickname{value: value, set: true}
}

// Get returns the nickname and whether it is present.
func (n Nickname) Get() (string, bool) {
	return n.value, n.set
}

// IsSet reports whether a nickname is present.
func (n Nickname) IsSet() bool {
	return n.set
}

// Or returns the nickname or fallback when absent.
func (n Nickname) Or(fallback string) string {
	if n.set {
		return n.value
	}
	return fallback
}

// Record is the state kept for a single user.
type Record struct {
	UserID   int64
	Nickname Nickname
}
