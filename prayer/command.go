package prayer

import "strings"

// Command is one of the bot commands.
type Command int

const (
	CommandStart Command = iota
	CommandHelp
	CommandPray
	CommandSetNick
	CommandMyNick

	commandCount
)

var commandNames = [commandCount]string{
	CommandStart:   "start",
	CommandHelp:    "help",
	CommandPray:    "pray",
	CommandSetNick: "setnick",
	CommandMyNick:  "mynick",
}

var commandDescriptions = [commandCount]string{
	CommandStart:   "Welcome message & examples",
	CommandHelp:    "Show all commands",
	CommandPray:    "Submit a prayer request",
	CommandSetNick: "Set or remove your nickname",
	CommandMyNick:  "Show your current nickname",
}

// Commands lists every command in menu order.
func Commands() []Command {
	out := make([]Command, 0, commandCount)
	for c := Command(0); c < commandCount; c++ {
		out = append(out, c)
	}
	return out
}

// parseCommand resolves a command name, with or without the leading slash.
func parseCommand(name string) (Command, bool) {
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "/"))
	for c, n := range commandNames {
		if n == name {
			return Command(c), true
		}
	}
	return 0, false
}

func (c Command) valid() bool {
	return c >= 0 && c < commandCount
}

// String returns the command token without the slash.
func (c Command) String() string {
	if !c.valid() {
		return "unknown"
	}
	return commandNames[c]
}

// Endpoint returns the command as typed in chat, e.g. "/pray".
func (c Command) Endpoint() string {
	return "/" + c.String()
}

// Description is the text shown in the Telegram command menu.
func (c Command) Description() string {
	if !c.valid() {
		return ""
	}
	return commandDescriptions[c]
}
