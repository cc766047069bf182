package prayer

import (
	"strings"
	"unicode/utf8"

	"github.com/m3rciful/prayerbot/core/telegram/state"
)

// MaxNicknameLength is the longest accepted nickname, in characters.
const MaxNicknameLength = 20

const removeKeyword = "remove"

type handlerFunc func(store *state.Store, upd Update) Outcome

var handlers = [commandCount]handlerFunc{
	CommandStart:   handleStart,
	CommandHelp:    handleHelp,
	CommandPray:    handlePray,
	CommandSetNick: handleSetNick,
	CommandMyNick:  handleMyNick,
}

func handleStart(store *state.Store, upd Update) Outcome {
	store.GetOrCreate(upd.UserID)
	return Outcome{Reply: welcomeText}
}

func handleHelp(_ *state.Store, _ Update) Outcome {
	return Outcome{Reply: helpText}
}

func handleSetNick(store *state.Store, upd Update) Outcome {
	rec := store.GetOrCreate(upd.UserID)

	nickname := upd.JoinedArgs()
	if nickname == "" {
		info := noNicknameInfo
		if current, ok := rec.Nickname.Get(); ok {
			info = nicknameInfo(current)
		}
		return Outcome{Reply: info + nickUsageHints}
	}

	switch {
	case strings.EqualFold(nickname, removeKeyword):
		store.SetNickname(upd.UserID, state.NoNickname())
		return Outcome{Reply: nickRemovedText}
	case utf8.RuneCountInString(nickname) > MaxNicknameLength:
		return Outcome{Reply: nickTooLongText}
	}
	store.SetNickname(upd.UserID, state.SomeNickname(nickname))
	return Outcome{Reply: nicknameSetText(nickname)}
}

func handleMyNick(store *state.Store, upd Update) Outcome {
	if nick, ok := store.Nickname(upd.UserID).Get(); ok {
		return Outcome{Reply: myNickText(nick)}
	}
	return Outcome{Reply: myNickMissingText}
}

func handlePray(store *state.Store, upd Update) Outcome {
	request := upd.JoinedArgs()
	if request == "" {
		return Outcome{Reply: prayUsageText}
	}
	nickname := store.Nickname(upd.UserID)
	nick, named := nickname.Get()
	return Outcome{
		Reply:     prayerSubmittedText(nick, named),
		GroupPost: groupPostText(nickname.Or(anonymousAuthor), request),
	}
}
