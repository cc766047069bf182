package prayer

import (
	"github.com/m3rciful/prayerbot/core/telegram/format"
)

const (
	welcomeText = "✨ *Welcome to Prayer Request Bot* ✨\n\n" +
		"Example:  \n" +
		"`/pray Please pray for my family's health`\n\n" +
		"🪪 *Optional nickname:*  \n" +
		"`/setnick Ano7`\n\n" +
		"❓ *More help:*  \n" +
		"/help - Show all commands"

	helpText = "📚 *Bot Command Guide*\n\n" +
		"/start - Welcome message & examples  \n" +
		"/help - This help message  \n" +
		"/pray [request] - Submit prayer  \n" +
		"/setnick [name] - Set nickname  \n" +
		"/setnick remove - Remove nickname  \n" +
		"/mynick - Show current nickname"

	nickUsageHints = "\n\n✍️ Set with: `/setnick your_nickname`  \n" +
		"🧹 Remove with: `/setnick remove`"

	noNicknameInfo  = "🪪 *No nickname set yet.*"
	nickRemovedText = "✅ *Nickname removed*"
	nickTooLongText = "❌ Nickname too long. Max 20 characters."

	myNickMissingText = "🪪 *Your Nickname*\n\n" +
		"No nickname set (optional)  \n" +
		"Add one with `/setnick name`  \n" +
		"Example: `/setnick FaithfulOne`"

	prayUsageText = "❓ *How to submit prayers*\n\n" +
		"Format:  \n" +
		"`/pray your_request`  \n\n" +
		"Examples:  \n" +
		"`/pray Please pray for my family`"

	groupPostFailedText = "⚠️ Couldn't post to prayer group. Please try again later."
	errorNoticeText     = "⚠️ An error occurred. Please try again later.\nIf the problem persists, contact support."

	anonymousAuthor = "Anonymous"
)

func nicknameInfo(nick string) string {
	return "🪪 *Nickname Info*\n\nCurrent: " + format.Code(nick)
}

func nicknameSetText(nick string) string {
	return "✅ *Nickname set to:* " + format.Code(nick)
}

func myNickText(nick string) string {
	return "🪪 *Your Nickname*\n\n" +
		"Current: " + format.Code(nick) + "\n\n" +
		"Change with `/setnick new_name`"
}

func groupPostText(author, body string) string {
	return format.Bold(author) + "\n\n" + format.Escape(body) + "\n\n💖 Let us pray together"
}

func prayerSubmittedText(nick string, named bool) string {
	postedAs := "Posted anonymously"
	if named {
		postedAs = "Posted as: " + format.Escape(nick)
	}
	return "📿 *Prayer Submitted*\n\n" +
		"Your request has been shared with our prayer community.  \n" +
		postedAs
}
