// Package prayer holds the prayer request bot: the command dispatcher, the
// responder that picks between an inline reply and the shared prayer group,
// the passive message classifier and cleanup of triggering messages.
//
// It never calls the Telegram client itself. Incoming messages arrive as
// Update values and outbound calls go through a Messenger.
package prayer
