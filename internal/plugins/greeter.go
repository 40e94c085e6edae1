package plugins

import (
	"fmt"
	"regexp"

	"github.com/marvinbot/marvin/internal/bot"
	"github.com/marvinbot/marvin/internal/irc"
)

// Greeter answers greetings addressed to the bot, in channels and in
// private messages alike.
type Greeter struct{}

// Init registers the greeting listener.
func (Greeter) Init(b *bot.Bot) error {
	pattern := fmt.Sprintf(`(?i)\b(hello|hi|hey),?\s+%s\b`, regexp.QuoteMeta(b.Config().Nick))
	return b.OnMessages(pattern, func(e *irc.Event) {
		req := e.Request
		e.AddResponse(irc.Privmsg(req.ReplyTarget(), "hello, "+req.Nick))
	})
}
