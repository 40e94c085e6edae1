package plugins

import (
	"strings"

	"github.com/marvinbot/marvin/internal/bot"
	"github.com/marvinbot/marvin/internal/irc"
)

// Admin provides private-message control commands to users on the
// configured admin list. Commands from anyone else are ignored.
type Admin struct{}

// Init registers the admin command listener on private messages.
func (Admin) Init(b *bot.Bot) error {
	return b.OnPrivateMessage(`^!`, func(e *irc.Event) {
		req := e.Request
		if !b.IsAdmin(req.Nick) {
			b.Logger().Info("ignoring admin command from %s: %s", req.Nick, req.Text)
			return
		}

		fields := strings.Fields(req.Text)
		if len(fields) == 0 {
			return
		}
		switch fields[0] {
		case "!say":
			// !say <target> <text>
			if len(fields) >= 3 {
				e.AddResponse(irc.Privmsg(fields[1], strings.Join(fields[2:], " ")))
			}
		case "!join":
			if len(fields) >= 2 {
				e.AddResponse(irc.Join(fields[1]))
			}
		case "!quit":
			e.AddResponse(irc.Quit("requested by " + req.Nick))
		case "!help":
			e.AddResponse(irc.Privmsg(req.Nick, "commands: !say <target> <text>, !join <channel>, !quit"))
		}
	})
}
