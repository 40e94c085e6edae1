package bot

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/marvinbot/marvin/internal/config"
	"github.com/marvinbot/marvin/internal/irc"
	"github.com/marvinbot/marvin/internal/logging"
)

// Bot composes the pieces of one running bot: its configuration, the
// listener registry, the server connection and the log sink. All
// registration happens before Run; the registry is read-only once the
// listen loop starts.
type Bot struct {
	cfg        *config.Config
	dispatcher *irc.Dispatcher
	conn       *irc.Conn
	log        *logging.Logger
	admins     map[string]bool
}

// New creates a bot with the built-in PING and ERROR listeners already
// registered, ahead of any plugin.
func New(cfg *config.Config, logger *logging.Logger) *Bot {
	b := &Bot{
		cfg:        cfg,
		dispatcher: irc.NewDispatcher(),
		log:        logger,
		admins:     make(map[string]bool, len(cfg.Admins)),
	}
	for _, admin := range cfg.Admins {
		b.admins[strings.ToLower(admin)] = true
	}
	b.conn = irc.NewConn(cfg.Nick, b.dispatcher, logger)
	b.registerBuiltins()
	return b
}

// registerBuiltins installs the two listeners every bot carries:
// answering PING keeps the server from dropping the link, and ERROR
// lines always reach the log.
func (b *Bot) registerBuiltins() {
	b.dispatcher.AddListener(irc.ServerEvent("PING"), irc.ListenerFunc(func(e *irc.Event) {
		e.AddResponse(irc.Pong(pingPayload(e.Request)))
	}))
	b.dispatcher.AddListener(irc.ServerEvent("ERROR"), irc.ListenerFunc(func(e *irc.Event) {
		b.log.Error("server error: %s", e.Request.Text)
	}))
}

// pingPayload reconstructs the PING's message field as it appeared on
// the wire, leading ':' included, so the PONG echoes it unchanged.
func pingPayload(req irc.Request) string {
	if req.Text != "" {
		return ":" + req.Text
	}
	return req.Target
}

// OnChannel registers a pattern-bound listener for channel messages.
func (b *Bot) OnChannel(pattern string, callback func(e *irc.Event)) error {
	return b.onPattern(irc.EventChannelMessage, pattern, callback)
}

// OnPrivateMessage registers a pattern-bound listener for messages
// addressed to the bot itself.
func (b *Bot) OnPrivateMessage(pattern string, callback func(e *irc.Event)) error {
	return b.onPattern(irc.EventPrivateMessage, pattern, callback)
}

// OnMessages registers the same pattern and callback for both channel
// and private messages, as two independent listeners.
func (b *Bot) OnMessages(pattern string, callback func(e *irc.Event)) error {
	if err := b.OnChannel(pattern, callback); err != nil {
		return err
	}
	return b.OnPrivateMessage(pattern, callback)
}

func (b *Bot) onPattern(event, pattern string, callback func(e *irc.Event)) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid listener pattern %q: %w", pattern, err)
	}
	b.dispatcher.AddListener(event, irc.NewPatternListener(re, callback))
	return nil
}

// OnJoin registers an unconditional listener for JOIN lines.
func (b *Bot) OnJoin(callback func(e *irc.Event)) {
	b.OnServer("JOIN", callback)
}

// OnPart registers an unconditional listener for PART lines.
func (b *Bot) OnPart(callback func(e *irc.Event)) {
	b.OnServer("PART", callback)
}

// OnError registers an unconditional listener for ERROR lines. The
// built-in logging of server errors runs regardless.
func (b *Bot) OnError(callback func(e *irc.Event)) {
	b.OnServer("ERROR", callback)
}

// OnNotice registers an unconditional listener for NOTICE lines.
func (b *Bot) OnNotice(callback func(e *irc.Event)) {
	b.OnServer("NOTICE", callback)
}

// OnServer registers an unconditional listener for any server command
// the core does not itself interpret, e.g. "MODE" or "332".
func (b *Bot) OnServer(command string, callback func(e *irc.Event)) {
	b.dispatcher.AddListener(irc.ServerEvent(command), irc.ListenerFunc(callback))
}

// IsAdmin reports whether user is on the configured admin list.
// Comparison is case-insensitive, matching IRC nick semantics.
func (b *Bot) IsAdmin(user string) bool {
	return b.admins[strings.ToLower(user)]
}

// Config returns the bot's configuration for read-only use by plugins.
func (b *Bot) Config() *config.Config {
	return b.cfg
}

// Logger returns the log sink shared with plugins.
func (b *Bot) Logger() logging.Sink {
	return b.log
}

// Dispatcher exposes the listener registry. Registration is only valid
// before Run.
func (b *Bot) Dispatcher() *irc.Dispatcher {
	return b.dispatcher
}

// Run connects, logs in, joins the configured channels and blocks in
// the listen loop until the stream ends. A failed connect is returned
// without any protocol bytes having been sent.
func (b *Bot) Run() error {
	if !b.conn.Connect(b.cfg.Server, b.cfg.Port) {
		return fmt.Errorf("could not connect to %s:%d", b.cfg.Server, b.cfg.Port)
	}
	b.log.Info("connected to %s:%d as %s", b.cfg.Server, b.cfg.Port, b.cfg.Nick)

	b.conn.Login(b.cfg.Nick, b.cfg.Server, b.cfg.ServerName, b.cfg.RealName)
	b.conn.Join(b.cfg.Channels...)
	return b.conn.Listen()
}

// Quit announces departure and closes the connection, ending Run.
func (b *Bot) Quit(message string) {
	b.conn.Quit(message)
}
