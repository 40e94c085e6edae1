package bot

import (
	"net"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/marvinbot/marvin/internal/config"
	"github.com/marvinbot/marvin/internal/irc"
	"github.com/marvinbot/marvin/internal/logging"
)

func newTestBot(t *testing.T, cfg *config.Config) (*Bot, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "bot.log")
	logger, err := logging.New(false, logPath)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	t.Cleanup(func() { logger.Close() })
	return New(cfg, logger), logPath
}

func defaultConfig() *config.Config {
	return &config.Config{
		Server: "irc.example.com",
		Port:   6667,
		Nick:   "marvin",
		Admins: []string{"Alice"},
	}
}

func TestBuiltinPing(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())

	e := irc.NewEvent(irc.ParseRequest("PING :irc.example.com"))
	b.Dispatcher().Dispatch(irc.ServerEvent("PING"), e)

	want := []string{"PONG :irc.example.com"}
	if !reflect.DeepEqual(e.Responses(), want) {
		t.Errorf("expected %v, got %v", want, e.Responses())
	}
}

func TestBuiltinPingWithoutTrailing(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())

	e := irc.NewEvent(irc.ParseRequest("PING irc.example.com"))
	b.Dispatcher().Dispatch(irc.ServerEvent("PING"), e)

	want := []string{"PONG irc.example.com"}
	if !reflect.DeepEqual(e.Responses(), want) {
		t.Errorf("expected %v, got %v", want, e.Responses())
	}
}

func TestBuiltinErrorForwardsToLog(t *testing.T) {
	b, logPath := newTestBot(t, defaultConfig())

	e := irc.NewEvent(irc.ParseRequest("ERROR :Closing Link: marvin (Quit)"))
	b.Dispatcher().Dispatch(irc.ServerEvent("ERROR"), e)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "Closing Link: marvin (Quit)") {
		t.Errorf("server error text missing from log, got %q", string(data))
	}
	if len(e.Responses()) != 0 {
		t.Errorf("error handler should not respond, got %v", e.Responses())
	}
}

func TestOnMessagesFiresForBothEvents(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())

	fired := 0
	if err := b.OnMessages("hello", func(e *irc.Event) { fired++ }); err != nil {
		t.Fatalf("OnMessages failed: %v", err)
	}

	channel := irc.NewEvent(irc.ParseRequest(":bob!u@h PRIVMSG #chan :hello bot"))
	b.Dispatcher().Dispatch(irc.EventChannelMessage, channel)

	private := irc.NewEvent(irc.ParseRequest(":bob!u@h PRIVMSG marvin :hello bot"))
	b.Dispatcher().Dispatch(irc.EventPrivateMessage, private)

	if fired != 2 {
		t.Errorf("expected callback to fire twice, got %d", fired)
	}
}

func TestOnChannelPatternGate(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())

	fired := 0
	if err := b.OnChannel("^!stats", func(e *irc.Event) { fired++ }); err != nil {
		t.Fatalf("OnChannel failed: %v", err)
	}

	match := irc.NewEvent(irc.ParseRequest(":bob!u@h PRIVMSG #chan :!stats today"))
	b.Dispatcher().Dispatch(irc.EventChannelMessage, match)

	noMatch := irc.NewEvent(irc.ParseRequest(":bob!u@h PRIVMSG #chan :nothing here"))
	b.Dispatcher().Dispatch(irc.EventChannelMessage, noMatch)

	if fired != 1 {
		t.Errorf("expected exactly one firing, got %d", fired)
	}
}

func TestOnChannelRejectsBadPattern(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())
	if err := b.OnChannel("(unclosed", func(e *irc.Event) {}); err == nil {
		t.Error("expected an error for an invalid pattern")
	}
}

func TestOnServerEvents(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())

	var seen []string
	b.OnJoin(func(e *irc.Event) { seen = append(seen, "join") })
	b.OnPart(func(e *irc.Event) { seen = append(seen, "part") })
	b.OnNotice(func(e *irc.Event) { seen = append(seen, "notice") })

	b.Dispatcher().Dispatch("server.join", irc.NewEvent(irc.ParseRequest(":bob!u@h JOIN #chan")))
	b.Dispatcher().Dispatch("server.part", irc.NewEvent(irc.ParseRequest(":bob!u@h PART #chan")))
	b.Dispatcher().Dispatch("server.notice", irc.NewEvent(irc.ParseRequest(":srv NOTICE marvin :hi")))

	want := []string{"join", "part", "notice"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("expected %v, got %v", want, seen)
	}
}

func TestIsAdmin(t *testing.T) {
	b, _ := newTestBot(t, defaultConfig())

	if !b.IsAdmin("Alice") {
		t.Error("Alice should be an admin")
	}
	if !b.IsAdmin("alice") {
		t.Error("admin check should be case-insensitive")
	}
	if b.IsAdmin("bob") {
		t.Error("bob should not be an admin")
	}
}

func TestRunFailsWhenConnectFails(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server = "127.0.0.1"
	cfg.Port = reservedClosedPort(t)

	b, _ := newTestBot(t, cfg)
	if err := b.Run(); err == nil {
		t.Error("Run should fail when the connection cannot be opened")
	}
}

// reservedClosedPort returns a port nothing is listening on.
func reservedClosedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}
