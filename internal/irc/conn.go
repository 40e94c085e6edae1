package irc

import (
	"bufio"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/marvinbot/marvin/internal/logging"
)

// maxLineLen bounds a single protocol line, per RFC 1459.
const maxLineLen = 512

// Conn owns the single socket to the IRC server and drives the
// connect, login, join and listen phases. One Conn serves one server;
// there is no reconnection and no multiplexing.
type Conn struct {
	sock       net.Conn
	reader     *bufio.Reader
	dispatcher *Dispatcher
	log        logging.Sink
	nick       string
}

// NewConn creates an unconnected connection manager. nick is the bot's
// own nick, used for PRIVMSG routing and echo suppression.
func NewConn(nick string, d *Dispatcher, sink logging.Sink) *Conn {
	return &Conn{dispatcher: d, log: sink, nick: nick}
}

// Connect opens the TCP stream to host:port. It returns false when the
// socket cannot be opened; the caller must not proceed to Login, Join
// or Listen in that case.
func (c *Conn) Connect(host string, port int) bool {
	sock, err := net.Dial("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		c.log.Error("connect to %s:%d failed: %v", host, port, err)
		return false
	}
	c.start(sock)
	return true
}

// start adopts an open stream. Split out from Connect so tests can
// drive the loop over a pipe.
func (c *Conn) start(sock net.Conn) {
	c.sock = sock
	c.reader = bufio.NewReaderSize(sock, maxLineLen)
}

// Login identifies the bot to the server: NICK first, then USER.
func (c *Conn) Login(nick, host, servername, realname string) {
	c.write(Nick(nick))
	c.write(User(nick, host, servername, realname))
}

// Join sends one JOIN per channel, in order.
func (c *Conn) Join(channels ...string) {
	for _, channel := range channels {
		c.write(Join(channel))
	}
}

// Quit announces departure and closes the socket.
func (c *Conn) Quit(message string) {
	c.write(Quit(message))
	c.Close()
}

// Close tears down the socket.
func (c *Conn) Close() error {
	if c.sock == nil {
		return nil
	}
	return c.sock.Close()
}

// Listen reads lines until end-of-stream. Each line is parsed,
// classified and dispatched; responses accumulated during dispatch are
// flushed, in order, before the next read. Lines the bot echoed to
// itself are skipped entirely. A transport failure ends the loop;
// there is no retry.
func (c *Conn) Listen() error {
	for {
		line, err := c.readLine()
		if err != nil {
			if err == io.EOF {
				c.log.Info("connection closed by server")
				return nil
			}
			return err
		}
		if line == "" {
			continue
		}
		c.log.Debug("<-- %s", line)

		req := ParseRequest(line)
		if req.Nick != "" && strings.EqualFold(req.Nick, c.nick) {
			continue
		}

		event := NewEvent(req)
		c.dispatcher.Dispatch(c.eventName(req), event)
		for _, resp := range event.Responses() {
			if err := c.write(resp); err != nil {
				return err
			}
		}
	}
}

// eventName classifies one request: PRIVMSG routes on its target,
// everything else dispatches under "server.<command>".
func (c *Conn) eventName(req Request) string {
	if req.Command == "PRIVMSG" {
		if req.IsPrivate(c.nick) {
			return EventPrivateMessage
		}
		return EventChannelMessage
	}
	return ServerEvent(req.Command)
}

func (c *Conn) readLine() (string, error) {
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && strings.TrimSpace(line) != "" {
			// Final unterminated line still gets processed.
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Conn) write(line string) error {
	if c.sock == nil {
		return net.ErrClosed
	}
	if _, err := io.WriteString(c.sock, line+"\r\n"); err != nil {
		c.log.Error("write failed: %v", err)
		return err
	}
	c.log.Debug("--> %s", line)
	return nil
}
