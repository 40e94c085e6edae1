package irc

import (
	"fmt"
	"strings"
)

// Response builders. Each returns exactly one outbound protocol line
// without the trailing CRLF; the connection appends that at write time.

// Nick builds a NICK command.
func Nick(nick string) string {
	return "NICK " + nick
}

// User builds a USER command.
func User(nick, host, server, realname string) string {
	return fmt.Sprintf("USER %s %s %s :%s", nick, host, server, realname)
}

// Join builds a JOIN command for a single channel.
func Join(channel string) string {
	return "JOIN " + channel
}

// Pong builds a PONG reply. The payload is echoed unchanged, including
// any leading ':'.
func Pong(payload string) string {
	return "PONG " + payload
}

// Quit builds a QUIT command with a parting message.
func Quit(message string) string {
	return "QUIT :" + message
}

// Send builds a targeted message line for PRIVMSG/NOTICE-style commands.
func Send(command, target, text string) string {
	return fmt.Sprintf("%s %s :%s", strings.ToUpper(command), target, text)
}

// Privmsg builds a PRIVMSG to the given target.
func Privmsg(target, text string) string {
	return Send("PRIVMSG", target, text)
}

// Notice builds a NOTICE to the given target.
func Notice(target, text string) string {
	return Send("NOTICE", target, text)
}
