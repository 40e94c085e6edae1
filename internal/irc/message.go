package irc

import (
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

// Request is the structured decoding of one inbound protocol line.
// It is a value type and is never mutated after parsing.
type Request struct {
	// Raw is the line as it arrived, without the trailing CRLF.
	Raw string
	// Prefix is the source of the line without the leading ':',
	// empty for server-originated lines that carry no prefix.
	Prefix string
	// Nick is the nick portion of the prefix (before '!'), or the
	// whole prefix when no '!' is present.
	Nick string
	// Command is the upper-cased command token.
	Command string
	// Params holds the command parameters in order, trailing included.
	Params []string
	// Target is the first parameter, where one exists.
	Target string
	// Text is the trailing parameter (the message text), without its
	// leading ':'. Empty when the line has no trailing parameter.
	Text string
}

// ParseRequest decodes one raw protocol line. Malformed input degrades
// to best-effort fields; parsing never fails.
func ParseRequest(raw string) Request {
	req := Request{Raw: strings.TrimRight(raw, "\r\n")}

	msg, err := ircmsg.ParseLine(req.Raw)
	if err == nil {
		req.Prefix = msg.Source
		req.Nick = nickOf(msg.Source)
		req.Command = strings.ToUpper(msg.Command)
		req.Params = msg.Params
	} else {
		req.parseFields()
	}

	if len(req.Params) > 0 {
		req.Target = req.Params[0]
	}
	req.Text = trailing(req.Raw)
	return req
}

// parseFields is the fallback tokenizer for lines ircmsg rejects,
// e.g. a bare prefix with no command.
func (r *Request) parseFields() {
	fields := strings.Fields(r.Raw)
	if len(fields) == 0 {
		return
	}
	if strings.HasPrefix(fields[0], ":") {
		r.Prefix = strings.TrimPrefix(fields[0], ":")
		r.Nick = nickOf(r.Prefix)
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return
	}
	r.Command = strings.ToUpper(fields[0])
	for i, f := range fields[1:] {
		if strings.HasPrefix(f, ":") {
			// Trailing consumes the rest of the line; recovered
			// verbatim by trailing() below, so only mark the param.
			r.Params = append(r.Params, strings.TrimPrefix(strings.Join(fields[i+1:], " "), ":"))
			break
		}
		r.Params = append(r.Params, f)
	}
}

// trailing extracts the message text: everything after the first " :"
// past the optional prefix token, taken verbatim.
func trailing(line string) string {
	rest := line
	if strings.HasPrefix(rest, ":") {
		idx := strings.IndexByte(rest, ' ')
		if idx < 0 {
			return ""
		}
		rest = rest[idx+1:]
	}
	if idx := strings.Index(rest, " :"); idx >= 0 {
		return rest[idx+2:]
	}
	return ""
}

// IsPrivate reports whether a PRIVMSG is directed at the bot itself
// rather than at a channel.
func (r Request) IsPrivate(botNick string) bool {
	if r.Command != "PRIVMSG" {
		return false
	}
	if isChannel(r.Target) {
		return false
	}
	return strings.EqualFold(r.Target, botNick)
}

// ReplyTarget returns where a response to this request should go: the
// channel for channel-directed messages, the sender otherwise.
func (r Request) ReplyTarget() string {
	if isChannel(r.Target) {
		return r.Target
	}
	return r.Nick
}

// nickOf extracts the sending user from a prefix: the substring before
// '!', or the whole prefix when no '!' is present.
func nickOf(prefix string) string {
	if idx := strings.IndexByte(prefix, '!'); idx >= 0 {
		return prefix[:idx]
	}
	return prefix
}

func isChannel(name string) bool {
	return strings.HasPrefix(name, "#") || strings.HasPrefix(name, "&")
}
