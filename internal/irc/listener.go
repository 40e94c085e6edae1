package irc

import "regexp"

// Listener is a registered callback bound to one event name. Dispatch
// offers every event to every listener registered for its name;
// TestAndExecute decides whether the callback runs.
type Listener interface {
	TestAndExecute(e *Event)
}

// ListenerFunc is an unconditional listener: its callback runs for
// every event it is offered.
type ListenerFunc func(e *Event)

// TestAndExecute calls f(e).
func (f ListenerFunc) TestAndExecute(e *Event) {
	f(e)
}

// patternListener runs its callback only when its pattern matches
// somewhere within the request's message text. The search is
// unanchored; a match anywhere counts.
type patternListener struct {
	pattern  *regexp.Regexp
	callback func(e *Event)
}

// NewPatternListener creates a listener gated on the given pattern.
func NewPatternListener(pattern *regexp.Regexp, callback func(e *Event)) Listener {
	return &patternListener{pattern: pattern, callback: callback}
}

func (l *patternListener) TestAndExecute(e *Event) {
	if l.pattern.MatchString(e.Request.Text) {
		l.callback(e)
	}
}
