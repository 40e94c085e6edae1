package irc

import "strings"

// Event names for PRIVMSG routing. Every other inbound command is
// dispatched under the name ServerEvent(command) produces.
const (
	EventPrivateMessage = "message.private"
	EventChannelMessage = "message.channel"
)

// ServerEvent returns the event name a non-PRIVMSG command is
// dispatched under, e.g. "server.ping" for PING.
func ServerEvent(command string) string {
	return "server." + strings.ToLower(command)
}

// Dispatcher maps event names to ordered listener lists. The registry
// is built during setup and is read-only once the listen loop starts;
// dispatch therefore needs no locking.
type Dispatcher struct {
	listeners map[string][]Listener
}

// NewDispatcher creates an empty registry.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{listeners: make(map[string][]Listener)}
}

// AddListener appends a listener to the named event. Setup phase only.
func (d *Dispatcher) AddListener(event string, l Listener) {
	d.listeners[event] = append(d.listeners[event], l)
}

// Dispatch offers the event to every listener registered for the name,
// in registration order. All of them are offered regardless of whether
// an earlier one matched; there is no short-circuit.
func (d *Dispatcher) Dispatch(event string, e *Event) {
	for _, l := range d.listeners[event] {
		l.TestAndExecute(e)
	}
}
