package irc

// Event is the per-message context passed through dispatch. It wraps
// one Request and accumulates the outbound responses produced by the
// listeners that handled it. An Event lives for exactly one loop
// iteration and is discarded once its responses have been sent.
type Event struct {
	Request   Request
	responses []string
}

// NewEvent creates the dispatch context for one parsed request.
func NewEvent(req Request) *Event {
	return &Event{Request: req}
}

// AddResponse appends one outbound line to the event. Callable any
// number of times; response order equals call order.
func (e *Event) AddResponse(line string) {
	e.responses = append(e.responses, line)
}

// Responses returns the accumulated outbound lines in the order they
// were added.
func (e *Event) Responses() []string {
	return e.responses
}
