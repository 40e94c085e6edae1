package irc

import (
	"reflect"
	"regexp"
	"testing"
)

func TestEventResponseOrder(t *testing.T) {
	e := NewEvent(ParseRequest("PING :x"))
	e.AddResponse("first")
	e.AddResponse("second")
	e.AddResponse("third")

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(e.Responses(), want) {
		t.Errorf("expected %v, got %v", want, e.Responses())
	}
}

func TestDispatchRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string
	d.AddListener("server.ping", ListenerFunc(func(e *Event) {
		calls = append(calls, "L1")
	}))
	d.AddListener("server.ping", ListenerFunc(func(e *Event) {
		calls = append(calls, "L2")
	}))

	d.Dispatch("server.ping", NewEvent(ParseRequest("PING :x")))

	want := []string{"L1", "L2"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("expected calls %v, got %v", want, calls)
	}
}

func TestDispatchNoShortCircuit(t *testing.T) {
	d := NewDispatcher()
	e := NewEvent(ParseRequest(":a!u@h PRIVMSG #chan :hello there"))

	// Both match; both must run even though the first already did.
	d.AddListener("message.channel", NewPatternListener(regexp.MustCompile("hello"), func(e *Event) {
		e.AddResponse("from L1")
	}))
	d.AddListener("message.channel", NewPatternListener(regexp.MustCompile("there"), func(e *Event) {
		e.AddResponse("from L2")
	}))

	d.Dispatch("message.channel", e)

	want := []string{"from L1", "from L2"}
	if !reflect.DeepEqual(e.Responses(), want) {
		t.Errorf("expected %v, got %v", want, e.Responses())
	}
}

func TestPatternListenerMatching(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		fires   bool
	}{
		{"match in middle", "bot", "hello bot friend", true},
		{"anchorless search", "^hello", "hello bot", true},
		{"no match", "goodbye", "hello bot", false},
		{"empty text no match", "x", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fired := false
			l := NewPatternListener(regexp.MustCompile(tt.pattern), func(e *Event) {
				fired = true
			})
			l.TestAndExecute(NewEvent(ParseRequest(":a!u@h PRIVMSG #c :" + tt.text)))
			if fired != tt.fires {
				t.Errorf("pattern %q on %q: expected fired=%v, got %v", tt.pattern, tt.text, tt.fires, fired)
			}
		})
	}
}

func TestUnconditionalListenerAlwaysFires(t *testing.T) {
	fired := false
	l := ListenerFunc(func(e *Event) { fired = true })
	l.TestAndExecute(NewEvent(ParseRequest(":a!u@h JOIN #chan")))
	if !fired {
		t.Error("unconditional listener did not fire")
	}
}

func TestDispatchUnknownEventIsNoop(t *testing.T) {
	d := NewDispatcher()
	// Must not panic or mutate the event.
	e := NewEvent(ParseRequest("WALLOPS :hi"))
	d.Dispatch("server.wallops", e)
	if len(e.Responses()) != 0 {
		t.Errorf("expected no responses, got %v", e.Responses())
	}
}

func TestServerEvent(t *testing.T) {
	if got := ServerEvent("PING"); got != "server.ping" {
		t.Errorf("expected server.ping, got %q", got)
	}
	if got := ServerEvent("005"); got != "server.005" {
		t.Errorf("expected server.005, got %q", got)
	}
}
