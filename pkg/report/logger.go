package report

// Logger is a sink for report events. Implementations must be safe for
// concurrent use.
type Logger interface {
	Log(event Event)
}

// Discard is a Logger that drops every event.
var Discard Logger = discard{}

type discard struct{}

func (discard) Log(Event) {}

// MultiLogger fans each event out to several sinks, usually a SlogAdapter
// for the console and a FileLogger for the .cvlog file.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger returns a MultiLogger over the given sinks. Nil sinks are
// dropped, so optional outputs can be passed unconditionally.
func NewMultiLogger(sinks ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, s := range sinks {
		if s != nil {
			m.sinks = append(m.sinks, s)
		}
	}
	return m
}

// Len returns the number of sinks.
func (m *MultiLogger) Len() int { return len(m.sinks) }

// Log forwards the event to every sink in order.
func (m *MultiLogger) Log(event Event) {
	for _, s := range m.sinks {
		s.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
