package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// ErrMalformedEvent is returned for a report record that is not an Event:
// truncated data, duplicate keys, or fields this version does not know.
var ErrMalformedEvent = errors.New("malformed report event")

// eventDecMode only accepts what the FileLogger writes.
var eventDecMode cbor.DecMode

func init() {
	var err error
	eventDecMode, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("report: event decoder mode: %v", err))
	}
}

// DecodeEvent decodes a single CBOR-encoded event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	if err := eventDecMode.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	return event, nil
}

// Filter specifies criteria for filtering events.
// Empty or nil fields match all events.
type Filter struct {
	// RunID filters by exact run ID.
	RunID string

	// Category filters by event category.
	Category *Category

	// Kind filters findings by error kind. Events of other categories
	// never match a non-empty Kind.
	Kind string
}

// Matches returns true if the event matches all filter criteria.
func (f *Filter) Matches(event Event) bool {
	if f.RunID != "" && event.RunID != f.RunID {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.Kind != "" && (event.Finding == nil || event.Finding.Kind != f.Kind) {
		return false
	}
	return true
}

// Reader streams events from a report file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
	index   int
}

// NewReader creates a Reader over all events of the file at path.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader creates a Reader that returns only events matching the
// filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: eventDecMode.NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
// A record that cannot be decoded yields an error wrapping
// ErrMalformedEvent that names its position in the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if err == io.EOF {
				return Event{}, io.EOF
			}
			return Event{}, fmt.Errorf("%w: event %d: %v", ErrMalformedEvent, r.index, err)
		}
		r.index++
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// ReadAll returns the remaining matching events.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if err == io.EOF {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
