package report

import (
	"strings"
	"time"
)

// Event is one record of a report log. Exactly one of the payload fields is
// set, matching Category. CBOR encoding uses integer keys.
type Event struct {
	// Timestamp when the event occurred.
	Timestamp time.Time `cbor:"1,keyasint"`

	// RunID identifies the validation run (UUID).
	RunID string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	RunStarted  *RunStartedEvent  `cbor:"10,keyasint,omitempty"`
	Finding     *FindingEvent     `cbor:"11,keyasint,omitempty"`
	RunFinished *RunFinishedEvent `cbor:"12,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRunStarted marks the start of a run.
	CategoryRunStarted Category = 0
	// CategoryFinding is one validation error.
	CategoryFinding Category = 1
	// CategoryRunFinished marks the end of a run.
	CategoryRunFinished Category = 2
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRunStarted:
		return "RUN_STARTED"
	case CategoryFinding:
		return "FINDING"
	case CategoryRunFinished:
		return "RUN_FINISHED"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses the String form of a category, case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for _, c := range []Category{CategoryRunStarted, CategoryFinding, CategoryRunFinished} {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return 0, false
}

// RunStartedEvent describes the file being validated.
type RunStartedEvent struct {
	// File is the path of the container file.
	File string `cbor:"1,keyasint"`

	// Digest is the hex BLAKE2b-256 digest of the file contents.
	Digest string `cbor:"2,keyasint,omitempty"`

	// Strict is true when float widths were checked exactly.
	Strict bool `cbor:"3,keyasint"`

	// SchemaVersion is the version of the definitions in use.
	SchemaVersion string `cbor:"4,keyasint,omitempty"`
}

// FindingEvent is one validation error.
type FindingEvent struct {
	GroupPath string `cbor:"1,keyasint"`
	Attribute string `cbor:"2,keyasint"`

	// Kind is the String form of the validation error kind.
	Kind    string `cbor:"3,keyasint"`
	Message string `cbor:"4,keyasint"`
}

// RunFinishedEvent summarizes a run.
type RunFinishedEvent struct {
	ErrorCount int `cbor:"1,keyasint"`
	GroupCount int `cbor:"2,keyasint"`

	// Duration of the walk. Stored as nanoseconds.
	Duration time.Duration `cbor:"3,keyasint"`
}
