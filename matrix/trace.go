// SPDX-License-Identifier: MIT

// Package matrix - algorithm checkpoints for step-by-step observation.
//
// Purpose:
//   - Let callers watch Determinant and Inverse work without the kernels
//     printing anything themselves.
//   - Events are plain values; tracers must not retain the Matrix fields
//     beyond the call because they are the kernel's private working buffers.
package matrix

// EventKind identifies an algorithm checkpoint.
type EventKind int

// Checkpoint kinds, in the order they typically fire.
const (
	EventMinor     EventKind = iota + 1 // a minor was extracted (Determinant)
	EventCofactor                       // one cofactor term was accumulated (Determinant)
	EventPivot                          // a pivot row was selected (Inverse)
	EventSwap                           // two rows were exchanged (Inverse)
	EventNormalize                      // the pivot row was divided by the pivot (Inverse)
	EventEliminate                      // a row was reduced against the pivot row (Inverse)
)

var eventNames = map[EventKind]string{
	EventMinor:     "minor",
	EventCofactor:  "cofactor",
	EventPivot:     "pivot",
	EventSwap:      "swap",
	EventNormalize: "normalize",
	EventEliminate: "eliminate",
}

// String returns the lower-case checkpoint name.
func (k EventKind) String() string {
	if s, ok := eventNames[k]; ok {
		return s
	}

	return "unknown"
}

// Event describes a single checkpoint.
//
// Field usage per kind:
//   - EventMinor:     Row/Col = deleted row/col, Size = order of the source, Depth = recursion depth.
//   - EventCofactor:  Col = expansion column, Value = signed term, Sign = ±1, Depth = recursion depth.
//   - EventPivot:     Col = pivot column, Row = chosen row, Value = pivot value.
//   - EventSwap:      Row and Other are the exchanged rows.
//   - EventNormalize: Row = pivot row, Value = divisor.
//   - EventEliminate: Row = reduced row, Col = pivot column, Value = factor.
type Event struct {
	Kind  EventKind
	Row   int
	Col   int
	Other int
	Size  int
	Depth int
	Sign  float64
	Value float64
}

// Tracer observes algorithm checkpoints.
type Tracer interface {
	Trace(Event)
}

// TracerFunc adapts a plain function to the Tracer interface.
type TracerFunc func(Event)

// Trace calls f(e).
func (f TracerFunc) Trace(e Event) { f(e) }

// emit forwards e to t when tracing is enabled.
func emit(t Tracer, e Event) {
	if t != nil {
		t.Trace(e)
	}
}
