package domain

import "time"

// OperationalWindow is the full half-open interval [Start, End) a booking
// occupies: prep buffer + live service + cleanup buffer. Derived, never
// stored on its own.
type OperationalWindow struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals actually intersect.
// Touching endpoints do not overlap: [10:00, 11:00) and [11:00, 12:00)
// are disjoint.
func (w OperationalWindow) Overlaps(other OperationalWindow) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Contains reports whether the instant falls inside the window
func (w OperationalWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the total length of the window
func (w OperationalWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// CandidateSlot is an ephemeral offer computed for an availability request.
// It has no identity beyond its start instant and is never persisted.
type CandidateSlot struct {
	Start      time.Time
	Window     OperationalWindow
	Admissible bool
	Reason     string // пустая строка для допустимых слотов
}
