package progressor

// State identifies where an operation is in its progress lifecycle.
type State int

const (
	// Working is the initial state: the operation is actively making
	// progress. Every Update/UpdateWithMessage call returns to Working.
	Working State = iota

	// Paused means the operation has signaled a hold. Any subsequent
	// progress report implicitly resumes to Working.
	Paused

	// Completed is the terminal state reached via [Controller.Complete].
	Completed

	// Cancelled is the terminal state reached when a controller is
	// released without completing.
	Cancelled
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Working:
		return "working"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state permits no further transitions.
func (s State) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Update is an immutable snapshot of an operation's progress at one
// instant. Every emission carries the full state, never a delta, so a
// late-joining observer always sees a complete picture.
type Update struct {
	// Current is the progress counter. It is not clamped and may
	// exceed Total.
	Current uint64

	// Total is the target value. Zero is legal and means the completed
	// fraction is undefined (reported as 0).
	Total uint64

	// State is the lifecycle state at the time of emission.
	State State

	// Message is the last human-readable annotation, or "" when none
	// is attached. Plain updates clear it; message-bearing updates set
	// it; pause and cancellation leave it untouched.
	Message string
}

// NewUpdate returns the initial snapshot for an operation with the
// given total: zero progress, Working, no message.
func NewUpdate(total uint64) Update {
	return Update{Total: total}
}

// CompletedFraction returns Current/Total as a float in the usual case.
// When Total is zero the fraction is undefined and 0 is returned.
func (u Update) CompletedFraction() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Current) / float64(u.Total)
}

// Remaining returns Total-Current, saturating at zero when Current has
// overshot Total.
func (u Update) Remaining() uint64 {
	if u.Current >= u.Total {
		return 0
	}
	return u.Total - u.Current
}

// IsComplete reports whether Current has reached (or passed) Total.
// Note this is about the counter, not the lifecycle; see
// [Update.IsTerminal] for the latter.
func (u Update) IsComplete() bool {
	return u.Current >= u.Total
}

// IsTerminal reports whether this snapshot is the operation's last:
// Completed or Cancelled.
func (u Update) IsTerminal() bool {
	return u.State.IsTerminal()
}
