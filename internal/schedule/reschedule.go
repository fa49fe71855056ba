package schedule

import "math"

// DragState tracks a reschedule gesture: Idle → Dragging → Committing → Idle.
// A drop below the no-op threshold or onto the original start skips Committing
// and goes straight back to Idle.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
	StateCommitting
)

// NoOpThresholdPixels: a release with less accumulated displacement than this
// is treated as an aborted gesture, never as a zero-minute move.
const NoOpThresholdPixels = 2.0

// DragSession turns a continuous vertical drag into a committed, valid start
// time for one appointment card. One session per card; the grid serializes
// gestures so sessions are never shared between goroutines.
type DragSession struct {
	state      DragState
	startClock string
	deltaY     float64
}

func NewDragSession(startClock string) *DragSession {
	return &DragSession{
		state:      StateIdle,
		startClock: startClock,
	}
}

func (s *DragSession) State() DragState { return s.state }

func (s *DragSession) Begin() {
	s.state = StateDragging
	s.deltaY = 0
}

// Move accumulates displacement. Nothing is persisted while dragging.
func (s *DragSession) Move(dyPixels float64) {
	if s.state == StateDragging {
		s.deltaY += dyPixels
	}
}

// Cancel aborts the gesture with no side effects.
func (s *DragSession) Cancel() {
	s.state = StateIdle
	s.deltaY = 0
}

// Drop ends the gesture. When moved is true the session is in Committing and
// the caller must issue exactly one persistence update for newStart, then call
// Committed or Failed. When moved is false the session is already Idle again
// and nothing may be persisted.
func (s *DragSession) Drop() (newStart string, moved bool) {
	if s.state != StateDragging {
		return s.startClock, false
	}

	if math.Abs(s.deltaY) < NoOpThresholdPixels {
		s.Cancel()
		return s.startClock, false
	}

	minutesMoved := int(math.Round(s.deltaY / PixelsPerMinute))
	raw := MinutesOf(s.startClock) + minutesMoved
	snapped := SnapToGrid(ClampToDay(raw))

	if snapped == MinutesOf(s.startClock) {
		s.Cancel()
		return s.startClock, false
	}

	s.state = StateCommitting
	return Clock(snapped), true
}

// Committed records a successful persistence write; the session's start moves
// to the committed time (the optimistic update the caller mirrors in memory).
func (s *DragSession) Committed(newStart string) {
	s.startClock = newStart
	s.state = StateIdle
	s.deltaY = 0
}

// Failed records a persistence failure; the start stays at its pre-drag value.
func (s *DragSession) Failed() {
	s.state = StateIdle
	s.deltaY = 0
}

// Start is the session's current committed start time.
func (s *DragSession) Start() string { return s.startClock }
