package reminder

import "time"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// MessageChanged carries the full text of the message field after an edit.
type MessageChanged struct {
	Text string
}

// DatePicked is emitted by a date picker.
type DatePicked struct {
	Year  int
	Month time.Month
	Day   int
}

// TimePicked is emitted by a time picker.
type TimePicked struct {
	Hour   int
	Minute int
}

type ConfirmPressed struct{}

type ClearPressed struct{}

func (MessageChanged) isEvent() {}
func (DatePicked) isEvent()     {}
func (TimePicked) isEvent()     {}
func (ConfirmPressed) isEvent() {}
func (ClearPressed) isEvent()   {}

// Effect is an observable output of a transition.
type Effect interface {
	isEffect()
}

// StatusEffect asks the view to show a transient status message.
type StatusEffect struct {
	Text string
}

// DetailsEffect toggles the confirmed reminder details.
type DetailsEffect struct {
	Visible bool
}

func (StatusEffect) isEffect()  {}
func (DetailsEffect) isEffect() {}

// Transition is the result of applying one event to a draft.
type Transition struct {
	Draft   Draft
	Effects []Effect
	// Err is set when the event was rejected or, for TimePicked, when the
	// pick was recorded as a failure.
	Err error
}

// Status returns the last status text in the transition, if any.
func (t Transition) Status() (string, bool) {
	for i := len(t.Effects) - 1; i >= 0; i-- {
		if s, ok := t.Effects[i].(StatusEffect); ok {
			return s.Text, true
		}
	}
	return "", false
}
