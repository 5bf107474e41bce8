package reminder

import "time"

// Observer receives the effects of each transition.
type Observer interface {
	Status(text string)
	Details(visible bool)
}

// State owns a Draft and runs events through Reduce with an injected clock.
type State struct {
	clock    Clock
	observer Observer
	draft    Draft
	details  bool
}

func NewState(clock Clock, observer Observer) *State {
	if clock == nil {
		clock = SystemClock{}
	}
	return &State{clock: clock, observer: observer}
}

func (s *State) Draft() Draft {
	return s.draft
}

func (s *State) DetailsVisible() bool {
	return s.details
}

// Apply reduces ev against the current draft and publishes the effects.
func (s *State) Apply(ev Event) Transition {
	t := Reduce(s.draft, ev, s.clock.Now())
	s.draft = t.Draft

	for _, eff := range t.Effects {
		switch e := eff.(type) {
		case StatusEffect:
			if s.observer != nil {
				s.observer.Status(e.Text)
			}
		case DetailsEffect:
			s.details = e.Visible
			if s.observer != nil {
				s.observer.Details(e.Visible)
			}
		}
	}

	return t
}

func (s *State) SetMessage(text string) {
	s.Apply(MessageChanged{Text: text})
}

func (s *State) PickDate(year int, month time.Month, day int) DateResult {
	t := s.Apply(DatePicked{Year: year, Month: month, Day: day})
	if t.Err != nil {
		return DateResult{Err: t.Err}
	}
	return DateResult{Value: t.Draft.Date}
}

func (s *State) PickTime(hour, minute int) TimeResult {
	t := s.Apply(TimePicked{Hour: hour, Minute: minute})
	if t.Err != nil {
		return TimeResult{Err: t.Err}
	}
	return TimeResult{Value: t.Draft.Time}
}

// Confirm sets the reminder. An incomplete draft is left as is and the
// validation error is returned.
func (s *State) Confirm() error {
	return s.Apply(ConfirmPressed{}).Err
}

func (s *State) Clear() {
	s.Apply(ClearPressed{})
}

// PickDateFrom asks src for a date no earlier than today. A cancelled pick
// returns ok false and changes nothing.
func (s *State) PickDateFrom(src DateSource) (DateResult, bool) {
	year, month, day, ok := src.PickDate(Today(s.clock.Now()))
	if !ok {
		return DateResult{}, false
	}
	return s.PickDate(year, month, day), true
}

// PickTimeFrom asks src for a time, starting from the current time.
func (s *State) PickTimeFrom(src TimeSource) (TimeResult, bool) {
	hour, minute, ok := src.PickTime(s.clock.Now())
	if !ok {
		return TimeResult{}, false
	}
	return s.PickTime(hour, minute), true
}
