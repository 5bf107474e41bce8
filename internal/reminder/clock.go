package reminder

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

// Clock supplies the current wall-clock time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock always returns the same instant.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Today is midnight of now's day, the earliest date a reminder may use.
func Today(now time.Time) time.Time {
	return carbon.Time2Carbon(now).StartOfDay().Carbon2Time()
}

// DateSource is a date picker. ok is false when the user cancelled.
type DateSource interface {
	PickDate(floor time.Time) (year int, month time.Month, day int, ok bool)
}

// TimeSource is a time picker. It has no floor.
type TimeSource interface {
	PickTime(initial time.Time) (hour, minute int, ok bool)
}
