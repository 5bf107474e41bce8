package reminder

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Placeholders shown for fields that have not been picked yet.
const (
	DatePlaceholder = "0/00/20XX"
	TimePlaceholder = "00:00"
)

var (
	ErrDateInPast  = errors.New("Date is in the past!")
	ErrInvalidDate = errors.New("invalid date")
	ErrTimeInPast  = errors.New("Time is in the past!")
	ErrInvalidTime = errors.New("invalid time")

	errNotSet = errors.New("must be set")
)

// DateValue is a calendar day. The zero value is unset.
type DateValue struct {
	Year  int
	Month time.Month
	Day   int
	set   bool
}

func NewDate(year int, month time.Month, day int) DateValue {
	return DateValue{Year: year, Month: month, Day: day, set: true}
}

func (d DateValue) IsSet() bool {
	return d.set
}

// String renders month/day/year without zero padding.
func (d DateValue) String() string {
	if !d.set {
		return DatePlaceholder
	}
	return fmt.Sprintf("%d/%d/%d", int(d.Month), d.Day, d.Year)
}

// In returns midnight of the day in loc.
func (d DateValue) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// TimeValue is a wall-clock hour and minute. The zero value is unset.
type TimeValue struct {
	Hour   int
	Minute int
	set    bool
}

func NewTime(hour, minute int) TimeValue {
	return TimeValue{Hour: hour, Minute: minute, set: true}
}

func (t TimeValue) IsSet() bool {
	return t.set
}

// String renders hour:minute without zero padding, so 09:00 is "9:0".
func (t TimeValue) String() string {
	if !t.set {
		return TimePlaceholder
	}
	return fmt.Sprintf("%d:%d", t.Hour, t.Minute)
}

// On combines the time with a day.
func (t TimeValue) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Draft is the whole reminder screen state.
type Draft struct {
	Message   string    `json:"message"`
	Date      DateValue `json:"date"`
	Time      TimeValue `json:"time"`
	Confirmed bool      `json:"confirmed"`

	// TimeErr holds the reason the last time pick was rejected.
	TimeErr error `json:"-"`
}

// DateDisplay is the text shown for the date field.
func (d Draft) DateDisplay() string {
	return d.Date.String()
}

// TimeDisplay is the text shown for the time field. A rejected pick shows
// its reason instead of the placeholder.
func (d Draft) TimeDisplay() string {
	if !d.Time.IsSet() && d.TimeErr != nil {
		return d.TimeErr.Error()
	}
	return d.Time.String()
}

// Validate reports whether the draft can be confirmed.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Message, validation.Required),
		validation.Field(&d.Date, validation.By(func(value interface{}) error {
			if v, _ := value.(DateValue); !v.IsSet() {
				return errNotSet
			}
			return nil
		})),
		validation.Field(&d.Time, validation.By(func(value interface{}) error {
			if v, _ := value.(TimeValue); !v.IsSet() {
				return errNotSet
			}
			return nil
		})),
	)
}

// Ready is true when Validate passes.
func (d Draft) Ready() bool {
	return d.Validate() == nil
}

// StatusText is the confirmation line for a ready draft.
func (d Draft) StatusText() string {
	return fmt.Sprintf("Reminder set for %s at %s!", d.Date, d.Time)
}
