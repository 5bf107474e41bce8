package reminder

import (
	"time"

	"github.com/golang-module/carbon/v2"
)

const ClearedText = "Reminder cleared"

// DateResult is either a picked date or the reason it was rejected.
type DateResult struct {
	Value DateValue
	Err   error
}

func (r DateResult) OK() bool {
	return r.Err == nil
}

// TimeResult is either a picked time or the reason it was rejected.
type TimeResult struct {
	Value TimeValue
	Err   error
}

func (r TimeResult) OK() bool {
	return r.Err == nil
}

// CheckDate validates a picked calendar day against today.
func CheckDate(year int, month time.Month, day int, now time.Time) DateResult {
	t := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return DateResult{Err: ErrInvalidDate}
	}

	floor := carbon.Time2Carbon(now).StartOfDay()
	if carbon.Time2Carbon(t).Lt(floor) {
		return DateResult{Err: ErrDateInPast}
	}

	return DateResult{Value: NewDate(year, month, day)}
}

// CheckTime validates a picked time. The time must be strictly later than
// now, to the minute. With a date the full instant is compared, otherwise
// only the time of day.
func CheckTime(hour, minute int, date DateValue, now time.Time) TimeResult {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeResult{Err: ErrInvalidTime}
	}

	value := NewTime(hour, minute)
	day := now
	if date.IsSet() {
		day = date.In(now.Location())
	}

	current := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), 0, 0, now.Location())
	if !value.On(day).After(current) {
		return TimeResult{Err: ErrTimeInPast}
	}

	return TimeResult{Value: value}
}

// Reduce applies ev to d. It does not modify d.
func Reduce(d Draft, ev Event, now time.Time) Transition {
	switch e := ev.(type) {
	case MessageChanged:
		if e.Text == d.Message {
			return Transition{Draft: d}
		}
		d.Message = e.Text
		return revoke(d, nil)

	case DatePicked:
		res := CheckDate(e.Year, e.Month, e.Day, now)
		if !res.OK() {
			return Transition{Draft: d, Err: res.Err}
		}
		d.Date = res.Value

		// A time picked earlier may not be in the future on the new day.
		if d.Time.IsSet() {
			if tr := CheckTime(d.Time.Hour, d.Time.Minute, d.Date, now); !tr.OK() {
				d.Time = TimeValue{}
				d.TimeErr = tr.Err
			}
		}
		return revoke(d, nil)

	case TimePicked:
		res := CheckTime(e.Hour, e.Minute, d.Date, now)
		switch res.Err {
		case nil:
			d.Time = res.Value
			d.TimeErr = nil
		case ErrTimeInPast:
			d.Time = TimeValue{}
			d.TimeErr = res.Err
		default:
			return Transition{Draft: d, Err: res.Err}
		}
		return revoke(d, res.Err)

	case ConfirmPressed:
		if err := d.Validate(); err != nil {
			return Transition{Draft: d, Err: err}
		}
		d.Confirmed = true
		return Transition{
			Draft: d,
			Effects: []Effect{
				StatusEffect{Text: d.StatusText()},
				DetailsEffect{Visible: true},
			},
		}

	case ClearPressed:
		return Transition{
			Draft: Draft{},
			Effects: []Effect{
				StatusEffect{Text: ClearedText},
				DetailsEffect{Visible: false},
			},
		}
	}

	return Transition{Draft: d}
}

// revoke drops a confirmation after an edit so Confirmed never outlives
// the values it was given for.
func revoke(d Draft, err error) Transition {
	t := Transition{Draft: d, Err: err}
	if d.Confirmed {
		t.Draft.Confirmed = false
		t.Effects = []Effect{DetailsEffect{Visible: false}}
	}
	return t
}
