package core

import "time"

const (
	isoDateLayout     = "2006-01-02"
	displayDateLayout = "02 Jan 2006"
)

// Date is a calendar day. Time-of-day is not part of the model: the wrapped
// time is always midnight UTC, so equality and ordering operate on whole
// days regardless of where the process runs.
type Date struct {
	time.Time
}

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate accepts the ISO form "2006-01-02" and the display form
// "02 Jan 2006". Anything else fails with ErrInvalidDate.
func ParseDate(s string) (Date, error) {
	for _, layout := range []string{isoDateLayout, displayDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, ErrInvalidDate
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// ISO renders the date as "2006-01-02". This is the CSV wire form.
func (d Date) ISO() string {
	return d.Format(isoDateLayout)
}

// Display renders the date as "02 Jan 2006" for the ledger table.
func (d Date) Display() string {
	return d.Format(displayDateLayout)
}

// Compare orders dates by whole day: -1 if d is earlier than other,
// 0 if equal, +1 if later.
func (d Date) Compare(other Date) int {
	switch {
	case d.Before(other.Time):
		return -1
	case d.After(other.Time):
		return 1
	default:
		return 0
	}
}

// SameMonth reports whether the date falls in the given calendar month.
func (d Date) SameMonth(year, month int) bool {
	return d.Year() == year && d.Month() == month
}
