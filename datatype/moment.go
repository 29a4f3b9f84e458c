package datatype

import (
	"fmt"
	"time"
)

// Precision is the granularity a dateTime was written with.
type Precision int

const (
	PrecisionYear Precision = iota + 1
	PrecisionMonth
	PrecisionDay
	PrecisionSecond
	PrecisionMillisecond
	PrecisionMicrosecond
)

func (p Precision) String() string {
	switch p {
	case PrecisionYear:
		return "year"
	case PrecisionMonth:
		return "month"
	case PrecisionDay:
		return "day"
	case PrecisionSecond:
		return "second"
	case PrecisionMillisecond:
		return "millisecond"
	case PrecisionMicrosecond:
		return "microsecond"
	default:
		return fmt.Sprintf("<err: %d is not a precision>", int(p))
	}
}

func (p Precision) IsValid() bool {
	return p >= PrecisionYear && p <= PrecisionMicrosecond
}

// HasTime reports whether values of this precision carry a time of day.
func (p Precision) HasTime() bool {
	return p >= PrecisionSecond
}

// Moment is the value of a dateTime primitive. The location of Time is the
// timezone the value was written in.
type Moment struct {
	Time      time.Time
	Precision Precision
}

// Equal reports whether m and o denote the same instant, precision and
// timezone.
func (m Moment) Equal(o Moment) bool {
	if m.Precision != o.Precision || !m.Time.Equal(o.Time) {
		return false
	}
	_, mOff := m.Time.Zone()
	_, oOff := o.Time.Zone()
	return mOff == oOff && m.Time.Location().String() == o.Time.Location().String()
}
