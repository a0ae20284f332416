package timeutil

import (
	"os"
	"time"
)

// Business is the timezone order timestamps are displayed and reported in.
// Defaults to UTC; set BUSINESS_TZ to the factory's zone in deployment.
var Business *time.Location

func init() {
	name := os.Getenv("BUSINESS_TZ")
	if name == "" {
		Business = time.UTC
		return
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		Business = time.UTC
		return
	}
	Business = loc
}

// Now returns the current time in the business timezone
func Now() time.Time {
	return time.Now().In(Business)
}

// ToBusiness converts any time to the business timezone
func ToBusiness(t time.Time) time.Time {
	return t.In(Business)
}

// StartOfDay returns the start of day (00:00:00) in the business timezone
func StartOfDay(t time.Time) time.Time {
	b := t.In(Business)
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Business)
}

// EndOfDay returns the end of day in the business timezone
func EndOfDay(t time.Time) time.Time {
	b := t.In(Business)
	return time.Date(b.Year(), b.Month(), b.Day(), 23, 59, 59, 999999999, Business)
}

// Common layouts for report formatting
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
	DateTimeLayout = "2006-01-02 15:04:05"
	DisplayLayout  = "02 Jan 2006, 03:04 PM"
)
