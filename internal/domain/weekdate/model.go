package weekdate

import "context"

// WeekDate is the date window of one selection week.
type WeekDate struct {
	Week       int
	StartDate  string
	FinishDate string
}

// Today is the league's stored notion of the current date and time.
type Today struct {
	Date string
	Time string
}

type Repository interface {
	List(ctx context.Context) ([]WeekDate, error)
	// Today returns false when the date tab holds no value.
	Today(ctx context.Context) (Today, bool, error)
}
