package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrNoFixtureData   = errors.New("no holiday data available for year")
)
