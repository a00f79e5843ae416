package timewindow

import (
	"time"
)

const (
	GranularityDay   = "day"
	GranularityWeek  = "week"
	GranularityMonth = "month"
)

// Selector names one reporting window: a single day, an ISO week, or a
// calendar month.
type Selector struct {
	Granularity string `json:"granularity" form:"granularity" binding:"required,oneof=day week month"`
	Date        string `json:"date" form:"date"`
	Year        int    `json:"year" form:"year"`
	Month       int    `json:"month" form:"month"`
	Week        string `json:"week" form:"week"`
}

// Resolve turns a selector into its inclusive date window.
func Resolve(sel Selector) (Window, error) {
	switch sel.Granularity {
	case GranularityDay:
		d, err := time.Parse("2006-01-02", sel.Date)
		if err != nil {
			return Window{}, invalidSelector("date must be YYYY-MM-DD")
		}
		return Day(d), nil
	case GranularityWeek:
		return ISOWeek(sel.Week)
	case GranularityMonth:
		return Month(sel.Year, sel.Month)
	default:
		return Window{}, ErrInvalidSelector
	}
}
