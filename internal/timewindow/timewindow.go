package timewindow

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"go-leavedesk/internal/shared/apperror"
)

// Window is an inclusive calendar-date range. Both bounds are dates at
// midnight UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) StartString() string { return w.Start.Format("2006-01-02") }
func (w Window) EndString() string   { return w.End.Format("2006-01-02") }

// Contains reports whether the given date falls inside the window.
func (w Window) Contains(date time.Time) bool {
	d := Truncate(date)
	return !d.Before(w.Start) && !d.After(w.End)
}

// Truncate drops the time-of-day component, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var ErrInvalidSelector = apperror.New(
	apperror.CodeInvalidInput,
	"invalid time window selector",
	http.StatusBadRequest,
)

var isoWeekPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// Day resolves a single date to the window covering just that date.
func Day(date time.Time) Window {
	d := Truncate(date)
	return Window{Start: d, End: d}
}

// Month resolves (year, month 1-12) to the first..last day of that month.
// The end bound is computed by normalizing day zero of the following month,
// so leap-year Februaries come out right.
func Month(year, month int) (Window, error) {
	if month < 1 || month > 12 {
		return Window{}, invalidSelector(fmt.Sprintf("month %d out of range", month))
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: end}, nil
}

// ISOWeek resolves a "YYYY-Www" selector to its Monday..Sunday window.
//
// The Monday is found per ISO-8601: take ordinal day 1+(week-1)*7 of the
// year, then snap to the Monday of that date's week - backwards when the
// reference weekday is Monday..Thursday, forwards otherwise.
func ISOWeek(selector string) (Window, error) {
	m := isoWeekPattern.FindStringSubmatch(selector)
	if m == nil {
		return Window{}, invalidSelector(fmt.Sprintf("%q does not match YYYY-Www", selector))
	}
	year, _ := strconv.Atoi(m[1])
	week, _ := strconv.Atoi(m[2])
	if week < 1 || week > 53 {
		return Window{}, invalidSelector(fmt.Sprintf("week %d out of range", week))
	}

	ref := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, (week-1)*7)

	weekday := int(ref.Weekday())
	if weekday == 0 {
		weekday = 7 // ISO: Sunday is day 7
	}

	var monday time.Time
	if weekday <= 4 {
		monday = ref.AddDate(0, 0, 1-weekday)
	} else {
		monday = ref.AddDate(0, 0, 8-weekday)
	}

	return Window{Start: monday, End: monday.AddDate(0, 0, 6)}, nil
}

func invalidSelector(detail string) error {
	return apperror.New(
		apperror.CodeInvalidInput,
		"invalid time window selector: "+detail,
		http.StatusBadRequest,
	)
}
