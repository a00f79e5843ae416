package timewindow_test

import (
	"testing"
	"time"

	"go-leavedesk/internal/timewindow"

	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	w := timewindow.Day(time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, "2024-03-10", w.StartString())
	assert.Equal(t, "2024-03-10", w.EndString())
}

func TestMonth(t *testing.T) {
	t.Run("regular month", func(t *testing.T) {
		w, err := timewindow.Month(2024, 4)

		assert.NoError(t, err)
		assert.Equal(t, "2024-04-01", w.StartString())
		assert.Equal(t, "2024-04-30", w.EndString())
	})

	t.Run("leap year february", func(t *testing.T) {
		w, err := timewindow.Month(2024, 2)

		assert.NoError(t, err)
		assert.Equal(t, "2024-02-29", w.EndString())
	})

	t.Run("non-leap february", func(t *testing.T) {
		w, err := timewindow.Month(2023, 2)

		assert.NoError(t, err)
		assert.Equal(t, "2023-02-28", w.EndString())
	})

	t.Run("negative month out of range", func(t *testing.T) {
		_, err := timewindow.Month(2024, 13)

		assert.Error(t, err)
	})
}

func TestISOWeek(t *testing.T) {
	t.Run("2024-W01 starts on new year monday", func(t *testing.T) {
		w, err := timewindow.ISOWeek("2024-W01")

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-01", w.StartString())
		assert.Equal(t, "2024-01-07", w.EndString())
		assert.Equal(t, time.Monday, w.Start.Weekday())
	})

	t.Run("2023-W01 reaches back into prior year", func(t *testing.T) {
		// Jan 1 2023 is a Sunday, so ISO week 1 starts Jan 2.
		w, err := timewindow.ISOWeek("2023-W01")

		assert.NoError(t, err)
		assert.Equal(t, "2023-01-02", w.StartString())
		assert.Equal(t, time.Monday, w.Start.Weekday())
	})

	t.Run("2021-W01 skips leading partial week", func(t *testing.T) {
		// Jan 1 2021 is a Friday; those days belong to 2020-W53.
		w, err := timewindow.ISOWeek("2021-W01")

		assert.NoError(t, err)
		assert.Equal(t, "2021-01-04", w.StartString())
	})

	t.Run("mid-year week", func(t *testing.T) {
		w, err := timewindow.ISOWeek("2024-W10")

		assert.NoError(t, err)
		assert.Equal(t, "2024-03-04", w.StartString())
		assert.Equal(t, "2024-03-10", w.EndString())
	})

	t.Run("negative malformed selector", func(t *testing.T) {
		_, err := timewindow.ISOWeek("2024-10")

		assert.Error(t, err)
	})

	t.Run("negative week out of range", func(t *testing.T) {
		_, err := timewindow.ISOWeek("2024-W54")

		assert.Error(t, err)
	})
}

func TestResolve(t *testing.T) {
	t.Run("day selector", func(t *testing.T) {
		w, err := timewindow.Resolve(timewindow.Selector{
			Granularity: timewindow.GranularityDay,
			Date:        "2024-06-15",
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-06-15", w.StartString())
	})

	t.Run("month selector", func(t *testing.T) {
		w, err := timewindow.Resolve(timewindow.Selector{
			Granularity: timewindow.GranularityMonth,
			Year:        2024,
			Month:       1,
		})

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-31", w.EndString())
	})

	t.Run("negative bad date", func(t *testing.T) {
		_, err := timewindow.Resolve(timewindow.Selector{
			Granularity: timewindow.GranularityDay,
			Date:        "15-06-2024",
		})

		assert.Error(t, err)
	})
}

func TestWindowContains(t *testing.T) {
	w, err := timewindow.ISOWeek("2024-W10")
	assert.NoError(t, err)

	assert.True(t, w.Contains(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)))
}
