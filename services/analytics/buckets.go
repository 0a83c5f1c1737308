// File: services/analytics/buckets.go
package analytics

import (
	"time"

	"tidyops/models"
)

// bucketUnit is the granularity a window is charted at.
type bucketUnit int

const (
	unitHour bucketUnit = iota
	unitDay
	unitMonth
)

// window maps a filter to its start time and chart granularity. The
// zero start time means "all history".
func (a *Aggregator) window(filter models.TimeFilter) (time.Time, bucketUnit) {
	now := a.now()
	switch filter {
	case models.FilterDay:
		return startOfDay(now), unitHour
	case models.FilterWeek:
		// 7 full days back plus today: 8 daily buckets.
		return startOfDay(now).AddDate(0, 0, -7), unitDay
	case models.FilterMonth:
		return startOfDay(now).AddDate(0, 0, -30), unitDay
	case models.FilterQuarter:
		return startOfMonth(now).AddDate(0, -2, 0), unitMonth
	case models.FilterYear:
		return startOfMonth(now).AddDate(0, -11, 0), unitMonth
	default: // models.FilterAll
		return time.Time{}, unitMonth
	}
}

func inWindow(t, start time.Time) bool {
	return start.IsZero() || !t.Before(start)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// truncate snaps a timestamp to its bucket's start.
func truncate(t time.Time, unit bucketUnit) time.Time {
	switch unit {
	case unitHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case unitDay:
		return startOfDay(t)
	default:
		return startOfMonth(t)
	}
}

func bucketLabel(t time.Time, unit bucketUnit) string {
	switch unit {
	case unitHour:
		return t.Format("15:00")
	case unitDay:
		return t.Format("Jan 02")
	default:
		return t.Format("Jan 2006")
	}
}

func next(t time.Time, unit bucketUnit) time.Time {
	switch unit {
	case unitHour:
		return t.Add(time.Hour)
	case unitDay:
		return t.AddDate(0, 0, 1)
	default:
		return t.AddDate(0, 1, 0)
	}
}

// emptyBuckets walks from the window start to now, emitting one
// zero-valued point per bucket so charts have no gaps.
func (a *Aggregator) emptyBuckets(start time.Time, unit bucketUnit) []models.TimeSeriesPoint {
	end := truncate(a.now(), unit)
	cursor := truncate(start, unit)

	var points []models.TimeSeriesPoint
	for !cursor.After(end) {
		points = append(points, models.TimeSeriesPoint{
			Label:  bucketLabel(cursor, unit),
			Bucket: cursor,
		})
		cursor = next(cursor, unit)
	}
	return points
}
