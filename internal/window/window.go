// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package window derives the submission-date range for one feed query.
package window

import (
	"time"

	"github.com/pdiddy/arxiv-triage/pkg/types"
)

// DefaultZone is the civil time zone anchoring arXiv submission timestamps.
const DefaultZone = "America/New_York"

// DefaultCutoffHour is the civil hour before which the feed has not yet
// ingested the current day's full batch.
const DefaultCutoffHour = 20

// boundaryTime is the submission-deadline time appended to both window dates.
const boundaryTime = "1400"

// LoadZone resolves the named civil zone, defaulting to DefaultZone when
// name is empty.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultZone
	}
	return time.LoadLocation(name)
}

// Compute derives the date window for arXiv submissions from the current
// wall-clock time. The rules, in order:
//
//  1. Convert now into the feed's civil zone.
//  2. Before cutoffHour, treat "today" as the previous calendar day.
//  3. Roll "today" backward through Saturday and Sunday until it lands on
//     a weekday; feed submission activity is null on weekends.
//  4. End is today at 14:00; start is exactly one calendar day earlier at
//     14:00, with no weekend skip of its own. A Monday end therefore
//     yields a Sunday start date, which is correct: the window must cover
//     the whole gap since the previous submission deadline.
//
// Pure function of its inputs; no error conditions.
func Compute(now time.Time, cutoffHour int, zone *time.Location) types.DateWindow {
	civil := now.In(zone)
	today := time.Date(civil.Year(), civil.Month(), civil.Day(), 0, 0, 0, 0, zone)

	if civil.Hour() < cutoffHour {
		today = today.AddDate(0, 0, -1)
	}

	for today.Weekday() == time.Saturday || today.Weekday() == time.Sunday {
		today = today.AddDate(0, 0, -1)
	}

	start := today.AddDate(0, 0, -1)

	return types.DateWindow{
		Start: start.Format("20060102") + boundaryTime,
		End:   today.Format("20060102") + boundaryTime,
	}
}
