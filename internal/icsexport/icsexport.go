// Package icsexport renders consolidated events as an iCalendar feed so
// a couple can subscribe to their saved date nights from any calendar
// app.
package icsexport

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

// Input is one event to export.
type Input struct {
	ID          string
	Title       string
	Venue       string
	Description string
	Dates       []time.Time
}

// defaultDuration is assumed per occurrence; the source model carries a
// display time string, not a duration.
const defaultDuration = 2 * time.Hour

// Calendar serializes events into an ICS payload. A consolidated event
// produces one VEVENT per occurrence date, each with a stable UID of the
// form "<id>#<n>@datenight".
func Calendar(events []Input, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//datenight//saved events//EN")

	for _, ev := range events {
		for i, date := range ev.Dates {
			ve := cal.AddEvent(fmt.Sprintf("%s#%d@datenight", ev.ID, i))
			ve.SetCreatedTime(now)
			ve.SetDtStampTime(now)
			ve.SetStartAt(date)
			ve.SetEndAt(date.Add(defaultDuration))
			ve.SetSummary(ev.Title)
			if ev.Venue != "" {
				ve.SetLocation(ev.Venue)
			}
			if ev.Description != "" {
				ve.SetDescription(ev.Description)
			}
		}
	}
	return cal.Serialize()
}
