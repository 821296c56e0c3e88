// Package gcal publishes the deadline calendar to a Google Calendar as
// all-day events.
package gcal

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/filingdesk/internal/domain"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// KeyProperty is the private extended property that identifies an event as
// the one published for a deadline.
const KeyProperty = "filingdesk_key"

const dateLayout = "2006-01-02"

// Stats counts what a publish run did to the calendar.
type Stats struct {
	Created   int
	Updated   int
	Unchanged int
}

// NewService builds a Calendar client from a service-account credentials
// file. Extra options are applied after the credentials.
func NewService(ctx context.Context, credentialsFile string, opts ...option.ClientOption) (*calendar.Service, error) {
	data, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("reading credentials file: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}
	srv, err := calendar.NewService(ctx, append([]option.ClientOption{option.WithCredentials(creds)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return srv, nil
}

// Publisher upserts deadline events into one calendar.
type Publisher struct {
	srv        *calendar.Service
	calendarID string
}

func NewPublisher(srv *calendar.Service, calendarID string) *Publisher {
	return &Publisher{srv: srv, calendarID: calendarID}
}

// EventKey is the KeyProperty value for a deadline. Titles are unique within
// a fiscal year.
func EventKey(d domain.Deadline) string {
	return d.FiscalYear + "|" + d.Title
}

// Publish creates an event for each deadline that has none and patches
// events whose summary, description or date drifted. It stops at the first
// API error and returns the counts so far.
func (p *Publisher) Publish(ctx context.Context, deadlines []domain.Deadline) (Stats, error) {
	var stats Stats
	for _, d := range deadlines {
		target := eventFor(d)

		existing, err := p.find(ctx, EventKey(d))
		if err != nil {
			return stats, fmt.Errorf("looking up event for %q: %w", d.Title, err)
		}

		if existing == nil {
			if _, err := p.srv.Events.Insert(p.calendarID, target).Context(ctx).Do(); err != nil {
				return stats, fmt.Errorf("creating event for %q: %w", d.Title, err)
			}
			stats.Created++
			continue
		}

		patch := eventPatch(existing, target)
		if patch == nil {
			stats.Unchanged++
			continue
		}
		if _, err := p.srv.Events.Patch(p.calendarID, existing.Id, patch).Context(ctx).Do(); err != nil {
			return stats, fmt.Errorf("updating event for %q: %w", d.Title, err)
		}
		stats.Updated++
	}
	return stats, nil
}

func (p *Publisher) find(ctx context.Context, key string) (*calendar.Event, error) {
	events, err := p.srv.Events.List(p.calendarID).
		PrivateExtendedProperty(KeyProperty + "=" + key).
		ShowDeleted(false).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	if len(events.Items) == 0 {
		return nil, nil
	}
	return events.Items[0], nil
}

func eventFor(d domain.Deadline) *calendar.Event {
	return &calendar.Event{
		Summary:     d.Title,
		Description: fmt.Sprintf("%s\n\nService: %s\nPriority: %s", d.Description, d.Service, d.Priority),
		// All-day events end on the following day, exclusive.
		Start: &calendar.EventDateTime{Date: d.Date.Format(dateLayout)},
		End:   &calendar.EventDateTime{Date: d.Date.AddDate(0, 0, 1).Format(dateLayout)},
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{KeyProperty: EventKey(d)},
		},
		Transparency: "transparent",
	}
}

// eventPatch returns the fields of target that differ from existing, or nil
// when nothing changed.
func eventPatch(existing, target *calendar.Event) *calendar.Event {
	patch := &calendar.Event{}
	changed := false

	if existing.Summary != target.Summary {
		patch.Summary = target.Summary
		changed = true
	}
	if existing.Description != target.Description {
		patch.Description = target.Description
		changed = true
	}
	if eventDate(existing.Start) != target.Start.Date || eventDate(existing.End) != target.End.Date {
		patch.Start = target.Start
		patch.End = target.End
		changed = true
	}

	if !changed {
		return nil
	}
	return patch
}

func eventDate(dt *calendar.EventDateTime) string {
	if dt == nil {
		return ""
	}
	return dt.Date
}
