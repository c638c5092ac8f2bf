package gcalendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClientFromCredentialsFile creates a Calendar client from a Service
// Account JSON file path. calendarID may be empty, in which case "primary"
// is used.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, calendarID string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, calendarID)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service
// Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, calendarID string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format, expected service account JSON: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{service: svc, calendarID: calendarID}, nil
}

// CreateEvent creates a calendar event for the appointment.
func (c *Client) CreateEvent(ctx context.Context, appt Appointment) (*CreatedEvent, error) {
	if appt.Title == "" {
		return nil, fmt.Errorf("appointment title is required")
	}
	if appt.Start.IsZero() {
		return nil, fmt.Errorf("appointment start time is required")
	}

	end := appt.End
	if end.IsZero() {
		end = appt.Start.Add(30 * time.Minute)
	}

	event := &calendar.Event{
		Summary:     appt.Title,
		Description: appt.Description,
		Start: &calendar.EventDateTime{
			DateTime: appt.Start.Format(time.RFC3339),
			TimeZone: appt.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: appt.Timezone,
		},
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert calendar event: %w", err)
	}

	return &CreatedEvent{EventID: created.Id, HTMLLink: created.HtmlLink}, nil
}
