package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"slotbook/internal/domain/booking"
	"slotbook/internal/domain/slot"
	"slotbook/internal/pkg/config"
	"slotbook/internal/pkg/errs"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client talks to the Google Calendar API with a service-account credential.
// A zero-config client is valid: Enabled reports false and no calls are made.
type Client struct {
	svc        *gcal.Service
	calendarID string
	timezone   string
	enabled    bool
}

func NewClient(ctx context.Context, cfg config.CalendarConfig) (*Client, error) {
	if !cfg.Enabled() {
		return &Client{enabled: false}, nil
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.NormalizedPrivateKey()),
		Scopes:     []string{gcal.CalendarScope},
		TokenURL:   google.JWTTokenURL,
	}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build calendar service")
	}

	return &Client{
		svc:        svc,
		calendarID: cfg.CalendarID,
		timezone:   cfg.TimeZone,
		enabled:    true,
	}, nil
}

func (c *Client) Enabled() bool {
	return c.enabled
}

// CreateEvent registers the booking on the shared calendar and invites the
// participant. The slot's end time defaults to one hour after the start when
// no duration was set.
func (c *Client) CreateEvent(ctx context.Context, b *booking.Booking, s *slot.Slot) (string, error) {
	if !c.enabled {
		return "", &booking.SyncError{Type: booking.SyncErrValidation, Detail: "calendar sync is not configured"}
	}

	endsAt := s.StartsAt().Add(time.Hour)
	if s.EndsAt() != nil {
		endsAt = *s.EndsAt()
	}

	event := &gcal.Event{
		Summary:     eventSummary(b),
		Description: eventDescription(b, s),
		Start: &gcal.EventDateTime{
			DateTime: s.StartsAt().Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: endsAt.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		Attendees: []*gcal.EventAttendee{
			{Email: b.Email()},
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		return "", classify(err)
	}
	return created.Id, nil
}

// DeleteEvent removes a previously created event. A 404 from the provider is
// treated as success: the event is already gone.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if !c.enabled {
		return nil
	}

	err := c.svc.Events.Delete(c.calendarID, eventID).
		SendUpdates("all").
		Context(ctx).
		Do()
	if err != nil {
		syncErr := classify(err)
		var se *booking.SyncError
		if errors.As(syncErr, &se) && se.Type == booking.SyncErrNotFound {
			return nil
		}
		return syncErr
	}
	return nil
}

func eventSummary(b *booking.Booking) string {
	return fmt.Sprintf("5-on-1 account review session | Coach: %s | Genre: %s", b.CoachName(), b.Genre())
}

func eventDescription(b *booking.Booking, s *slot.Slot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Participant: %s (%s)\n", b.Name(), b.Email())
	fmt.Fprintf(&sb, "Coach: %s\n", b.CoachName())
	fmt.Fprintf(&sb, "Genre: %s\n", b.Genre())
	if s.MeetingURL() != nil {
		fmt.Fprintf(&sb, "Meeting URL: %s\n", *s.MeetingURL())
	}
	if b.PreworkURL() != nil {
		fmt.Fprintf(&sb, "Prework: %s\n", *b.PreworkURL())
	}
	return sb.String()
}
