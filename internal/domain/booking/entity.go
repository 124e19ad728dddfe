package booking

import (
	"errors"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("participant name is required")
	ErrInvalidEmail      = errors.New("invalid participant email")
	ErrEmptyCoachName    = errors.New("coach name is required")
	ErrEmptyGenre        = errors.New("genre is required")
	ErrInvalidPreworkURL = errors.New("prework URL must be a valid http(s) URL")
	ErrMissingEventID    = errors.New("calendar event id is required")
)

type Booking struct {
	id              uuid.UUID
	slotID          uuid.UUID
	name            string
	email           string
	coachName       string
	genre           string
	preworkURL      *string
	calendarStatus  CalendarStatus
	calendarEventID *string
	createdAt       time.Time
}

func NewBooking(slotID uuid.UUID, name, email, coachName, genre string, preworkURL *string, now time.Time) (*Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	coachName = strings.TrimSpace(coachName)
	if coachName == "" {
		return nil, ErrEmptyCoachName
	}

	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, ErrEmptyGenre
	}

	if preworkURL != nil {
		trimmed := strings.TrimSpace(*preworkURL)
		if trimmed == "" {
			preworkURL = nil
		} else {
			parsed, err := url.Parse(trimmed)
			if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
				return nil, ErrInvalidPreworkURL
			}
			preworkURL = &trimmed
		}
	}

	return &Booking{
		id:             uuid.New(),
		slotID:         slotID,
		name:           name,
		email:          email,
		coachName:      coachName,
		genre:          genre,
		preworkURL:     preworkURL,
		calendarStatus: CalendarNotAdded,
		createdAt:      now,
	}, nil
}

func ReconstructBooking(
	id, slotID uuid.UUID,
	name, email, coachName, genre string,
	preworkURL *string,
	calendarStatus CalendarStatus,
	calendarEventID *string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		slotID:          slotID,
		name:            name,
		email:           email,
		coachName:       coachName,
		genre:           genre,
		preworkURL:      preworkURL,
		calendarStatus:  calendarStatus,
		calendarEventID: calendarEventID,
		createdAt:       createdAt,
	}
}

// MarkCalendarCreated records a successful sync and the remote event id.
// Re-syncing an already created booking overwrites the stored id; the old
// remote event is left in place (at-least-once semantics).
func (b *Booking) MarkCalendarCreated(eventID string) error {
	if strings.TrimSpace(eventID) == "" {
		return ErrMissingEventID
	}
	b.calendarStatus = CalendarCreated
	b.calendarEventID = &eventID
	return nil
}

// MarkCalendarFailed records a failed attempt; any previously stored event id
// is kept so the remote event stays reachable.
func (b *Booking) MarkCalendarFailed() {
	b.calendarStatus = CalendarFailed
}

func (b *Booking) MarkCalendarDisabled() {
	b.calendarStatus = CalendarDisabled
}

func (b *Booking) HasCalendarEvent() bool {
	return b.calendarEventID != nil && *b.calendarEventID != ""
}

func (b *Booking) ID() uuid.UUID                  { return b.id }
func (b *Booking) SlotID() uuid.UUID              { return b.slotID }
func (b *Booking) Name() string                   { return b.name }
func (b *Booking) Email() string                  { return b.email }
func (b *Booking) CoachName() string              { return b.coachName }
func (b *Booking) Genre() string                  { return b.genre }
func (b *Booking) PreworkURL() *string            { return b.preworkURL }
func (b *Booking) CalendarStatus() CalendarStatus { return b.calendarStatus }
func (b *Booking) CalendarEventID() *string       { return b.calendarEventID }
func (b *Booking) CreatedAt() time.Time           { return b.createdAt }
