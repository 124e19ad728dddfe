package calendar

import (
	"context"
	"errors"
	"net"

	"slotbook/internal/domain/booking"

	"google.golang.org/api/googleapi"
)

// classify maps a Google API failure onto the sync error taxonomy the rest of
// the system understands. Unrecognized failures come back as SyncErrUnknown.
func classify(err error) *booking.SyncError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401:
			return &booking.SyncError{
				Type:   booking.SyncErrAuth,
				Detail: "service account authentication was rejected",
				Err:    err,
			}
		case 403:
			return &booking.SyncError{
				Type:   booking.SyncErrPermission,
				Detail: "service account lacks access to the calendar",
				Err:    err,
			}
		case 404:
			return &booking.SyncError{
				Type:   booking.SyncErrNotFound,
				Detail: "calendar or event was not found",
				Err:    err,
			}
		case 429:
			return &booking.SyncError{
				Type:   booking.SyncErrRateLimit,
				Detail: "calendar API rate limit exceeded",
				Err:    err,
			}
		case 400:
			return &booking.SyncError{
				Type:   booking.SyncErrValidation,
				Detail: "calendar API rejected the event payload",
				Err:    err,
			}
		}
		return &booking.SyncError{
			Type:   booking.SyncErrUnknown,
			Detail: apiErr.Message,
			Err:    err,
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return &booking.SyncError{
			Type:   booking.SyncErrNetwork,
			Detail: "could not reach the calendar API",
			Err:    err,
		}
	}

	return &booking.SyncError{
		Type:   booking.SyncErrUnknown,
		Detail: "unexpected calendar failure",
		Err:    err,
	}
}
