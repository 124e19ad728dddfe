package booking

// CalendarStatus tracks the best-effort external calendar sync per booking.
// It never influences whether the booking itself exists.
type CalendarStatus string

const (
	CalendarNotAdded CalendarStatus = "not_added"
	CalendarCreated  CalendarStatus = "created"
	CalendarFailed   CalendarStatus = "failed"
	CalendarDisabled CalendarStatus = "disabled"
)

// SyncErrorType classifies a failed calendar attempt for diagnostics only;
// it never drives automatic retries.
type SyncErrorType string

const (
	SyncErrAuth       SyncErrorType = "auth"
	SyncErrPermission SyncErrorType = "permission"
	SyncErrNotFound   SyncErrorType = "not_found"
	SyncErrRateLimit  SyncErrorType = "rate_limit"
	SyncErrValidation SyncErrorType = "validation"
	SyncErrNetwork    SyncErrorType = "network"
	SyncErrUnknown    SyncErrorType = "unknown"
)
