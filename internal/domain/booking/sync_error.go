package booking

// SyncError carries the classification of a failed calendar attempt alongside
// the underlying cause. Handlers surface Type and Detail to admins only.
type SyncError struct {
	Type   SyncErrorType
	Detail string
	Err    error
}

func (e *SyncError) Error() string {
	if e.Err != nil {
		return string(e.Type) + ": " + e.Detail + ": " + e.Err.Error()
	}
	return string(e.Type) + ": " + e.Detail
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
