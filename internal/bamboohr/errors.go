package bamboohr

import "errors"

var (
	ErrTransport         = errors.New("transport failure")
	ErrEmptyResponse     = errors.New("empty response")
	ErrMissingData       = errors.New("missing data")
	ErrUnexpectedStatus  = errors.New("unexpected status")
	ErrMalformedResponse = errors.New("malformed response")
	ErrInvalidInput      = errors.New("invalid input")
	ErrHistoryEntry      = errors.New("history entry failed")

	ErrDuplicateEmail    = errors.New("duplicate email")
	ErrBadPayload        = errors.New("bad payload")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrNotEditable       = errors.New("not editable")
	ErrDuplicateValue    = errors.New("duplicate value")
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnknownEmployee   = errors.New("unknown employee")
)

const errorMessageHeader = "X-BambooHR-Error-Message"

// Error is returned by every client operation that fails. Kind is one of the
// sentinel errors above, so callers can branch with errors.Is.
type Error struct {
	Kind          error
	Path          string
	StatusCode    int
	Message       string
	RemoteMessage string
	Err           error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}
