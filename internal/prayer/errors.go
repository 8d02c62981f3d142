package prayer

import (
	"errors"
	"fmt"

	"github.com/Nixie-Tech-LLC/minaret/internal/aladhan"
)

var (
	ErrNetworkFailure  = errors.New("network failure")
	ErrInvalidResponse = errors.New("invalid response")
	ErrMissingField    = errors.New("missing field")
)

// classifyFetchError maps a Fetcher error onto the widget's failure kinds.
// Anything the client did not flag as a bad response counts as a network
// failure, which is also how a cancelled request surfaces.
func classifyFetchError(err error) error {
	if errors.Is(err, aladhan.ErrBadResponse) {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return fmt.Errorf("%w: %v", ErrNetworkFailure, err)
}

// FailureKind returns a stable label for logging.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	default:
		return "network_failure"
	}
}
