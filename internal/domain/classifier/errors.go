package classifier

import "errors"

// ErrUnavailable indicates the classifier cannot be reached or initialized.
// Surfaced to callers as a service-unavailable condition; retries belong to
// the classifier implementation, not to its consumers.
var ErrUnavailable = errors.New("classifier unavailable")
