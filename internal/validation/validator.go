package validation

import (
	"regexp"
	"strings"

	"quizline/internal/domain"
)

// ULIDs are 26 characters of Crockford base32.
var ulidPattern = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)

// SessionID checks that id looks like a ULID before it reaches the session
// registry, so malformed IDs fail fast as bad input rather than as a lookup
// miss.
func SessionID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.NewInvalidInputError("session id is required")
	}
	if !ulidPattern.MatchString(id) {
		return domain.NewInvalidInputError("session id must be a 26-character ULID")
	}
	return nil
}
