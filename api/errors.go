package api

import "fmt"

// Error is a failure the server responded to: a non-2xx status whose message
// was extracted from the structured error body. The message is suitable for
// showing to the user verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// extractMessage pulls a human-readable message out of a decoded error body.
// Preference order: detail, message, error, then the body itself when it is a
// plain string. Absent all of these the message is synthesized from the
// status code.
func extractMessage(payload any, statusCode int) string {
	switch body := payload.(type) {
	case map[string]any:
		for _, field := range []string{"detail", "message", "error"} {
			if msg, ok := body[field].(string); ok && msg != "" {
				return msg
			}
		}
	case string:
		if body != "" {
			return body
		}
	}
	return fmt.Sprintf("request failed with status %d", statusCode)
}
