package validators

import "strings"

// NormalizeContent trims the message body and reports whether
// anything is left to send. A blank body is not an error, the send is
// simply skipped.
func NormalizeContent(content string) (string, bool) {
	trimmed := strings.TrimSpace(content)
	return trimmed, trimmed != ""
}
