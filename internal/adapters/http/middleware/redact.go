package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/cratedocs-web/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as a log group with credential-bearing
// values replaced by [REDACTED]. Keys are sorted and repeated values are
// joined with a comma.
func RedactHeaders(headers http.Header) slog.Value {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	slices.Sort(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		value := redacted
		if !logging.IsSensitiveHeader(name) {
			value = strings.Join(headers[name], ",")
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.GroupValue(attrs...)
}
