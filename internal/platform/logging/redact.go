package logging

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/m-mizutani/masq"
)

// sensitiveHeaders are canonical header names whose values are credentials.
var sensitiveHeaders = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
	"X-Api-Key",
}

// IsSensitiveHeader reports whether the value of header name must not be
// logged. The match ignores case.
func IsSensitiveHeader(name string) bool {
	canonical := http.CanonicalHeaderKey(name)
	for _, h := range sensitiveHeaders {
		if h == canonical {
			return true
		}
	}
	return false
}

// Attribute keys that are always masked, whatever their value.
var sensitiveKeys = []string{"password", "secret", "token", "dsn", "database_url"}

var sensitiveValues = []*regexp.Regexp{
	// Bearer credentials copied into messages or error strings.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// Userinfo in Postgres connection URLs, as pgx echoes them in errors.
	regexp.MustCompile(`(?i)postgres(ql)?://[^:/@\s]+:[^@\s]+@`),
	// key=value style DSN passwords.
	regexp.MustCompile(`(?i)password\s*=\s*\S+`),
}

// redactor builds the masq ReplaceAttr applied by every handler New
// creates.
func redactor() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(sensitiveHeaders)+len(sensitiveKeys)+len(sensitiveValues)+1)
	for _, h := range sensitiveHeaders {
		opts = append(opts, masq.WithFieldName(strings.ToLower(h)))
	}
	for _, key := range sensitiveKeys {
		opts = append(opts, masq.WithFieldName(key))
	}
	opts = append(opts, masq.WithFieldPrefix("secret_"))
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
