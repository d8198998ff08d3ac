package dto

import (
	"context"
	"errors"
	"net/http"

	"github.com/jsamuelsen11/cratedocs-web/internal/domain"
	"github.com/jsamuelsen11/cratedocs-web/internal/domain/about"
)

const (
	titleNotFound = "The requested resource does not exist"
	titleInternal = "Internal server error"
	msgInternal   = "Something went wrong while handling your request. Please try again later."
	titleTimeout  = "The request timed out"
	msgTimeout    = "The server took too long to respond. Please try again later."
)

// ErrorPage is the view model of the HTML error page. Internal error details
// never reach it; they are logged by the application layer instead.
type ErrorPage struct {
	Status    int
	Title     string
	Message   string
	SourceURL string
}

// NewErrorPage builds the error page for err, choosing the status from the
// domain error it wraps.
func NewErrorPage(err error) ErrorPage {
	status := domainErrorToStatus(err)

	var nf *about.NotFoundError
	if errors.As(err, &nf) {
		return ErrorPage{
			Status:    status,
			Title:     nf.Title,
			Message:   nf.Message,
			SourceURL: nf.SourceURL,
		}
	}

	switch status {
	case http.StatusNotFound:
		return ErrorPage{Status: status, Title: titleNotFound}
	case http.StatusGatewayTimeout:
		return ErrorPage{Status: status, Title: titleTimeout, Message: msgTimeout}
	default:
		return ErrorPage{Status: status, Title: titleInternal, Message: msgInternal}
	}
}

// domainErrorToStatus maps domain sentinel errors to HTTP status codes.
// A bare deadline error comes from the request timeout; one wrapped in
// domain.ErrInternal is a storage failure and stays a 500.
func domainErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInternal):
		return http.StatusInternalServerError
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
