package http

import (
	"net/http"

	"notify-digest/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records what a handler did so the observe middleware can label and log it:
// the status, the service error code on failure and the number of events accepted on success.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError       *svcerrors.ServiceError
	acceptedEvents int
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

// asAppResponseWriter returns nil when w was not wrapped by mwAppResponseWriter.
func asAppResponseWriter(w http.ResponseWriter) *appResponseWriter {
	appWriter, _ := w.(*appResponseWriter)
	return appWriter
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) SetAcceptedEvents(n int) {
	w.acceptedEvents = n
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError == nil {
		return ""
	}
	return w.svcError.Code
}

func (w *appResponseWriter) AcceptedEvents() int {
	return w.acceptedEvents
}

// StatusOrOK is the written status, or 200 when the handler wrote nothing.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
