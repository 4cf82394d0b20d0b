package http

import (
	"net/http"
)

type healthHandler struct{}

func NewHealthHandler() AppHttpHandler {
	return &healthHandler{}
}

// Handle answers GET /healthz while the process is serving.
func (h *healthHandler) Handle(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set(headerContentType, contentTypeText)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("ok"))
	return err
}
