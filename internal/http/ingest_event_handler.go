package http

import (
	"net/http"

	"notify-digest/internal/ingestors"

	"github.com/goccy/go-json"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

type ingestEventHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestEventHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestEventHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /events requests.
func (h *ingestEventHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestEvents(r.Context(), contentType(r), r.Body)
	if err != nil {
		return err
	}

	if appWriter := asAppResponseWriter(w); appWriter != nil {
		appWriter.SetAcceptedEvents(result.Accepted)
	}
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(result)
	return nil
}
