package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/akolanti/PolicyAPI/internal/adapter"
	"github.com/akolanti/PolicyAPI/internal/adapter/utils"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

// lookupDocument resolves the {id} path param and writes the 404 itself so
// the read handlers stay one-liners.
func lookupDocument(r *http.Request, w http.ResponseWriter) (docModel.Document, bool) {
	idString := utils.GetChiURLParam(r, "id")
	if idString == "" {
		logRH.Warn("Empty document ID")
		WriteErrorResponse(w, http.StatusNotFound, "", "Document not found")
		return docModel.Document{}, false
	}

	doc, found := handlerInstance.service.DocumentStore.GetDocument(r.Context(), idString)
	if !found {
		WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
		return docModel.Document{}, false
	}
	return doc, true
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

// rejectDeadContext answers requests whose context already expired or was
// cancelled. Without an explicit status the client would see an empty 200.
func rejectDeadContext(w http.ResponseWriter, r *http.Request) {
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
	WriteErrorResponse(w, http.StatusBadRequest, "", "Request context cancelled")
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}
