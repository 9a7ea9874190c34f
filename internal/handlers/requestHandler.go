package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/akolanti/PolicyAPI/internal/adapter"
	"github.com/akolanti/PolicyAPI/internal/adapter/utils"
	"github.com/akolanti/PolicyAPI/internal/analysis"
	"github.com/akolanti/PolicyAPI/internal/api"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id         string
	documentId string
	filename   string
	traceId    string
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// HealthHandler godoc
// @Summary      Service health
// @Description  Reports liveness plus which optional capabilities (reasoning, indexing) are wired.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  api.HealthResponse
// @Router       /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(w, http.StatusOK, healthSnapshot())
}

// PostIngestHandler handles the uploading of PDF, DOCX, RTF or TXT policy documents.
// @Summary      Upload a document for analysis
// @Description  Receives a file via multipart/form-data, extracts its text, and queues an analysis job. The document id is the sha256 of the file bytes, so re-uploading re-analyzes the same document.
// @Tags         Ingestion
// @Accept       multipart/form-data
// @Produce      json
// @Param        document  formData  file  true  "The policy document to analyze"
// @Success      202  {object}  api.IngestResponse "Accepted - analysis queued"
// @Failure      400  {object}  api.ErrorResponse  "Missing file, unsupported type or file too large"
// @Router       /ingest [post]
func PostIngestHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		rejectDeadContext(w, r)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSizeBytes); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("document")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	raw, err := io.ReadAll(fileReader)
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not read file")
		return
	}

	doc, err := handlerInstance.pipeline.IngestDocument(r.Context(), fileMetadata.Filename, raw)
	if err != nil {
		logRH.Warn("Rejected document", "filename", fileMetadata.Filename, "error", err)
		WriteErrorResponse(w, http.StatusBadRequest, "", "Could not process document: "+err.Error())
		return
	}

	CreateNewJob(newJobData{
		id:         utils.GetNewUUID(),
		documentId: doc.Id,
		filename:   doc.Filename,
		traceId:    r.Context().Value(config.TRACE_ID_KEY).(string),
	})
	writeJsonResponse(w, http.StatusAccepted, adapter.ToIngestResponse(doc))
}

// GetAnalysisHandler godoc
// @Summary      Get document analysis status
// @Description  Retrieves the document's metadata, analysis status and finding count.
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.AnalysisStatusResponse
// @Failure      404  {object}  api.ErrorResponse "Document not found"
// @Router       /analysis/{id} [get]
func GetAnalysisHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		rejectDeadContext(w, r)
		return
	}
	doc, found := lookupDocument(r, w)
	if !found {
		return
	}
	count, err := handlerInstance.service.FindingStore.CountFindings(r.Context(), doc.Id)
	if err != nil {
		logRH.Error("Failed to count findings", "documentId", doc.Id, "error", err)
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToAnalysisStatusResponse(doc, count))
}

// GetFindingsHandler godoc
// @Summary      Get document findings
// @Description  Returns the document's findings sorted worst severity first, then by page.
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.FindingsResponse
// @Failure      404  {object}  api.ErrorResponse "Document not found"
// @Router       /findings/{id} [get]
func GetFindingsHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		rejectDeadContext(w, r)
		return
	}
	doc, found := lookupDocument(r, w)
	if !found {
		return
	}
	findings, err := handlerInstance.service.FindingStore.GetFindings(r.Context(), doc.Id)
	if err != nil {
		WriteErrorResponse(w, http.StatusInternalServerError, doc.Id, "Could not read findings")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToFindingsResponse(doc.Id, findings))
}

// GetProgressHandler godoc
// @Summary      Get analysis progress
// @Description  Maps the document's analysis status to a polling-friendly percentage.
// @Tags         Analysis
// @Produce      json
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  api.ProgressResponse
// @Failure      404  {object}  api.ErrorResponse "Document not found"
// @Router       /progress/{id} [get]
func GetProgressHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		rejectDeadContext(w, r)
		return
	}
	doc, found := lookupDocument(r, w)
	if !found {
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToProgressResponse(doc))
}

// PostFindingChatHandler godoc
// @Summary      Ask a question about a finding
// @Description  Contextual chat grounded in one persisted finding. The finding's source text, summary, category, severity and recommendation are handed to the model together with the user's question.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Finding ID"
// @Param        request  body      api.FindingChatRequest  true  "The question to ask"
// @Success      200  {object}  api.FindingChatResponse
// @Failure      400  {object}  api.ErrorResponse "Missing question"
// @Failure      404  {object}  api.ErrorResponse "Finding not found"
// @Failure      500  {object}  api.ErrorResponse "Chat service not available"
// @Router       /findings/{id}/chat [post]
func PostFindingChatHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		rejectDeadContext(w, r)
		return
	}

	findingId := utils.GetChiURLParam(r, "id")
	if findingId == "" {
		WriteErrorResponse(w, http.StatusNotFound, "", "Finding not found")
		return
	}

	var chatReq api.FindingChatRequest
	if err := json.NewDecoder(r.Body).Decode(&chatReq); err != nil || strings.TrimSpace(chatReq.Q) == "" {
		WriteErrorResponse(w, http.StatusBadRequest, findingId, "Missing question")
		return
	}

	answer, finding, err := handlerInstance.pipeline.ChatAboutFinding(r.Context(), findingId, chatReq.Q)
	if err != nil {
		if errors.Is(err, analysis.ErrFindingNotFound) {
			WriteErrorResponse(w, http.StatusNotFound, findingId, "Finding not found")
			return
		}
		logRH.Error("Finding chat failed", "findingId", findingId, "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, findingId, "Chat service not available")
		return
	}
	writeJsonResponse(w, http.StatusOK, adapter.ToFindingChatResponse(finding, answer))
}
