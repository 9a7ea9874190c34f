package adapter

import (
	"fmt"

	"github.com/akolanti/PolicyAPI/internal/api"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
)

// Clients poll progress as a percentage; each status maps to a fixed point on
// the bar rather than a live count.
var progressByStatus = map[docModel.AnalysisStatus]int{
	docModel.StatusPending:   10,
	docModel.StatusAnalyzing: 60,
	docModel.StatusCompleted: 100,
	docModel.StatusFailed:    0,
}

var messageByStatus = map[docModel.AnalysisStatus]string{
	docModel.StatusPending:   "Document queued for analysis",
	docModel.StatusAnalyzing: "Analyzing document clauses",
	docModel.StatusCompleted: "Analysis complete",
	docModel.StatusFailed:    "Analysis failed",
}

func ToIngestResponse(doc docModel.Document) api.IngestResponse {
	return api.IngestResponse{
		Id:          doc.Id,
		Filename:    doc.Filename,
		TotalPages:  doc.TotalPages,
		Status:      string(doc.Status),
		AnalysisURL: fmt.Sprintf("analysis/%s", doc.Id),
	}
}

func ToAnalysisStatusResponse(doc docModel.Document, findingCount int) api.AnalysisStatusResponse {
	res := api.AnalysisStatusResponse{
		Id:           doc.Id,
		Filename:     doc.Filename,
		TotalPages:   doc.TotalPages,
		Status:       string(doc.Status),
		FindingCount: findingCount,
		UploadedAt:   doc.UploadedAt,
	}
	if !doc.CompletedAt.IsZero() {
		completed := doc.CompletedAt
		res.CompletedAt = &completed
	}
	return res
}

func ToFindingsResponse(docId string, findings []docModel.StoredFinding) api.FindingsResponse {
	out := make([]api.FindingResponse, 0, len(findings))
	for _, f := range findings {
		out = append(out, api.FindingResponse{
			Id:             f.Id,
			PageNum:        f.PageNum,
			Coordinates:    f.Coordinates,
			TextContent:    f.TextContent,
			Category:       string(f.Category),
			Severity:       string(f.Severity),
			Summary:        f.Summary,
			Recommendation: f.Recommendation,
			Confidence:     f.Confidence,
		})
	}
	return api.FindingsResponse{
		DocumentId: docId,
		Count:      len(out),
		Findings:   out,
	}
}

func ToFindingChatResponse(finding docModel.StoredFinding, answer string) api.FindingChatResponse {
	return api.FindingChatResponse{
		Answer:    answer,
		FindingId: finding.Id,
		Context: api.FindingChatContext{
			Category:    string(finding.Category),
			Summary:     finding.Summary,
			TextContent: finding.TextContent,
		},
	}
}

func ToProgressResponse(doc docModel.Document) api.ProgressResponse {
	return api.ProgressResponse{
		DocumentId: doc.Id,
		Status:     string(doc.Status),
		Progress:   progressByStatus[doc.Status],
		Message:    messageByStatus[doc.Status],
	}
}

func BadRequest(id string, message string, code int) api.ErrorResponse {
	return api.ErrorResponse{
		Id:      id,
		Code:    code,
		Message: message,
	}
}
