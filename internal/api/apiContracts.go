package api

import "time"

type IngestResponse struct {
	Id          string `json:"id" example:"9f86d081884c7d659a2feaa0c55ad015"`
	Filename    string `json:"filename" example:"policy.pdf"`
	TotalPages  int    `json:"total_pages" example:"12"`
	Status      string `json:"analysis_status" example:"pending"`
	AnalysisURL string `json:"analysis_url" example:"analysis/9f86d081884c7d659a2feaa0c55ad015"`
}

type AnalysisStatusResponse struct {
	Id           string     `json:"id"`
	Filename     string     `json:"filename" example:"policy.pdf"`
	TotalPages   int        `json:"total_pages" example:"12"`
	Status       string     `json:"analysis_status" example:"completed"`
	FindingCount int        `json:"finding_count" example:"4"`
	UploadedAt   time.Time  `json:"uploaded_at"`
	CompletedAt  *time.Time `json:"analysis_completed_at,omitempty"`
}

type FindingResponse struct {
	Id             string       `json:"id"`
	PageNum        int          `json:"page_num" example:"3"`
	Coordinates    [][4]float64 `json:"coordinates"`
	TextContent    string       `json:"text_content"`
	Category       string       `json:"category" example:"EXCLUSION"`
	Severity       string       `json:"severity" example:"HIGH"`
	Summary        string       `json:"summary"`
	Recommendation string       `json:"recommendation"`
	Confidence     float64      `json:"confidence_score" example:"0.9"`
}

type FindingsResponse struct {
	DocumentId string            `json:"document_id"`
	Count      int               `json:"count" example:"4"`
	Findings   []FindingResponse `json:"findings"`
}

type ProgressResponse struct {
	DocumentId string `json:"document_id"`
	Status     string `json:"analysis_status" example:"analyzing"`
	Progress   int    `json:"progress" example:"60"`
	Message    string `json:"message" example:"Analyzing document clauses"`
}

type FindingChatRequest struct {
	Q string `json:"q" example:"Does this exclusion apply to emergency care?"`
}

type FindingChatContext struct {
	Category    string `json:"category" example:"EXCLUSION"`
	Summary     string `json:"summary"`
	TextContent string `json:"text_content"`
}

type FindingChatResponse struct {
	Answer    string             `json:"answer"`
	FindingId string             `json:"finding_id"`
	Context   FindingChatContext `json:"context"`
}

type HealthResponse struct {
	Status       string          `json:"status" example:"ok"`
	Capabilities map[string]bool `json:"capabilities"`
}

type ErrorResponse struct {
	Id      string `json:"id,omitempty"`
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Document not found"`
}
