package jobModel

import "time"

// Job is one unit of worker work: run the analysis pipeline over a single
// ingested document. Jobs are not persisted; the document's analysis status
// is the externally visible record of progress.
type Job struct {
	Id          string    `json:"id"`
	TraceId     string    `json:"trace_id"`
	DocumentId  string    `json:"document_id"`
	Filename    string    `json:"filename"`
	CreatedTime time.Time `json:"created_time"`
}
