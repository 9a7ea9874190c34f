package handlers

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/PolicyAPI/internal/analysis"
	"github.com/akolanti/PolicyAPI/internal/api"
	"github.com/akolanti/PolicyAPI/internal/domain/jobModel"
	"github.com/akolanti/PolicyAPI/internal/job"
	"github.com/akolanti/PolicyAPI/internal/metrics"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service      *job.Service
	pipeline     analysis.Service
	capabilities map[string]bool
}

// InitJobHandler wires the singleton. capabilities is what /health reports
// about optional collaborators (vector index, embeddings); reasoning is read
// live off the pipeline.
func InitJobHandler(jobService *job.Service, pipeline analysis.Service, capabilities map[string]bool) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService, pipeline: pipeline, capabilities: capabilities}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})

}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new job")
	handlerInstance.pushToJobChannel(newJob)
}

func healthSnapshot() api.HealthResponse {
	capabilities := map[string]bool{
		"reasoning": handlerInstance != nil && handlerInstance.pipeline.ReasoningAvailable(),
	}
	if handlerInstance != nil {
		for name, available := range handlerInstance.capabilities {
			capabilities[name] = available
		}
	}
	return api.HealthResponse{
		Status:       "ok",
		Capabilities: capabilities,
	}
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{
		Id:          newJob.id,
		TraceId:     newJob.traceId,
		DocumentId:  newJob.documentId,
		Filename:    newJob.filename,
		CreatedTime: time.Now(),
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//every analysis job fans out per-chunk LLM calls and can run for minutes,
	//so signal the dispatcher each time instead of every N requests
	//idle workers retire themselves, so the pool shrinks back on its own
	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1)
	logJH.Debug("Request count ", accurateCount)
	metrics.StartDispatcherSignalCount() //metrics
	h.service.DispatcherChannel <- true
}
