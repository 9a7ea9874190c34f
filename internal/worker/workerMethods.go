package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/jobModel"
	"github.com/akolanti/PolicyAPI/internal/metrics"
)

// executeJob runs the full analysis pipeline for one document. The job's
// trace id follows it into the context so every downstream log line carries
// the original request's trace.
func executeJob(currentJob jobModel.Job) {
	start := time.Now()
	status := "completed"
	defer func() {
		metrics.CaptureJobMetrics(status, time.Since(start))
	}()

	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, currentJob.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.DocumentAnalysisTimeout)
	defer cancel()

	log := logger.With("traceId", currentJob.TraceId, "jobId", currentJob.Id, "documentId", currentJob.DocumentId)
	log.Debug("Processing job")

	if err := _analysisService.AnalyzeDocument(ctx, currentJob.DocumentId); err != nil {
		status = "failed"
		log.Error("Document analysis failed", "error", err)
		return
	}
	log.Info("Job complete", "duration", time.Since(start))
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}
