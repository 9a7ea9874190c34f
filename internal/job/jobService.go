package job

import (
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/internal/domain/jobModel"
)

// Service bundles the job queue with the stores the request handlers read
// from, so the handler layer gets one dependency instead of five.
type Service struct {
	JobChannel        chan jobModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	DocumentStore     docModel.DocumentStore
	FindingStore      docModel.FindingStore
}

type ServiceConfig struct {
	JobChannel        chan jobModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	DocumentStore     docModel.DocumentStore
	FindingStore      docModel.FindingStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		DocumentStore:     cfg.DocumentStore,
		FindingStore:      cfg.FindingStore,
	}
}
