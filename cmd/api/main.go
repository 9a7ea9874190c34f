// @title           Policy Document Analysis API
// @version         1.0
// @description     This API handles asynchronous insurance policy document analysis
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akolanti/PolicyAPI/internal/analysis"
	"github.com/akolanti/PolicyAPI/internal/analysis/chunker"
	"github.com/akolanti/PolicyAPI/internal/analysis/embedding/googleEmbedding"
	"github.com/akolanti/PolicyAPI/internal/analysis/llm"
	"github.com/akolanti/PolicyAPI/internal/analysis/llm/gemini"
	"github.com/akolanti/PolicyAPI/internal/analysis/llm/groq"
	"github.com/akolanti/PolicyAPI/internal/analysis/vectorDB/qdrantDB"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/data/store"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/internal/domain/jobModel"
	"github.com/akolanti/PolicyAPI/internal/extract"
	"github.com/akolanti/PolicyAPI/internal/handlers"
	"github.com/akolanti/PolicyAPI/internal/indexer"
	"github.com/akolanti/PolicyAPI/internal/job"
	"github.com/akolanti/PolicyAPI/internal/server"
	"github.com/akolanti/PolicyAPI/internal/worker"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobModel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//stores - redis first, in-memory when redis is offline
	var documentStore docModel.DocumentStore
	var findingStore docModel.FindingStore
	var cacheStore docModel.CacheStore

	redisDocs := store.GetRedisDocumentStore(serviceContext)
	redisFindings := store.GetRedisFindingStore(serviceContext)
	redisCache := store.GetRedisCacheStore(serviceContext)

	if redisDocs == nil || redisFindings == nil || redisCache == nil {
		if !config.FALLBACK_REDIS_TO_INTERNALSTORE {
			logger.Error("Redis stores are offline. Shutting down.")
			return
		}
		logger.Error("Redis stores are offline, falling back to in-memory stores")
		documentStore = store.InitInMemoryDocumentStore()
		findingStore = store.InitInMemoryFindingStore()
		cacheStore = store.InitInMemoryCacheStore()
	} else {
		documentStore = redisDocs
		findingStore = redisFindings
		cacheStore = redisCache
	}

	//analysis pipeline pieces
	textChunker, err := chunker.NewChunker()
	if err != nil {
		logger.Error("Could not load tokenizer. Shutting down.", "error", err)
		return
	}
	extractor := extract.NewExtractor()

	//reasoning: Groq is primary, Gemini is the fallback provider
	var llmProvider llm.Provider = groq.NewGroqClient(os.Getenv("GROQ_API_KEY"), config.GroqModelName)
	if llmProvider == nil {
		llmProvider = gemini.NewGeminiClient(serviceContext, os.Getenv("GEMINI_API_KEY"), config.GeminiModelName)
	}

	//indexing is optional: missing qdrant or embedder only disables search
	vectorDB := qdrantDB.NewQdrantIndexer(serviceContext)
	embeddingService := googleEmbedding.NewGoogleEmbedder(serviceContext, config.GoogleEmbeddingModel, os.Getenv("GEMINI_API_KEY"))

	indexQueue := indexer.New(embeddingService, vectorDB)
	indexQueue.Start(serviceContext)
	go func() {
		for err := range indexQueue.Errors() {
			logger.Error("Index task failed", "error", err)
		}
	}()

	logger.Debug("Available capabilities : ", "VectorDB", vectorDB != nil, "EmbeddingService", embeddingService != nil, "LLMProvider", llmProvider != nil)

	analysisService := analysis.NewService(documentStore, findingStore, cacheStore, extractor, textChunker, llmProvider, indexQueue)

	//init job service
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		DocumentStore:     documentStore,
		FindingStore:      findingStore,
	}
	logger.Info("Starting job service")
	service := job.InitJobService(serviceConfig)

	handlers.InitJobHandler(service, analysisService, map[string]bool{
		"vector_index": vectorDB != nil,
		"embeddings":   embeddingService != nil,
	})

	//init worker pool
	worker.InitServices(service, analysisService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
