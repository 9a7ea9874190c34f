package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, analysis keeps running on in-memory stores
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	NoAuthBypass = true //flip for deployments that sit behind gateway auth
	AuthToken    = ""

	//chunking
	ChunkSizeTokens   = 250
	MinChunkChars     = 50
	TokenizerEncoding = "cl100k_base"

	//analysis
	AnalysisCacheKeyPrefix         = "analysis:"
	SpanCacheKeyPrefix             = "blocks:"
	ModelTemperature       float32 = 0.0 //deterministic decoding - identical chunks must analyze identically
	ModelMaxOutputTokens   int32   = 350
	LLMCallTimeout                 = 30 * time.Second
	AnalystPrompt                  = `You are an expert insurance policy analyst. Analyze the following text for potential policyholder concerns.
Please provide your analysis in the following format:

Is Concern: [true/false]
Category: [category]
Severity: [severity]
Summary: [one-sentence summary]
Recommendation: [actionable recommendation]

TEXT TO ANALYZE:
%s`
	FindingChatPrompt = `You are an expert insurance policy analyst. Answer the user's question about this specific finding.

Context:
- Text Content: %s
- Finding: %s
- Category: %s
- Severity: %s
- Recommendation: %s

Question: %s

Provide a helpful, accurate answer based on the finding context above.`

	//llm providers
	GroqBaseURL     = "https://api.groq.com/openai/v1"
	GroqModelName   = "llama-3.1-70b-versatile"
	GeminiModelName = "gemini-2.5-flash-lite-preview-09-2025"

	//embeddings
	GoogleEmbeddingModel                = "gemini-embedding-001"
	EmbeddingOutputDimensionality int32 = 768 //index dimension, vectors are truncated or zero padded to match

	//vectorDB
	VectorCollectionName    = "policy-docs"
	QdrantConnectionTimeout = 30 * time.Second
	QdrantHost              = ""
	QdrantPort              = 6333 //http
	QdrantGrpcPort          = 6334
	QdrantUseTLS            = false //set for https
	QdrantPoolSize          = 1     //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout  = 30 * time.Second

	//worker pool
	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	DocumentAnalysisTimeout         = 10 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//max multipart upload size
	MaxUploadSizeBytes = 32 << 20 //32mb

	//job requests buffer limit
	BufferLimit = 100

	//indexer task queue depth
	IndexQueueLimit = 32

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisDocumentStore = 0
	RedisFindingStore  = 1
	RedisCacheStore    = 2

	//redis timeouts
	RedisDocumentStoreTTL time.Duration = 0 //documents and findings are the system of record, no expiry
	RedisCacheStoreTTL    time.Duration = 0 //cache entries are never invalidated here
)
