package analysis

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/akolanti/PolicyAPI/internal/analysis/llm"
	"github.com/akolanti/PolicyAPI/internal/analysis/parser"
	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/internal/metrics"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

// ChunkAnalyzer drives one chunk through cache lookup, model call, parsing and
// scoring. A nil result means the chunk produced nothing - either no concern
// or a local failure - and never aborts the surrounding document.
type ChunkAnalyzer struct {
	provider llm.Provider
	cache    docModel.CacheStore
	logger   *logger_i.Logger
}

func NewChunkAnalyzer(provider llm.Provider, cache docModel.CacheStore) *ChunkAnalyzer {
	return &ChunkAnalyzer{
		provider: provider,
		cache:    cache,
		logger:   logger_i.NewLogger("ChunkAnalyzer"),
	}
}

// CacheKey is content addressed: identical chunk text anywhere, in any
// document, reuses the prior analysis.
func CacheKey(chunkText string) string {
	sum := sha1.Sum([]byte(strings.TrimSpace(chunkText)))
	return config.AnalysisCacheKeyPrefix + hex.EncodeToString(sum[:])
}

func (a *ChunkAnalyzer) Analyze(ctx context.Context, chunk docModel.Chunk) *docModel.Finding {
	log := a.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "chunkId", chunk.Id)

	key := CacheKey(chunk.Text)
	if cached, ok := a.lookupCache(ctx, key, log); ok {
		metrics.IncrementCacheHits()
		return cached
	}

	callCtx, cancel := context.WithTimeout(ctx, config.LLMCallTimeout)
	defer cancel()

	start := time.Now()
	raw, err := a.provider.Complete(callCtx, fmt.Sprintf(config.AnalystPrompt, chunk.Text))
	metrics.CaptureExecutionMetrics("llm_analysis", time.Since(start))
	if err != nil {
		log.Error("LLM analysis call failed", "error", err)
		return nil
	}

	finding, err := parser.Parse(raw)
	if err != nil {
		log.Error("Could not parse model response", "error", err)
		return nil
	}

	if !finding.IsConcern {
		return nil
	}

	finding.Confidence = ScoreConfidence(finding)
	a.saveToCache(ctx, key, finding, log)
	metrics.IncrementConcernsFound()
	return &finding
}

// lookupCache is best effort: any store error is a miss.
func (a *ChunkAnalyzer) lookupCache(ctx context.Context, key string, log *logger_i.Logger) (*docModel.Finding, bool) {
	value, found, err := a.cache.Get(ctx, key)
	if err != nil {
		log.Warn("Cache lookup failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var finding docModel.Finding
	if err := json.Unmarshal(value, &finding); err != nil {
		log.Warn("Discarding unreadable cache entry", "error", err)
		return nil, false
	}
	log.Debug("Analysis cache hit")
	return &finding, true
}

// Only concerns are cached. Non-concern chunks stay re-evaluated until a
// concern is found, matching the write path.
func (a *ChunkAnalyzer) saveToCache(ctx context.Context, key string, finding docModel.Finding, log *logger_i.Logger) {
	data, err := json.Marshal(finding)
	if err != nil {
		log.Warn("Cache serialization failed", "error", err)
		return
	}
	if err := a.cache.Put(ctx, key, data); err != nil {
		log.Warn("Cache save failed", "error", err)
	}
}
