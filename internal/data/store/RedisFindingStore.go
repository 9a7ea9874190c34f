package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/data/redisStore"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/akolanti/PolicyAPI/pkg/logger_i"
)

// RedisFindingStore keeps one list per document, one JSON finding per entry.
// Appends are cheap during analysis; ordering and dedup happen on read.
// Each finding is also written under its own id so the chat endpoint can
// resolve a finding without knowing its document.
type RedisFindingStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisFindingStore(ctx context.Context) *RedisFindingStore {
	base := redisStore.GetRedisStore(ctx, config.RedisFindingStore)
	if base == nil {
		return nil
	}
	return &RedisFindingStore{
		store:  base,
		logger: logger_i.NewLogger("FindingStore"),
	}
}

func (s *RedisFindingStore) SaveFinding(ctx context.Context, docId string, finding docModel.StoredFinding) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", docId)
	data, err := json.Marshal(finding)
	if err != nil {
		return err
	}

	if err = s.store.ListPush(ctx, docId, data); err != nil {
		return err
	}
	if err = s.store.Set(ctx, finding.Id, data, config.RedisDocumentStoreTTL); err != nil {
		return err
	}
	log.Debug("Saved finding to Redis", "findingId", finding.Id)
	return nil
}

func (s *RedisFindingStore) GetFinding(ctx context.Context, findingId string) (docModel.StoredFinding, bool, error) {
	raw, err := s.store.Get(ctx, findingId)
	if err != nil {
		if s.store.IsNil(err) {
			return docModel.StoredFinding{}, false, nil
		}
		return docModel.StoredFinding{}, false, err
	}

	var finding docModel.StoredFinding
	if err := json.Unmarshal([]byte(raw), &finding); err != nil {
		s.logger.Error("Corrupt finding entry", "findingId", findingId, "error", err)
		return docModel.StoredFinding{}, false, err
	}
	return finding, true, nil
}

func (s *RedisFindingStore) GetFindings(ctx context.Context, docId string) ([]docModel.StoredFinding, error) {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "documentId", docId)

	raw, err := s.store.ListGetAll(ctx, docId)
	if err != nil {
		log.Error("Failed to read findings", "error", err)
		return nil, err
	}

	findings := make([]docModel.StoredFinding, 0, len(raw))
	for _, entry := range raw {
		var finding docModel.StoredFinding
		if err := json.Unmarshal([]byte(entry), &finding); err != nil {
			log.Error("Skipping corrupt finding entry", "error", err)
			continue
		}
		findings = append(findings, finding)
	}

	return SortFindings(DedupFindings(findings)), nil
}

func (s *RedisFindingStore) CountFindings(ctx context.Context, docId string) (int, error) {
	// LLen settles the common empty case without touching any payload. A
	// non-empty list still needs the full read because dedup collapses entries.
	n, err := s.store.ListLen(ctx, docId)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}

	findings, err := s.GetFindings(ctx, docId)
	if err != nil {
		return 0, err
	}
	return len(findings), nil
}

func (s *RedisFindingStore) DeleteFindings(ctx context.Context, docId string) error {
	raw, err := s.store.ListGetAll(ctx, docId)
	if err != nil {
		return err
	}

	keys := []string{docId}
	for _, entry := range raw {
		var finding docModel.StoredFinding
		if err := json.Unmarshal([]byte(entry), &finding); err != nil {
			continue
		}
		keys = append(keys, finding.Id)
	}
	return s.store.Del(ctx, keys...)
}

// DedupFindings drops later findings repeating an earlier summary. Adjacent
// chunks often overlap the same clause; one report per concern is enough.
func DedupFindings(findings []docModel.StoredFinding) []docModel.StoredFinding {
	seen := make(map[string]bool, len(findings))
	out := findings[:0]
	for _, f := range findings {
		if seen[f.Summary] {
			continue
		}
		seen[f.Summary] = true
		out = append(out, f)
	}
	return out
}

// SortFindings orders worst severity first, then by page number.
func SortFindings(findings []docModel.StoredFinding) []docModel.StoredFinding {
	sort.SliceStable(findings, func(i, j int) bool {
		ri, rj := docModel.SeverityRank(findings[i].Severity), docModel.SeverityRank(findings[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return findings[i].PageNum < findings[j].PageNum
	})
	return findings
}

func TestFindingStore(store *redisStore.Store) *RedisFindingStore {
	return &RedisFindingStore{
		store:  store,
		logger: logger_i.NewLogger("test finding store"),
	}
}
