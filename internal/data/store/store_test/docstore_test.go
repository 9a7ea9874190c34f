package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/akolanti/PolicyAPI/internal/config"
	"github.com/akolanti/PolicyAPI/internal/data/redisStore"
	"github.com/akolanti/PolicyAPI/internal/data/store"
	"github.com/akolanti/PolicyAPI/internal/domain/docModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testStore(t *testing.T) *redisStore.Store {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return redisStore.NewTestStore(client)
}

func testCtx() context.Context {
	return context.WithValue(context.Background(), config.TRACE_ID_KEY, "test-trace")
}

func TestRedisDocumentStore_Lifecycle(t *testing.T) {
	docStore := store.TestDocumentStore(testStore(t))
	ctx := testCtx()

	doc := docModel.Document{
		Id:         "doc_abc_123",
		Filename:   "policy.pdf",
		TotalPages: 7,
		Status:     docModel.StatusPending,
		UploadedAt: time.Now(),
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		if err := docStore.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument failed: %v", err)
		}

		retrieved, found := docStore.GetDocument(ctx, doc.Id)
		if !found {
			t.Fatal("Document was saved but not found in Redis")
		}
		if retrieved.Filename != doc.Filename || retrieved.TotalPages != doc.TotalPages {
			t.Errorf("Data mismatch! Got %+v, want %+v", retrieved, doc)
		}
	})

	t.Run("SetStatus Updates Record", func(t *testing.T) {
		completedAt := time.Now()
		if err := docStore.SetStatus(ctx, doc.Id, docModel.StatusCompleted, completedAt); err != nil {
			t.Fatalf("SetStatus failed: %v", err)
		}

		retrieved, _ := docStore.GetDocument(ctx, doc.Id)
		if retrieved.Status != docModel.StatusCompleted {
			t.Errorf("Status got %s, want %s", retrieved.Status, docModel.StatusCompleted)
		}
		if retrieved.CompletedAt.IsZero() {
			t.Error("CompletedAt was not persisted")
		}
	})

	t.Run("SetStatus On Missing Document", func(t *testing.T) {
		if err := docStore.SetStatus(ctx, "ghost-id", docModel.StatusFailed, time.Time{}); err == nil {
			t.Error("Expected error for non-existent document")
		}
	})

	t.Run("Get Non-Existent Document", func(t *testing.T) {
		if _, found := docStore.GetDocument(ctx, "ghost-id"); found {
			t.Error("Expected found=false for non-existent key")
		}
	})
}

func TestRedisFindingStore_SortAndDedup(t *testing.T) {
	findingStore := store.TestFindingStore(testStore(t))
	ctx := testCtx()
	docId := "doc_with_findings"

	saved := []docModel.StoredFinding{
		{Id: "f1", Severity: docModel.SeverityLow, PageNum: 5, Summary: "A copayment applies to specialist visits."},
		{Id: "f2", Severity: docModel.SeverityHigh, PageNum: 9, Summary: "Pre-existing conditions are excluded."},
		// duplicate summary of f2 from an overlapping chunk
		{Id: "f3", Severity: docModel.SeverityMedium, PageNum: 2, Summary: "Pre-existing conditions are excluded."},
	}
	for _, f := range saved {
		if err := findingStore.SaveFinding(ctx, docId, f); err != nil {
			t.Fatalf("SaveFinding failed: %v", err)
		}
	}

	findings, err := findingStore.GetFindings(ctx, docId)
	if err != nil {
		t.Fatalf("GetFindings failed: %v", err)
	}

	if len(findings) != 2 {
		t.Fatalf("Expected duplicate summary to be dropped, got %d findings", len(findings))
	}
	if findings[0].Id != "f2" {
		t.Errorf("Worst severity should sort first, got %s", findings[0].Id)
	}
	if findings[1].Id != "f1" {
		t.Errorf("Expected f1 second, got %s", findings[1].Id)
	}

	count, _ := findingStore.CountFindings(ctx, docId)
	if count != 2 {
		t.Errorf("CountFindings got %d, want 2", count)
	}
	if count, _ := findingStore.CountFindings(ctx, "doc_without_findings"); count != 0 {
		t.Errorf("Empty document should count 0 findings, got %d", count)
	}

	if err := findingStore.DeleteFindings(ctx, docId); err != nil {
		t.Fatalf("DeleteFindings failed: %v", err)
	}
	findings, _ = findingStore.GetFindings(ctx, docId)
	if len(findings) != 0 {
		t.Errorf("Findings still present after delete: %d", len(findings))
	}
}

func TestRedisFindingStore_GetFindingById(t *testing.T) {
	findingStore := store.TestFindingStore(testStore(t))
	ctx := testCtx()
	docId := "doc_for_chat"

	saved := docModel.StoredFinding{
		Id:          "finding-uuid-1",
		DocumentId:  docId,
		Severity:    docModel.SeverityHigh,
		Summary:     "Claims must be filed within 30 days.",
		TextContent: "All claims shall be submitted no later than 30 days after treatment.",
	}
	if err := findingStore.SaveFinding(ctx, docId, saved); err != nil {
		t.Fatalf("SaveFinding failed: %v", err)
	}

	got, found, err := findingStore.GetFinding(ctx, saved.Id)
	if err != nil || !found {
		t.Fatalf("GetFinding failed: found=%v err=%v", found, err)
	}
	if got.Summary != saved.Summary || got.TextContent != saved.TextContent {
		t.Errorf("Finding mismatch: got %+v", got)
	}

	if _, found, _ := findingStore.GetFinding(ctx, "ghost-finding"); found {
		t.Error("Expected found=false for unknown finding id")
	}

	// DeleteFindings must also clear the by-id entries
	if err := findingStore.DeleteFindings(ctx, docId); err != nil {
		t.Fatalf("DeleteFindings failed: %v", err)
	}
	if _, found, _ := findingStore.GetFinding(ctx, saved.Id); found {
		t.Error("By-id entry survived DeleteFindings")
	}
}

func TestRedisCacheStore_Roundtrip(t *testing.T) {
	cacheStore := store.TestCacheStore(testStore(t))
	ctx := testCtx()

	key := "analysis:deadbeef"
	value := []byte(`{"is_concern":true}`)

	if err := cacheStore.Put(ctx, key, value); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, found, err := cacheStore.Get(ctx, key)
	if err != nil || !found {
		t.Fatalf("Get failed: found=%v err=%v", found, err)
	}
	if string(got) != string(value) {
		t.Errorf("Value mismatch: got %s, want %s", got, value)
	}

	if _, found, _ := cacheStore.Get(ctx, "analysis:missing"); found {
		t.Error("Expected miss for unknown key")
	}
}
