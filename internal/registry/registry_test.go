package registry

import (
	"testing"
	"time"
)

func rec(project string, t ServerType, port int) ServerRecord {
	return ServerRecord{
		ProjectID: project,
		Type:      t,
		Name:      project + "-" + string(t),
		URL:       "http://localhost:3000",
		Port:      port,
		Status:    StatusRunning,
		StartedAt: time.Now(),
	}
}

func TestRegistryAddAndGet(t *testing.T) {
	r := New()
	key := ServerKey{ProjectID: "p1", Type: ServerTypePrimary}

	r2 := r.Add(key, rec("p1", ServerTypePrimary, 5173))
	if r.Len() != 0 {
		t.Fatalf("original registry mutated: len=%d", r.Len())
	}
	got, ok := r2.Get(key)
	if !ok || got.Port != 5173 {
		t.Fatalf("unexpected record: %+v ok=%t", got, ok)
	}
}

func TestRegistryAddReplacesExistingKey(t *testing.T) {
	key := ServerKey{ProjectID: "p1", Type: ServerTypePrimary}
	r := New().Add(key, rec("p1", ServerTypePrimary, 5173))
	r = r.Add(key, rec("p1", ServerTypePrimary, 5174))

	if r.Len() != 1 {
		t.Fatalf("expected single record per key, got %d", r.Len())
	}
	got, _ := r.Get(key)
	if got.Port != 5174 {
		t.Fatalf("expected replacement record, got port %d", got.Port)
	}
}

func TestRegistrySnapshotsAreImmutable(t *testing.T) {
	key := ServerKey{ProjectID: "p1", Type: ServerTypePrimary}
	before := New().Add(key, rec("p1", ServerTypePrimary, 5173))

	stopped := StatusStopped
	after := before.Update(key, Patch{Status: &stopped})

	got, _ := before.Get(key)
	if got.Status != StatusRunning {
		t.Fatalf("earlier snapshot observed later update: %s", got.Status)
	}
	got, _ = after.Get(key)
	if got.Status != StatusStopped {
		t.Fatalf("update not applied to new snapshot: %s", got.Status)
	}
}

func TestRegistryUpdateMergesPartialFields(t *testing.T) {
	key := ServerKey{ProjectID: "p1", Type: ServerTypeCatalog}
	r := New().Add(key, rec("p1", ServerTypeCatalog, 6006))

	reachable := true
	r = r.Update(key, Patch{Reachable: &reachable})

	got, _ := r.Get(key)
	if !got.Reachable {
		t.Fatal("reachable flag not applied")
	}
	if got.Port != 6006 || got.Status != StatusRunning {
		t.Fatalf("unspecified fields not preserved: %+v", got)
	}
}

func TestRegistryUpdateMissingKeyIsNoop(t *testing.T) {
	r := New().Add(ServerKey{ProjectID: "p1", Type: ServerTypePrimary}, rec("p1", ServerTypePrimary, 5173))

	errored := StatusErrored
	r2 := r.Update(ServerKey{ProjectID: "ghost", Type: ServerTypePrimary}, Patch{Status: &errored})

	if r2.Len() != 1 {
		t.Fatalf("update on absent key synthesized a record: len=%d", r2.Len())
	}
}

func TestRegistryRemove(t *testing.T) {
	key := ServerKey{ProjectID: "p1", Type: ServerTypePrimary}
	r := New().Add(key, rec("p1", ServerTypePrimary, 5173))

	r2 := r.Remove(key)
	if _, ok := r2.Get(key); ok {
		t.Fatal("record still present after remove")
	}
	if _, ok := r.Get(key); !ok {
		t.Fatal("remove mutated the earlier snapshot")
	}
	if got := r2.Remove(key); got.Len() != 0 {
		t.Fatalf("removing absent key changed registry: len=%d", got.Len())
	}
}

func TestRegistryProjectOrdering(t *testing.T) {
	r := New().
		Add(ServerKey{ProjectID: "p1", Type: ServerTypeCatalog}, rec("p1", ServerTypeCatalog, 6006)).
		Add(ServerKey{ProjectID: "p1", Type: ServerTypePrimary}, rec("p1", ServerTypePrimary, 5173)).
		Add(ServerKey{ProjectID: "p2", Type: ServerTypePrimary}, rec("p2", ServerTypePrimary, 5174))

	recs := r.Project("p1")
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Type != ServerTypePrimary || recs[1].Type != ServerTypeCatalog {
		t.Fatalf("unexpected ordering: %s, %s", recs[0].Type, recs[1].Type)
	}

	ids := r.ProjectIDs()
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p2" {
		t.Fatalf("unexpected project ids: %v", ids)
	}
}
