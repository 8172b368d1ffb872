package registry

import "sort"

// Registry is an immutable mapping from ServerKey to ServerRecord.
// Every operation returns a new Registry value and leaves the receiver
// untouched, so snapshots handed to asynchronous consumers stay stable
// without locking. At most one record exists per key; Add replaces.
type Registry struct {
	servers map[ServerKey]ServerRecord
}

// New returns an empty registry.
func New() Registry {
	return Registry{servers: map[ServerKey]ServerRecord{}}
}

func (r Registry) clone() Registry {
	next := make(map[ServerKey]ServerRecord, len(r.servers)+1)
	for k, v := range r.servers {
		next[k] = v
	}
	return Registry{servers: next}
}

// Add inserts rec under key, replacing any existing record.
func (r Registry) Add(key ServerKey, rec ServerRecord) Registry {
	next := r.clone()
	next.servers[key] = rec
	return next
}

// Patch is a partial record update. Nil fields keep the current value.
type Patch struct {
	Name      *string
	URL       *string
	Port      *int
	Status    *Status
	Reachable *bool
	LastError *string
}

// Update shallow-merges patch into the record under key. A missing key
// is a no-op returning the receiver unchanged; Update never synthesizes
// a record.
func (r Registry) Update(key ServerKey, patch Patch) Registry {
	rec, ok := r.servers[key]
	if !ok {
		return r
	}
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.URL != nil {
		rec.URL = *patch.URL
	}
	if patch.Port != nil {
		rec.Port = *patch.Port
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.Reachable != nil {
		rec.Reachable = *patch.Reachable
	}
	if patch.LastError != nil {
		rec.LastError = *patch.LastError
	}
	next := r.clone()
	next.servers[key] = rec
	return next
}

// Remove deletes the record under key, if any.
func (r Registry) Remove(key ServerKey) Registry {
	if _, ok := r.servers[key]; !ok {
		return r
	}
	next := r.clone()
	delete(next.servers, key)
	return next
}

// Get returns the record under key.
func (r Registry) Get(key ServerKey) (ServerRecord, bool) {
	rec, ok := r.servers[key]
	return rec, ok
}

// Project returns the records belonging to a project, primary first.
func (r Registry) Project(projectID string) []ServerRecord {
	out := make([]ServerRecord, 0, 2)
	for _, t := range ServerTypes() {
		if rec, ok := r.servers[ServerKey{ProjectID: projectID, Type: t}]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// All returns every record sorted by project then type.
func (r Registry) All() []ServerRecord {
	out := make([]ServerRecord, 0, len(r.servers))
	for _, rec := range r.servers {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProjectID != out[j].ProjectID {
			return out[i].ProjectID < out[j].ProjectID
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// ProjectIDs returns the distinct project ids present, sorted.
func (r Registry) ProjectIDs() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(r.servers))
	for k := range r.servers {
		if _, ok := seen[k.ProjectID]; ok {
			continue
		}
		seen[k.ProjectID] = struct{}{}
		out = append(out, k.ProjectID)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of records.
func (r Registry) Len() int {
	return len(r.servers)
}
