package registry

import "time"

// ServerType distinguishes the two dev servers managed per project.
type ServerType string

const (
	// ServerTypePrimary is the build-tool dev server (vite and friends).
	ServerTypePrimary ServerType = "primary"
	// ServerTypeCatalog is the component-catalog dev server (storybook and friends).
	ServerTypeCatalog ServerType = "catalog"
)

// ServerTypes lists the supervised server types in a stable order.
func ServerTypes() []ServerType {
	return []ServerType{ServerTypePrimary, ServerTypeCatalog}
}

// Status is the lifecycle state of one supervised server instance.
// Stopped and Errored are terminal; a later start installs a fresh
// record under the same key instead of reviving the old one.
type Status string

const (
	StatusStarting Status = "starting"
	StatusRunning  Status = "running"
	StatusStopping Status = "stopping"
	StatusStopped  Status = "stopped"
	StatusErrored  Status = "errored"
)

// ServerKey identifies one supervised server instance.
type ServerKey struct {
	ProjectID string
	Type      ServerType
}

// ServerRecord is one supervised server entry. It is a plain value;
// mutation happens only through Registry operations, which copy.
type ServerRecord struct {
	ProjectID string     `json:"project_id"`
	Type      ServerType `json:"type"`
	Name      string     `json:"name"`
	URL       string     `json:"url"`
	Port      int        `json:"port"`
	Status    Status     `json:"status"`
	Reachable bool       `json:"reachable"`
	LastError string     `json:"last_error,omitempty"`
	StartedAt time.Time  `json:"started_at"`

	// Handle is nil until the launcher has observed readiness.
	Handle *Handle `json:"-"`
}

// Key returns the registry key for the record.
func (r ServerRecord) Key() ServerKey {
	return ServerKey{ProjectID: r.ProjectID, Type: r.Type}
}

// ProjectConfig is the read-only project description supplied by the
// persistence collaborator that owns project storage.
type ProjectConfig struct {
	ID   string
	Name string
	Path string
}
