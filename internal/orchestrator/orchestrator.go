// Package orchestrator composes port allocation, process launching,
// the server registry and health monitoring into the dev-server
// lifecycle: start, stop, retry, health.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"syscall"
	"time"

	"devserve/internal/config"
	"devserve/internal/health"
	"devserve/internal/launcher"
	"devserve/internal/netutil"
	"devserve/internal/registry"
)

// ErrAlreadyStarting guards against concurrent starts for one project.
var ErrAlreadyStarting = errors.New("project servers are already starting")

// NotFoundError reports an operation addressed to a project with no
// registered servers.
type NotFoundError struct {
	ProjectID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no servers registered for project %q", e.ProjectID)
}

// RetryLimitError reports that the retry ceiling has been reached.
type RetryLimitError struct {
	ProjectID string
	Max       int
}

func (e *RetryLimitError) Error() string {
	return fmt.Sprintf("retry limit of %d reached for project %q", e.Max, e.ProjectID)
}

// Seams for tests, in the style of the daemon client stubs.
var (
	findPort   = netutil.FindAvailablePort
	launchProc = launcher.Launch
	probeURL   = health.Probe
	signalPG   = func(pgid int, sig syscall.Signal) error {
		return syscall.Kill(-pgid, sig)
	}
)

// Orchestrator owns the registry snapshot, per-project health monitors
// and retry counters. Construct one per application session with New;
// there is deliberately no package-level instance.
type Orchestrator struct {
	cfg config.Config

	mu       sync.Mutex
	reg      registry.Registry
	monitors map[string]*health.Monitor
	retries  map[string]int
	starting map[string]struct{}

	events *bus
}

// New builds an orchestrator from the given configuration.
func New(cfg config.Config) *Orchestrator {
	return &Orchestrator{
		cfg:      cfg,
		reg:      registry.New(),
		monitors: make(map[string]*health.Monitor),
		retries:  make(map[string]int),
		starting: make(map[string]struct{}),
		events:   newBus(),
	}
}

// Subscribe registers an event consumer. The returned disposer cancels
// the subscription and closes the channel.
func (o *Orchestrator) Subscribe() (<-chan Event, func()) {
	return o.events.subscribe()
}

// Snapshot returns the current registry value. Being immutable it is
// safe to hold and inspect concurrently with further mutations.
func (o *Orchestrator) Snapshot() registry.Registry {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reg
}

// StartServers allocates ports and launches both server types for the
// project in parallel. A failure on one side marks that record Errored
// and is reported without aborting the sibling. On any success the
// project's health monitor is (re)started.
func (o *Orchestrator) StartServers(ctx context.Context, project registry.ProjectConfig) ([]registry.ServerRecord, error) {
	if project.ID == "" {
		return nil, errors.New("project id is required")
	}

	o.mu.Lock()
	if _, busy := o.starting[project.ID]; busy {
		o.mu.Unlock()
		return nil, ErrAlreadyStarting
	}
	o.starting[project.ID] = struct{}{}
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		delete(o.starting, project.ID)
		o.mu.Unlock()
	}()

	type outcome struct {
		typ registry.ServerType
		rec registry.ServerRecord
		err error
	}

	types := registry.ServerTypes()
	results := make(chan outcome, len(types))
	for _, t := range types {
		go func(t registry.ServerType) {
			rec, err := o.launchOne(ctx, project, t)
			results <- outcome{typ: t, rec: rec, err: err}
		}(t)
	}

	var errs []error
	for range types {
		res := <-results
		key := registry.ServerKey{ProjectID: project.ID, Type: res.typ}
		if res.err != nil {
			o.markErrored(key, res.err)
			o.publishError(project.ID, fmt.Sprintf("%s: %v", res.typ, res.err))
			errs = append(errs, fmt.Errorf("%s: %w", res.typ, res.err))
			continue
		}
		o.mu.Lock()
		o.reg = o.reg.Add(key, res.rec)
		o.mu.Unlock()
	}

	o.mu.Lock()
	if len(errs) == 0 {
		o.retries[project.ID] = 0
	}
	recs := o.reg.Project(project.ID)
	o.mu.Unlock()

	if url := monitorURL(recs); url != "" {
		o.startMonitor(project.ID, url)
	}
	o.publishStatus(project.ID)

	return recs, errors.Join(errs...)
}

// launchOne installs a Starting placeholder, allocates a port and
// launches a single server type.
func (o *Orchestrator) launchOne(ctx context.Context, project registry.ProjectConfig, t registry.ServerType) (registry.ServerRecord, error) {
	var zero registry.ServerRecord

	sc, err := o.cfg.Server(string(t))
	if err != nil {
		return zero, err
	}

	name := fmt.Sprintf("%s-%s", project.Name, t)
	key := registry.ServerKey{ProjectID: project.ID, Type: t}
	o.mu.Lock()
	o.reg = o.reg.Add(key, registry.ServerRecord{
		ProjectID: project.ID,
		Type:      t,
		Name:      name,
		Status:    registry.StatusStarting,
		StartedAt: time.Now(),
	})
	o.mu.Unlock()
	o.publishStatus(project.ID)

	port, err := findPort(sc.BasePort, o.cfg.PortAttempts)
	if err != nil {
		return zero, err
	}

	return launchProc(ctx, launcher.Spec{
		ProjectID:   project.ID,
		Type:        t,
		Name:        name,
		Dir:         project.Path,
		Command:     sc.ExpandCommand(port),
		Port:        port,
		ReadyMarker: sc.ReadyMarker,
		Timeout:     o.cfg.StartupTimeout,
		Env:         sc.Env,
	})
}

// StopServers tears down the project's servers: graceful signal, grace
// period, forced kill. It fails only when the project has no records;
// a hung child never makes stop fail.
func (o *Orchestrator) StopServers(ctx context.Context, projectID string) error {
	o.mu.Lock()
	recs := o.reg.Project(projectID)
	if len(recs) == 0 {
		o.mu.Unlock()
		return &NotFoundError{ProjectID: projectID}
	}
	if m := o.monitors[projectID]; m != nil {
		m.Stop()
		delete(o.monitors, projectID)
	}
	stopping := registry.StatusStopping
	for _, rec := range recs {
		o.reg = o.reg.Update(rec.Key(), registry.Patch{Status: &stopping})
	}
	o.mu.Unlock()
	o.publishStatus(projectID)

	var wg sync.WaitGroup
	for _, rec := range recs {
		wg.Add(1)
		go func(rec registry.ServerRecord) {
			defer wg.Done()
			o.terminate(rec)
		}(rec)
	}
	wg.Wait()

	o.mu.Lock()
	for _, rec := range recs {
		o.reg = o.reg.Remove(rec.Key())
	}
	o.mu.Unlock()
	o.publishStatus(projectID)
	return nil
}

// terminate escalates SIGTERM -> grace period -> SIGKILL against the
// record's process group.
func (o *Orchestrator) terminate(rec registry.ServerRecord) {
	h := rec.Handle
	if h == nil || h.Exited() {
		return
	}
	if err := signalPG(h.PGID, syscall.SIGTERM); err != nil {
		return
	}
	select {
	case <-h.Done():
		return
	case <-time.After(o.cfg.StopGracePeriod):
	}
	_ = signalPG(h.PGID, syscall.SIGKILL)
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		// Reaping is owned by the launcher goroutine; stop reports
		// success regardless.
	}
}

// RetryConnection stops whatever is left of the project and starts it
// again, bounded by the configured retry ceiling. The attempt count is
// tracked here so concurrent callers observe one consistent counter.
func (o *Orchestrator) RetryConnection(ctx context.Context, project registry.ProjectConfig) ([]registry.ServerRecord, int, error) {
	o.mu.Lock()
	if o.retries[project.ID] >= o.cfg.MaxRetries {
		max := o.cfg.MaxRetries
		o.mu.Unlock()
		return nil, max, &RetryLimitError{ProjectID: project.ID, Max: max}
	}
	o.retries[project.ID]++
	attempt := o.retries[project.ID]
	o.mu.Unlock()

	if err := o.StopServers(ctx, project.ID); err != nil {
		var notFound *NotFoundError
		if !errors.As(err, &notFound) {
			return nil, attempt, err
		}
	}

	recs, err := o.StartServers(ctx, project)
	return recs, attempt, err
}

// CheckHealth runs an on-demand reachability probe, outside the
// periodic schedule, and folds the verdict into the registry.
func (o *Orchestrator) CheckHealth(ctx context.Context, projectID string) (bool, error) {
	o.mu.Lock()
	recs := o.reg.Project(projectID)
	o.mu.Unlock()

	url := monitorURL(recs)
	if url == "" {
		return false, &NotFoundError{ProjectID: projectID}
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.ProbeTimeout)
	defer cancel()
	err := probeURL(ctx, url)
	o.setReachable(projectID, err == nil, err)
	return err == nil, nil
}

// Close stops every project and shuts the event bus down.
func (o *Orchestrator) Close(ctx context.Context) error {
	o.mu.Lock()
	ids := o.reg.ProjectIDs()
	o.mu.Unlock()

	var errs []error
	for _, id := range ids {
		if err := o.StopServers(ctx, id); err != nil {
			var notFound *NotFoundError
			if !errors.As(err, &notFound) {
				errs = append(errs, err)
			}
		}
	}
	o.events.close()
	return errors.Join(errs...)
}

// startMonitor replaces any existing monitor for the project.
func (o *Orchestrator) startMonitor(projectID, url string) {
	m := health.NewMonitor(url, o.cfg.HealthInterval, o.cfg.ProbeTimeout, func(reachable bool, err error) {
		o.setReachable(projectID, reachable, err)
	})
	o.mu.Lock()
	if prev := o.monitors[projectID]; prev != nil {
		prev.Stop()
	}
	o.monitors[projectID] = m
	o.mu.Unlock()
	m.Start()
}

// setReachable flips the reachability flag on the project's records.
// Lifecycle status is never touched here; transient network flakiness
// must not masquerade as a state transition.
func (o *Orchestrator) setReachable(projectID string, reachable bool, err error) {
	patch := registry.Patch{Reachable: &reachable}
	if err != nil {
		msg := err.Error()
		patch.LastError = &msg
	}
	o.mu.Lock()
	for _, t := range registry.ServerTypes() {
		o.reg = o.reg.Update(registry.ServerKey{ProjectID: projectID, Type: t}, patch)
	}
	o.mu.Unlock()

	o.publishStatus(projectID)
	if err != nil {
		o.publishError(projectID, err.Error())
	}
}

func (o *Orchestrator) markErrored(key registry.ServerKey, cause error) {
	errored := registry.StatusErrored
	msg := cause.Error()
	o.mu.Lock()
	o.reg = o.reg.Update(key, registry.Patch{Status: &errored, LastError: &msg})
	o.mu.Unlock()
}

func (o *Orchestrator) publishStatus(projectID string) {
	o.mu.Lock()
	recs := o.reg.Project(projectID)
	o.mu.Unlock()

	reachable := len(recs) > 0
	for _, rec := range recs {
		if !rec.Reachable {
			reachable = false
			break
		}
	}
	o.events.publish(Event{
		Type:      EventStatus,
		ProjectID: projectID,
		Records:   recs,
		Reachable: reachable,
		Time:      time.Now(),
	})
}

func (o *Orchestrator) publishError(projectID, message string) {
	o.events.publish(Event{
		Type:      EventError,
		ProjectID: projectID,
		Message:   message,
		Time:      time.Now(),
	})
}

// monitorURL picks the URL to probe for a project: the primary server
// when running, otherwise the first running record.
func monitorURL(recs []registry.ServerRecord) string {
	for _, rec := range recs {
		if rec.Status == registry.StatusRunning && rec.URL != "" {
			return rec.URL
		}
	}
	return ""
}
