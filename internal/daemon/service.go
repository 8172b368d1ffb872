package daemon

import (
	"context"
	"errors"

	devserverv1 "devserve/api/proto/devserver/v1"
	"devserve/internal/orchestrator"
	"devserve/internal/registry"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// service implements the DevServer gRPC service backed by the orchestrator.
type service struct {
	devserverv1.UnimplementedDevServerServer

	orc *orchestrator.Orchestrator
}

func newService(orc *orchestrator.Orchestrator) *service {
	return &service{orc: orc}
}

func (s *service) Ping(ctx context.Context, _ *devserverv1.PingRequest) (*devserverv1.PingResponse, error) {
	return &devserverv1.PingResponse{Ok: "pong"}, nil
}

func (s *service) Start(ctx context.Context, req *devserverv1.StartRequest) (*devserverv1.StartResponse, error) {
	project, err := projectFromRequest(req.GetProjectId(), req.GetName(), req.GetPath())
	if err != nil {
		return nil, err
	}
	recs, err := s.orc.StartServers(ctx, project)
	if err != nil {
		return nil, startError(err)
	}
	return &devserverv1.StartResponse{Records: recordsToProto(recs)}, nil
}

func (s *service) Stop(ctx context.Context, req *devserverv1.StopRequest) (*devserverv1.StopResponse, error) {
	if req.GetProjectId() == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	if err := s.orc.StopServers(ctx, req.GetProjectId()); err != nil {
		var nf *orchestrator.NotFoundError
		if errors.As(err, &nf) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "stop failed: %v", err)
	}
	return &devserverv1.StopResponse{}, nil
}

func (s *service) Retry(ctx context.Context, req *devserverv1.RetryRequest) (*devserverv1.RetryResponse, error) {
	project, err := projectFromRequest(req.GetProjectId(), req.GetName(), req.GetPath())
	if err != nil {
		return nil, err
	}
	recs, attempt, err := s.orc.RetryConnection(ctx, project)
	if err != nil {
		var limit *orchestrator.RetryLimitError
		if errors.As(err, &limit) {
			return nil, status.Errorf(codes.ResourceExhausted, "%v", err)
		}
		return nil, startError(err)
	}
	return &devserverv1.RetryResponse{
		Records: recordsToProto(recs),
		Attempt: int32(attempt),
	}, nil
}

func (s *service) CheckHealth(ctx context.Context, req *devserverv1.CheckHealthRequest) (*devserverv1.CheckHealthResponse, error) {
	if req.GetProjectId() == "" {
		return nil, status.Error(codes.InvalidArgument, "project_id is required")
	}
	reachable, err := s.orc.CheckHealth(ctx, req.GetProjectId())
	if err != nil {
		var nf *orchestrator.NotFoundError
		if errors.As(err, &nf) {
			return nil, status.Errorf(codes.NotFound, "%v", err)
		}
		return nil, status.Errorf(codes.Internal, "health check failed: %v", err)
	}
	return &devserverv1.CheckHealthResponse{Reachable: reachable}, nil
}

func (s *service) List(ctx context.Context, req *devserverv1.ListRequest) (*devserverv1.ListResponse, error) {
	snap := s.orc.Snapshot()
	var recs []registry.ServerRecord
	if id := req.GetProjectId(); id != "" {
		recs = snap.Project(id)
	} else {
		recs = snap.All()
	}
	return &devserverv1.ListResponse{Records: recordsToProto(recs)}, nil
}

func (s *service) Watch(req *devserverv1.WatchRequest, stream devserverv1.DevServer_WatchServer) error {
	events, dispose := s.orc.Subscribe()
	defer dispose()

	filter := req.GetProjectId()
	for {
		select {
		case <-stream.Context().Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if filter != "" && ev.ProjectID != filter {
				continue
			}
			if err := stream.Send(eventToProto(ev)); err != nil {
				return err
			}
		}
	}
}

func projectFromRequest(id, name, path string) (registry.ProjectConfig, error) {
	if id == "" {
		return registry.ProjectConfig{}, status.Error(codes.InvalidArgument, "project_id is required")
	}
	if path == "" {
		return registry.ProjectConfig{}, status.Error(codes.InvalidArgument, "path is required")
	}
	if name == "" {
		name = id
	}
	return registry.ProjectConfig{ID: id, Name: name, Path: path}, nil
}

func startError(err error) error {
	if errors.Is(err, orchestrator.ErrAlreadyStarting) {
		return status.Errorf(codes.Aborted, "%v", err)
	}
	return status.Errorf(codes.Internal, "start failed: %v", err)
}

func recordsToProto(recs []registry.ServerRecord) []*devserverv1.ServerRecord {
	out := make([]*devserverv1.ServerRecord, 0, len(recs))
	for i := range recs {
		out = append(out, recordToProto(recs[i]))
	}
	return out
}

func recordToProto(rec registry.ServerRecord) *devserverv1.ServerRecord {
	pb := &devserverv1.ServerRecord{
		ProjectId: rec.ProjectID,
		Type:      string(rec.Type),
		Name:      rec.Name,
		Url:       rec.URL,
		Port:      int32(rec.Port),
		Status:    string(rec.Status),
		Reachable: rec.Reachable,
		LastError: rec.LastError,
	}
	if !rec.StartedAt.IsZero() {
		pb.StartedAtUnix = rec.StartedAt.Unix()
	}
	if rec.Handle != nil {
		pb.Pid = int32(rec.Handle.PID)
	}
	return pb
}

func eventToProto(ev orchestrator.Event) *devserverv1.Event {
	return &devserverv1.Event{
		Type:      string(ev.Type),
		ProjectId: ev.ProjectID,
		Records:   recordsToProto(ev.Records),
		Reachable: ev.Reachable,
		Message:   ev.Message,
		TimeUnix:  ev.Time.Unix(),
	}
}
