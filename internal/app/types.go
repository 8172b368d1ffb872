package app

import (
	"time"

	devserverv1 "devserve/api/proto/devserver/v1"
)

// Server mirrors one daemon registry entry.
type Server struct {
	ProjectID string
	Type      string
	Name      string
	URL       string
	Port      int
	Status    string
	Reachable bool
	LastError string
	StartedAt time.Time
	PID       int
}

func serverFromProto(rec *devserverv1.ServerRecord) Server {
	s := Server{
		ProjectID: rec.GetProjectId(),
		Type:      rec.GetType(),
		Name:      rec.GetName(),
		URL:       rec.GetUrl(),
		Port:      int(rec.GetPort()),
		Status:    rec.GetStatus(),
		Reachable: rec.GetReachable(),
		LastError: rec.GetLastError(),
		PID:       int(rec.GetPid()),
	}
	if ts := rec.GetStartedAtUnix(); ts > 0 {
		s.StartedAt = time.Unix(ts, 0)
	}
	return s
}

func serversFromProto(recs []*devserverv1.ServerRecord) []Server {
	out := make([]Server, 0, len(recs))
	for _, rec := range recs {
		out = append(out, serverFromProto(rec))
	}
	return out
}

// Project names the working tree whose dev servers are being managed.
type Project struct {
	ID   string
	Name string
	Path string
}

// Event mirrors one daemon watch notification.
type Event struct {
	Type      string
	ProjectID string
	Servers   []Server
	Reachable bool
	Message   string
	Time      time.Time
}

func eventFromProto(ev *devserverv1.Event) Event {
	return Event{
		Type:      ev.GetType(),
		ProjectID: ev.GetProjectId(),
		Servers:   serversFromProto(ev.GetRecords()),
		Reachable: ev.GetReachable(),
		Message:   ev.GetMessage(),
		Time:      time.Unix(ev.GetTimeUnix(), 0),
	}
}
