package app

import (
	"context"
	"errors"
	"io"
	"testing"

	devserverv1 "devserve/api/proto/devserver/v1"

	"google.golang.org/grpc"
)

type fakeConn struct {
	invoke func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error
}

func (f *fakeConn) Invoke(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
	if f.invoke != nil {
		return f.invoke(ctx, method, args, reply, opts...)
	}
	return nil
}

func (f *fakeConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeConn) Close() error { return nil }

func stubDaemon(t *testing.T, running bool, dial func(context.Context) (devserverv1.DevServerClient, io.Closer, error)) {
	t.Helper()
	resetDaemonDeps()
	daemonIsRunning = func() bool { return running }
	if dial == nil {
		dial = func(context.Context) (devserverv1.DevServerClient, io.Closer, error) {
			return nil, nil, errors.New("dial not stubbed")
		}
	}
	dialDaemonClient = dial
	t.Cleanup(resetDaemonDeps)
}

func stubConn(t *testing.T, invoke func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error) {
	t.Helper()
	stubDaemon(t, true, func(ctx context.Context) (devserverv1.DevServerClient, io.Closer, error) {
		conn := &fakeConn{invoke: invoke}
		return devserverv1.NewDevServerClient(conn), conn, nil
	})
}
