package tui

import (
	"io"
	"net"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

type fakeContext struct {
	ssh.Context
	values map[any]any
}

func (c *fakeContext) Value(key any) any       { return c.values[key] }
func (c *fakeContext) SetValue(key, value any) { c.values[key] = value }

type fakeSession struct {
	ssh.Session
	user string
	ctx  *fakeContext
}

func newFakeSession(user string) *fakeSession {
	return &fakeSession{user: user, ctx: &fakeContext{values: map[any]any{}}}
}

func (s *fakeSession) Context() ssh.Context { return s.ctx }
func (s *fakeSession) User() string         { return s.user }

func (s *fakeSession) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}
}

func (s *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Window: ssh.Window{Width: 80, Height: 24}}, nil, true
}

func testServer(store *storage.Store) *SSHServer {
	return &SSHServer{
		config: DefaultSSHServerConfig(),
		store:  store,
		logger: log.New(io.Discard),
	}
}

func TestSessionMiddlewareRecordsDroppedRun(t *testing.T) {
	store := openStore(t)
	srv := testServer(store)

	handler := srv.sessionMiddleware(func(sess ssh.Session) {
		model, _ := srv.teaHandler(sess)
		m, ok := model.(Model)
		require.True(t, ok)

		m, _ = send(t, m, spaceKey)
		tick(t, m, 5)
	})
	handler(newFakeSession("grace"))

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "grace", runs[0].Player)
	assert.Equal(t, storage.OutcomeAbandoned, runs[0].Outcome)
	assert.Equal(t, uint64(5), runs[0].Ticks)
}

func TestSessionMiddlewareWithoutRun(t *testing.T) {
	store := openStore(t)
	srv := testServer(store)

	handler := srv.sessionMiddleware(func(sess ssh.Session) {
		_, _ = srv.teaHandler(sess)
	})
	handler(newFakeSession("grace"))

	runs, err := store.TopRuns(10)
	require.NoError(t, err)
	assert.Empty(t, runs, "nothing was played")
}

func TestSSHServerShutdownClosesStore(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	require.NoError(t, err)
	require.NotNil(t, srv.store)
	assert.FileExists(t, cfg.HostKeyPath)

	require.NoError(t, srv.Shutdown())
	assert.Nil(t, srv.store)
}
