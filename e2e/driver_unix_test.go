//go:build e2e && unix

package main

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"
)

// binPath is set by TestMain once the binary is built
var binPath = "reqadmin_e2e"

const maxOutput = 1 << 20

const (
	keyCtrlC = "\x03"
	keySpace = " "
	keyDown  = "j"
	keyQuit  = "q"
	keyHelp  = "?"
	keyAll   = "a"
	keyBlock = "b"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// output keeps the most recent maxOutput bytes written by the app
type output struct {
	mu  sync.Mutex
	buf []byte
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.buf = append(o.buf, p...)
	if over := len(o.buf) - maxOutput; over > 0 {
		o.buf = o.buf[over:]
	}
	return len(p), nil
}

func (o *output) plain() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return ansiRe.ReplaceAllString(string(o.buf), "")
}

// session is one run of the binary inside a pseudo terminal
type session struct {
	t    *testing.T
	api  *fakeAPI
	cmd  *exec.Cmd
	pty  *os.File
	out  *output
	done chan error
}

// startSession runs reqadmin against a fresh fake API with an isolated HOME.
// args are appended after the global flags.
func startSession(t *testing.T, args ...string) *session {
	t.Helper()
	home := t.TempDir()
	api := newFakeAPI(t)

	cmd := exec.Command(binPath, appArgs(home, api, args...)...)
	cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
	)

	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: 40, Cols: 140})
	require.NoError(t, err, "failed to start app in a pty")

	s := &session{t: t, api: api, cmd: cmd, pty: f, out: &output{}, done: make(chan error, 1)}
	go func() { _, _ = io.Copy(s.out, f) }()
	go func() { s.done <- cmd.Wait() }()
	t.Cleanup(s.close)
	return s
}

func (s *session) send(keys string) {
	s.t.Helper()
	_, err := s.pty.Write([]byte(keys))
	require.NoError(s.t, err)
}

func (s *session) toggleRow() { s.send(keySpace) }
func (s *session) down()      { s.send(keyDown) }
func (s *session) quit()      { s.send(keyQuit) }

// see reports whether text shows up in the plain output within timeout
func (s *session) see(text string, timeout time.Duration) bool {
	return s.waitFor(func(out string) bool { return strings.Contains(out, text) }, timeout)
}

// mustSee fails the test with the tail of the output when text never shows up
func (s *session) mustSee(text string) {
	s.t.Helper()
	if !s.see(text, 5*time.Second) {
		s.t.Fatalf("did not see %q\n--- tail ---\n%s", text, s.tail(4096))
	}
}

func (s *session) waitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(s.out.plain()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

func (s *session) tail(n int) string {
	out := s.out.plain()
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return out
}

// waitExit waits for the process to end and returns its exit error.
// exited is false on timeout.
func (s *session) waitExit(timeout time.Duration) (exited bool, err error) {
	select {
	case err := <-s.done:
		s.done <- err
		return true, err
	case <-time.After(timeout):
		return false, nil
	}
}

func (s *session) close() {
	_ = s.pty.Close()
	if exited, _ := s.waitExit(0); !exited && s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
		_, _ = s.waitExit(2 * time.Second)
	}
}
