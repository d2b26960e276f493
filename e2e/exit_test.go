//go:build e2e && unix

package main

import (
	"testing"
	"time"
)

func TestQuitExitsCleanly(t *testing.T) {
	t.Parallel()
	s := startSession(t)

	s.mustSee("reqadmin")
	s.mustSee("ann@example.com")

	s.quit()
	if exited, err := s.waitExit(1500 * time.Millisecond); exited {
		if err != nil {
			t.Errorf("process exited with error after q: %v", err)
		}
		return
	}

	t.Logf("'q' did not exit within 1.5s, sending Ctrl+C")
	s.send(keyCtrlC)
	if exited, _ := s.waitExit(750 * time.Millisecond); !exited {
		t.Errorf("app did not exit\n--- tail ---\n%s", s.tail(4096))
	}
}
