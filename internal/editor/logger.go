package editor

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// newSessionLogger opens a side file for diagnostics, tagged with a
// per-run id (the same idiom vibetunnel's pkg/session/session.go uses to
// correlate one session's log lines). stdout/stderr belong to the screen
// while raw mode is active, so this is the only place warnings that
// aren't fatal enough for a status-bar message can go.
func newSessionLogger() (*log.Logger, *os.File, error) {
	runID := uuid.NewString()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("editor-%s.log", runID))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open session log: %w", err)
	}
	logger := log.New(f, fmt.Sprintf("[%s] ", runID[:8]), log.LstdFlags)
	return logger, f, nil
}
