package editor

import (
	"fmt"
	"time"
)

// statusMessageCapacity is the fixed 80-byte capacity spec.md §3 gives
// the status message.
const statusMessageCapacity = 80

// statusMessageLifetime is how long a message stays visible after Set.
const statusMessageLifetime = 5 * time.Second

// StatusMessage is the message-bar line: a fixed-capacity string plus the
// wall-clock time it was set (spec.md §3 "Status Message").
type StatusMessage struct {
	text string
	at   time.Time
}

// Set formats a message, truncates it to the fixed capacity, and starts
// its 5-second visibility window.
func (s *StatusMessage) Set(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > statusMessageCapacity {
		msg = msg[:statusMessageCapacity]
	}
	s.text = msg
	s.at = time.Now()
}

// Text returns the message if it is still within its visibility window,
// or "" once it has expired.
func (s *StatusMessage) Text() string {
	if s.text == "" || time.Since(s.at) > statusMessageLifetime {
		return ""
	}
	return s.text
}
