package scene

import (
	"log/slog"
	"strings"
)

// errorFrames is how many frames an error stays on screen.
const errorFrames = 300

// Messages is the Status the host renders: the latest info lines and the
// latest error, which fades after a while. Everything posted is logged.
type Messages struct {
	log  *slog.Logger
	info []string
	err  string
	ttl  int
}

func NewMessages(log *slog.Logger) *Messages { return &Messages{log: log} }

func (m *Messages) PostInfo(msg string) {
	m.info = m.info[:0]
	for _, line := range strings.Split(msg, "\n") {
		m.info = append(m.info, strings.TrimSpace(line))
	}
	m.log.Info(msg)
}

func (m *Messages) PostError(msg string) {
	m.err, m.ttl = "Error: "+msg, errorFrames
	m.log.Warn(msg)
}

// Tick ages the current error by one frame.
func (m *Messages) Tick() {
	if m.ttl > 0 {
		m.ttl--
		if m.ttl == 0 {
			m.err = ""
		}
	}
}

func (m *Messages) Info() []string { return m.info }
func (m *Messages) Error() string  { return m.err }
