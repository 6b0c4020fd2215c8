package pacman

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/daradege/dastore/pkg/task"
)

// Config configures the pacman manager.
type Config struct {
	Command   string        // pacman binary (default: pacman)
	Escalate  string        // privilege escalation command (default: pkexec)
	NoConfirm bool          // pass --noconfirm to transactions
	Timeout   time.Duration // timeout for query commands
	LogPath   string        // pacman.log location
	ConfPath  string        // pacman.conf location
	Logger    zerolog.Logger
}

// Manager drives pacman for queries and transactions.
type Manager struct {
	config *Config
	client *Client
	runner *task.Runner
	logger zerolog.Logger
}
