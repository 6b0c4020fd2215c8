package pacman

const (
	// DefaultCommand is the pacman binary.
	DefaultCommand = "pacman"

	// DefaultEscalate is the privilege escalation command used for
	// transactions. pkexec pops a polkit agent dialog instead of needing a
	// terminal for sudo.
	DefaultEscalate = "pkexec"

	// CheckUpdatesCommand is the pacman-contrib helper that lists pending
	// updates without touching the sync databases.
	CheckUpdatesCommand = "checkupdates"

	// LogPath is pacman's transaction log.
	LogPath = "/var/log/pacman.log"

	// ConfPath is the pacman configuration with the repository list.
	ConfPath = "/etc/pacman.conf"
)

// Repository names
const (
	RepoCore     = "core"     // Critical system packages
	RepoExtra    = "extra"    // General application packages
	RepoMultilib = "multilib" // 32-bit compatibility libraries
)
