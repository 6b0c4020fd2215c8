package setup

// Installation layout. Everything is relative to Config.Root so tests can
// run against a scratch directory.
const (
	// MarkerFile identifies an Arch-based host.
	MarkerFile = "etc/arch-release"

	// OSReleaseFile is the fallback distribution signal.
	OSReleaseFile = "etc/os-release"

	// InstallDir receives the application files and the icon.
	InstallDir = "usr/share/dastore"

	// BinDir is where the entry point symlink goes.
	BinDir = "usr/bin"

	// ApplicationsDir is where the desktop entry goes.
	ApplicationsDir = "usr/share/applications"

	// AppName is the executable and symlink name.
	AppName = "dastore"

	// IconFile is the icon asset inside InstallDir.
	IconFile = "dastore.png"
)

// DefaultDependencies is the fixed list of runtime packages the installer
// provisions: git and base-devel for AUR builds, pacman-contrib for
// checkupdates.
var DefaultDependencies = []string{"git", "base-devel", "pacman-contrib"}
