package aur

const (
	// DefaultHelper is the AUR helper dastore drives by default.
	DefaultHelper = "yay"

	// DefaultRPCURL is the AUR metadata RPC endpoint, used when no helper
	// is installed.
	DefaultRPCURL = "https://aur.archlinux.org"

	// CloneURLFormat builds the git URL of an AUR package repository.
	CloneURLFormat = "https://aur.archlinux.org/%s.git"
)
