package config

const (
	// Configuration file paths
	ConfigPathTown      = "configs/clanwars.toml"
	ConfigPathResources = "configs/resources.toml"
	ConfigPathBestiary  = "configs/bestiary.tsv"
	ConfigPathSlayer    = "configs/slayer.tsv"
)

const (
	// DefaultRefreshThrottle is the minimum interval between display
	// refreshes for a single team.
	DefaultRefreshThrottle = "10s"

	DefaultRefreshWorkers    = 2
	DefaultRefreshQueueDepth = 64

	// DefaultEventLogRetentionDays is how long audit rows are kept
	// before the nightly cleanup job removes them.
	DefaultEventLogRetentionDays = 90
)
