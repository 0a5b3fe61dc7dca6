package notify

// throttleCacheSize bounds the per-team refresh tracker. Far larger
// than any realistic team count.
const throttleCacheSize = 256

const (
	logMsgRefreshQueued    = "Display refresh queued"
	logMsgRefreshThrottled = "Display refresh throttled"
	logMsgQueueFull        = "Display refresh queue full, dropping"
)
