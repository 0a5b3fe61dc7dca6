package town

const (
	logMsgUpgradeRequested   = "Building upgrade requested"
	logMsgUpgradeCompleted   = "Building upgrade completed"
	logMsgDowngradeRequested = "Building downgrade requested"
	logMsgDowngradeCompleted = "Building downgrade completed"
)
