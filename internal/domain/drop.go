package domain

// SourceKind classifies where a drop came from.
type SourceKind string

const (
	// SourceMonster is a kill of a bestiary monster.
	SourceMonster SourceKind = "monster"
	// SourceRaid is a raid completion.
	SourceRaid SourceKind = "raid"
	// SourceUnknown is anything the rule tables do not recognize.
	SourceUnknown SourceKind = "unknown"
)

// ItemQuantity is one looted item line. Order within a drop matters for
// display, so DropEvent keeps a slice rather than a map.
type ItemQuantity struct {
	Name     string
	Quantity int64
}

// DropEvent is a parsed loot notification ready for attribution.
type DropEvent struct {
	Username string
	Items    []ItemQuantity
	Source   string
}

// MaxUsernameLength is the longest username accepted from a loot
// notification, matching the game's own limit.
const MaxUsernameLength = 15
