package attribution

// Discard reasons recorded on the drops_discarded metric. Gate denials
// reuse the evaluator's reason labels.
const (
	reasonParseFailed      = "parse_failed"
	reasonUnregisteredUser = "unregistered_user"
	reasonNoTrackedItems   = "no_tracked_items"
)

const (
	logMsgDropReceived   = "Drop received"
	logMsgDropDiscarded  = "Drop discarded"
	logMsgDropAttributed = "Drop attributed"
)
