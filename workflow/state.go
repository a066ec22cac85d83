package workflow

// State is the modal workflow currently open.
type State uint8

const (
	Idle State = iota
	AwaitingName
	AwaitingGrant
	AwaitingTransfer
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingName:
		return "registering-name"
	case AwaitingGrant:
		return "granting"
	case AwaitingTransfer:
		return "transferring"
	default:
		return "unknown"
	}
}

// modal reports whether s is one of the modal workflows.
func (s State) modal() bool {
	return s == AwaitingName || s == AwaitingGrant || s == AwaitingTransfer
}
