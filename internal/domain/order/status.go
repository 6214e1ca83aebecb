package order

type Status string

// Placed persists as "ordered" to stay readable by existing storefront data.
const (
	StatusPlaced    Status = "ordered"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPlaced, StatusPreparing, StatusReady, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted
}

func (s Status) rank() int {
	switch s {
	case StatusPlaced:
		return 0
	case StatusPreparing:
		return 1
	case StatusReady:
		return 2
	case StatusCompleted:
		return 3
	default:
		return -1
	}
}
