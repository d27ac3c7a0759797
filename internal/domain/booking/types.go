package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCheckedIn, StatusCompleted:
		return true
	default:
		return false
	}
}

// Terminal statuses admit no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending, StatusConfirmed:
		return next == StatusCancelled || next == StatusCheckedIn
	case StatusCheckedIn:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}
