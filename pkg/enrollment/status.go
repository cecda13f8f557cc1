package enrollment

// Status is the closed set of enrollment lifecycle states. The linear order is
// enrolled → uploaded → processing → under-review → approved; rejected is an
// alternate terminal reachable from any non-terminal state.
type Status string

const (
	StatusEnrolled    Status = "enrolled"
	StatusUploaded    Status = "uploaded"
	StatusProcessing  Status = "processing"
	StatusUnderReview Status = "under-review"
	StatusApproved    Status = "approved"
	StatusRejected    Status = "rejected"
)

var statusOrder = []Status{
	StatusEnrolled,
	StatusUploaded,
	StatusProcessing,
	StatusUnderReview,
	StatusApproved,
}

// IsTerminal reports whether no further transitions are permitted
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	if s == StatusRejected {
		return true
	}
	for _, o := range statusOrder {
		if s == o {
			return true
		}
	}
	return false
}

// Next returns the following state in the linear order. The second return is
// false for terminal or unknown states.
func (s Status) Next() (Status, bool) {
	for i, o := range statusOrder {
		if s == o {
			if i == len(statusOrder)-1 {
				return "", false
			}
			return statusOrder[i+1], true
		}
	}
	return "", false
}
