package reservation

type Status string

const (
	StatusFree     Status = "FREE"
	StatusReserved Status = "RESERVED"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

var Statuses = []Status{StatusFree, StatusReserved, StatusApproved, StatusRejected}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusReserved, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// HasOccupant reports whether a reservation in this status carries an occupant.
func (s Status) HasOccupant() bool {
	return s == StatusReserved || s == StatusApproved
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected
}

type Event string

const (
	EventReserve Event = "reserve"
	EventApprove Event = "approve"
	EventReject  Event = "reject"
	EventCancel  Event = "cancel"
)

var Events = []Event{EventReserve, EventApprove, EventReject, EventCancel}

func (e Event) String() string {
	return string(e)
}
