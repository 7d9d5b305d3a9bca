package reservation

import (
	"time"

	"github.com/google/uuid"
)

type NotificationKind string

const (
	NotificationCreated  NotificationKind = "reservation_created"
	NotificationCanceled NotificationKind = "reservation_canceled"
	NotificationApproved NotificationKind = "reservation_approved"
	NotificationRejected NotificationKind = "reservation_rejected"
)

// Notification is emitted after a transition has been saved.
// TenantID is the recipient, not necessarily the acting tenant.
type Notification struct {
	Kind          NotificationKind
	TenantID      uuid.UUID
	FlatID        uuid.UUID
	ReservationID uuid.UUID
	OccurredAt    time.Time
}
