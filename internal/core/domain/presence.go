package domain

import "time"

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// PresenceRecord is the persisted reachability state for one user. A record
// is created on first registration and never deleted; status online implies
// EndpointID points at a currently attached connection, status offline
// implies EndpointID is cleared.
type PresenceRecord struct {
	UserID     string    `json:"userId"`
	EndpointID string    `json:"endpointId,omitempty"`
	PushToken  string    `json:"pushToken,omitempty"`
	Status     Status    `json:"status"`
	LastSeen   time.Time `json:"lastSeen"`
}

func (r PresenceRecord) Reachable() bool {
	return r.Status == StatusOnline && r.EndpointID != ""
}
