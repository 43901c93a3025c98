package models

// LocationEvent is the audit event published after a location mutation.
type LocationEvent struct {
	EventID    string `json:"event_id"`
	Operation  string `json:"operation"` // created, updated or deleted
	LocationID string `json:"location_id"`
	OwnerID    string `json:"owner_id"`
	Name       string `json:"name"`
	Timestamp  int64  `json:"timestamp"`
}
