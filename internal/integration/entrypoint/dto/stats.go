package dto

// GuestStatsResponse represents the admin guest counter payload.
type GuestStatsResponse struct {
	TotalGuests int64 `json:"total_guests"`
}

// EventStatsResponse represents the admin event counter payload.
type EventStatsResponse struct {
	ActiveEvents int64 `json:"active_events"`
}
