package models

// Capacity status values reported on availability slots.
const (
	CapacityAvailable = "available"
	CapacityLimited   = "limited"
	CapacityFull      = "full"
)

// TimeSlot is one concrete bookable (date, start, end, session) tuple with
// remaining capacity. Dates are "YYYY-MM-DD", times "HH:MM".
type TimeSlot struct {
	Date           string `json:"date" bson:"date"`
	StartTime      string `json:"start_time" bson:"start_time"`
	EndTime        string `json:"end_time" bson:"end_time"`
	SessionID      int64  `json:"session_id" bson:"session_id"`
	CapacityStatus string `json:"capacity_status" bson:"capacity_status"`
	AvailableSpots int    `json:"available_spots" bson:"available_spots"`
	TotalSpots     int    `json:"total_spots" bson:"total_spots"`
}

// SessionOccurrence is a stored occurrence of a class/session from which
// availability slots are computed.
type SessionOccurrence struct {
	ID         string `json:"id" bson:"id"`
	BusinessID string `json:"businessId" bson:"businessId"`
	ServiceID  int64  `json:"serviceId" bson:"serviceId"`
	SessionID  int64  `json:"sessionId" bson:"sessionId"`
	Date       string `json:"date" bson:"date"`
	StartTime  string `json:"start_time" bson:"start_time"`
	EndTime    string `json:"end_time" bson:"end_time"`
	TotalSpots int    `json:"total_spots" bson:"total_spots"`
}
