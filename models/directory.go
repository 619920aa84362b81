package models

// Staff is a bookable member of a business as exposed to the public widget.
type Staff struct {
	ID              int64    `json:"id" bson:"id"`
	Name            string   `json:"name" bson:"name"`
	IsAvailable     bool     `json:"is_available" bson:"is_available"`
	Specializations []string `json:"specializations,omitempty" bson:"specializations,omitempty"`
}

// Location is a physical place a business offers bookings at.
type Location struct {
	ID          int64  `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Address     string `json:"address" bson:"address"`
	IsAvailable bool   `json:"is_available" bson:"is_available"`
}
