package models

// Service is a bookable offering shown on the first wizard step. Legacy
// fixed-session records and flexible subcategories both surface as services;
// IsSession marks the former.
type Service struct {
	ID              int64   `json:"id" bson:"id"`
	SessionID       int64   `json:"session_id,omitempty" bson:"session_id,omitempty"`
	Name            string  `json:"name" bson:"name"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	BasePrice       float64 `json:"base_price" bson:"base_price"`
	DefaultDuration int     `json:"default_duration" bson:"default_duration"`
	IsSession       bool    `json:"is_session" bson:"is_session"`
}

// Subcategory is a leaf of a category tree. Only entries flagged IsService
// can be booked through the flexible path.
type Subcategory struct {
	ID              int64   `json:"id" bson:"id"`
	Name            string  `json:"name" bson:"name"`
	Description     string  `json:"description,omitempty" bson:"description,omitempty"`
	IsService       bool    `json:"is_service" bson:"is_service"`
	BasePrice       float64 `json:"base_price" bson:"base_price"`
	DefaultDuration int     `json:"default_duration" bson:"default_duration"`
}

// Category groups subcategories. A category with no subcategories at all
// degrades to a fixed flow when selected.
type Category struct {
	ID            int64         `json:"id" bson:"id"`
	Name          string        `json:"name" bson:"name"`
	Description   string        `json:"description,omitempty" bson:"description,omitempty"`
	Subcategories []Subcategory `json:"subcategories,omitempty" bson:"subcategories,omitempty"`
}

// HasSubcategories reports whether the category carries any subcategories,
// which is what switches a session onto the flexible path. The IsService
// filter applies when picking a subcategory, not here: a category whose
// entries are all display-only still presents the subcategory step.
func (c Category) HasSubcategories() bool {
	return len(c.Subcategories) > 0
}

// Catalog is everything the service step needs: legacy session records plus
// the category trees for flexible bookings.
type Catalog struct {
	Services   []Service  `json:"services"`
	Categories []Category `json:"categories"`
}
