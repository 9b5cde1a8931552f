package models

import (
	"time"

	"gorm.io/gorm"
)

// Location is the street address embedded in a service listing.
type Location struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

// ServiceListing represents one bookable marketplace offering.
// The owning user lives in the external user record store, so UserID is not
// backed by a foreign-key constraint; orphaned listings are possible when a
// user is deleted outside the cascade path.
type ServiceListing struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	InternalID   string         `gorm:"uniqueIndex;not null" json:"internalId"` // externally exposed key
	UserID       string         `gorm:"not null;index" json:"userId"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `gorm:"type:text;not null" json:"description"`
	Price        float64        `gorm:"not null;check:price >= 0" json:"price"`
	PriceType    string         `gorm:"not null;default:'fix'" json:"priceType"` // "fix" or "hourly"
	Status       string         `gorm:"not null;default:'active'" json:"status"` // "active" or "inactive"
	WorkingHours WorkingHours   `gorm:"type:text" json:"workingHours"`
	Location     Location       `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	Image        string         `json:"image"`
	Calendly     string         `json:"calendly"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the ServiceListing model
func (ServiceListing) TableName() string {
	return "service_listings"
}
