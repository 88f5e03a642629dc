package domain

import "time"

// Passenger is the single persisted entity of the service. Field names on the
// wire keep the camelCase names the admin frontend already consumes.
type Passenger struct {
	ID                int64      `gorm:"primaryKey" json:"id"`
	AuthID            int64      `gorm:"uniqueIndex;not null" json:"authId"`
	FirstName         string     `gorm:"size:250" json:"firstName"`
	LastName          string     `gorm:"size:250" json:"lastName"`
	DateOfBirth       *string    `gorm:"size:250" json:"dateOfBirth"`
	Email             string     `gorm:"size:250;uniqueIndex" json:"email"`
	PhoneNumber       string     `gorm:"size:250;uniqueIndex" json:"phoneNumber"`
	Image             *string    `gorm:"size:250" json:"image"`
	Rating            float64    `gorm:"default:0" json:"rating"`
	HomeLocation      *string    `gorm:"size:250" json:"homeLocation"`
	HomePickupTime    *string    `gorm:"size:250" json:"homePickupTime"`
	WorkLocation      *string    `gorm:"size:250" json:"workLocation"`
	WorkPickupTime    *string    `gorm:"size:250" json:"workPickupTime"`
	PaymentMethod     *string    `gorm:"size:250" json:"paymentMethod"`
	EmailStatus       int        `gorm:"default:1" json:"emailStatus"`
	PhoneNumberStatus int        `gorm:"default:0" json:"phoneNumberStatus"`
	SuspendedAt       *time.Time `json:"suspendedAt"`
	UpdateTimestamp   *time.Time `json:"updateTimestamp"`
	Timestamp         time.Time  `json:"timestamp"`
}

func (Passenger) TableName() string {
	return "passengers"
}

// Suspended reports whether the account is currently suspended. SuspendedAt
// being non-null is the only source of truth for this.
func (p *Passenger) Suspended() bool {
	return p.SuspendedAt != nil
}
