package dto

// CreatePassengerRequest carries the creation payload. emailStatus is accepted
// but ignored: a fresh record is always marked email-verified, and
// phoneNumberStatus always starts unverified.
type CreatePassengerRequest struct {
	First             string  `json:"first"`
	Last              string  `json:"last"`
	Dob               *string `json:"dob"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Image             *string `json:"image"`
	HomeLocation      *string `json:"homeLocation"`
	HomePickupTime    *string `json:"homePickupTime"`
	WorkLocation      *string `json:"workLocation"`
	WorkPickupTime    *string `json:"workPickupTime"`
	PaymentMethod     *string `json:"paymentMethod"`
	EmailStatus       *int    `json:"emailStatus"`
	PhoneNumberStatus *int    `json:"phoneNumberStatus"`
}

// UpdatePassengerRequest is the partial-update payload. Pointer fields apply
// whenever the caller supplied a value; plain fields apply only when the value
// is non-empty/non-zero, so an empty first name or a 0.0 rating is a no-op.
// That asymmetry is observable behavior the frontend relies on, keep it.
type UpdatePassengerRequest struct {
	First  string  `json:"first"`
	Last   string  `json:"last"`
	Email  string  `json:"email"`
	Phone  string  `json:"phone"`
	Rating float64 `json:"rating"`
	Image  string  `json:"image"`

	Dob               *string `json:"dob"`
	HomeLocation      *string `json:"homeLocation"`
	HomePickupTime    *string `json:"homePickupTime"`
	WorkLocation      *string `json:"workLocation"`
	WorkPickupTime    *string `json:"workPickupTime"`
	PaymentMethod     *string `json:"paymentMethod"`
	EmailStatus       *int    `json:"emailStatus"`
	PhoneNumberStatus *int    `json:"phoneNumberStatus"`
	Suspend           *int    `json:"suspend"`
}
