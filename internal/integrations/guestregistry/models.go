package guestregistry

// Guest is a registered person from the front-desk people registry.
type Guest struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Document  string  `json:"document"` // CPF or passport number
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
	City      *string `json:"city,omitempty"`
	Blacklist bool    `json:"blacklist"`
}

// ErrorResponse is the registry's error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
