package domain

import "time"

// Inquiry is a message submitted through the public contact form.
type Inquiry struct {
	ID         int32     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	PropertyID *int32    `json:"property_id,omitempty"` // set when asking about a specific listing
	CreatedOn  time.Time `json:"created_on"`
}
