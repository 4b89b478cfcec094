package domain

import "fmt"

// ContactMessage is a contact-form submission relayed to the studio inbox.
type ContactMessage struct {
	Name    string `json:"user_name"`
	Email   string `json:"user_email"`
	Message string `json:"message"`
}

// Validate checks the required fields before the message is relayed.
func (m ContactMessage) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Email == "" {
		return fmt.Errorf("email is required")
	}
	if m.Message == "" {
		return fmt.Errorf("message is required")
	}
	return nil
}
