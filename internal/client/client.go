package client

import "time"

// Client maps to the `client` table.
type Client struct {
	ID          int       `json:"clientId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Email       string    `json:"email"`
	CreatedDate time.Time `json:"createdDate"`
}

// FullName is "First Last", the way report 3 prints a client.
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
