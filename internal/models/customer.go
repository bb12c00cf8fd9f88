package models

import "time"

// DefaultCustomerEmail is stored when a customer is created with a blank email.
const DefaultCustomerEmail = "-"

// Customer is an address-book entry. It is matched to repair requests by
// display name only, there is no enforced link between the two.
type Customer struct {
	Id           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Address      string    `json:"address"`
	TotalRepairs int       `json:"totalRepairs"`
	JoinedAt     time.Time `json:"joinedAt"`
}
