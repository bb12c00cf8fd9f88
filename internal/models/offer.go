package models

import "time"

// AdminAssignedNote marks the single synthetic offer created when an admin
// assigns a technician to a request that has no bids yet.
const AdminAssignedNote = "Assigned by Admin"

// Offer is a technician's bid against a repair request. Offers are immutable
// once created: they are only ever appended to a request, never edited or
// removed.
type Offer struct {
	Id             string    `json:"id"`
	TechnicianName string    `json:"technicianName"`
	Price          float64   `json:"price"`
	Note           string    `json:"note"`
	Timestamp      time.Time `json:"timestamp"`
}
