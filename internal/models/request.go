package models

import "time"

type RequestStatus string

const (
	StatusOpen          RequestStatus = "OPEN"
	StatusOfferAccepted RequestStatus = "OFFER_ACCEPTED"
	StatusInProgress    RequestStatus = "IN_PROGRESS"
	StatusCompleted     RequestStatus = "COMPLETED"
	StatusCanceled      RequestStatus = "CANCELED"
)

func ValidRequestStatus(s RequestStatus) bool {
	switch s {
	case StatusOpen, StatusOfferAccepted, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

type ServiceType string

const (
	STHomeService ServiceType = "Home Service"
	STShopRepair  ServiceType = "Shop Repair (Pickup/Dropoff)"
)

func ValidServiceType(t ServiceType) bool {
	switch t {
	case STHomeService, STShopRepair:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityNormal Priority = "NORMAL"
	PriorityUrgent Priority = "URGENT"
)

func ValidPriority(p Priority) bool {
	switch p {
	case PriorityNormal, PriorityUrgent:
		return true
	default:
		return false
	}
}

// Defaults applied at intake when the corresponding field is left blank.
const (
	DefaultCustomerName = "Walk-in Customer"
	DefaultLocation     = "Shop Counter"
)

type RepairRequest struct {
	Id               string        `json:"id"`
	CustomerName     string        `json:"customerName"`
	ContactPhone     string        `json:"contactPhone,omitempty"`
	ContactEmail     string        `json:"contactEmail,omitempty"`
	DeviceType       string        `json:"deviceType"`
	Brand            string        `json:"brand"`
	Model            string        `json:"model"`
	IssueDescription string        `json:"issueDescription"`
	Location         string        `json:"location"`
	ServiceType      ServiceType   `json:"serviceType"`
	Priority         Priority      `json:"priority,omitempty"`
	Status           RequestStatus `json:"status"`
	CreatedAt        time.Time     `json:"createdAt"`
	Offers           []Offer       `json:"offers"`
	AiAnalysis       string        `json:"aiAnalysis,omitempty"`
	Image            string        `json:"image,omitempty"`
}

// Clone returns a copy whose offers slice does not alias the receiver's.
func (r RepairRequest) Clone() RepairRequest {
	if r.Offers != nil {
		offers := make([]Offer, len(r.Offers))
		copy(offers, r.Offers)
		r.Offers = offers
	}
	return r
}
