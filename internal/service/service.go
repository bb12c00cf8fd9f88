package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"repaircenter/internal/models"
	"repaircenter/internal/repository"
)

type Service struct {
	repo *repository.Repository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{repo: repo}
}

//// Requests

// AddRequest registers a new repair ticket. The intake flow supplies free
// text; everything lifecycle-related (id, status, timestamps, empty offer
// list) is stamped here, and blank optional fields get their shop defaults.
func (s *Service) AddRequest(ctx context.Context, request models.RepairRequest) (models.RepairRequest, error) {
	request.Id = uuid.NewString()
	request.Status = models.StatusOpen
	request.CreatedAt = time.Now()
	request.Offers = []models.Offer{}

	if len(request.CustomerName) == 0 {
		request.CustomerName = models.DefaultCustomerName
	}
	if len(request.Location) == 0 {
		request.Location = models.DefaultLocation
	}
	if len(request.Image) == 0 {
		request.Image = fmt.Sprintf("https://picsum.photos/seed/%s/200/200", request.Id)
	}

	s.repo.CreateRequest(request)
	return request, nil
}

func (s *Service) GetRequests(ctx context.Context, limit, offset int, status models.RequestStatus) ([]models.RepairRequest, error) {
	return s.repo.Requests(limit, offset, status), nil
}

func (s *Service) GetRequest(ctx context.Context, requestId string) (models.RepairRequest, error) {
	request, ok := s.repo.RequestByID(requestId)
	if !ok {
		return models.RepairRequest{}, fmt.Errorf("service.Service.GetRequest: %w", models.ErrNoRequest)
	}
	return request, nil
}

// RequestEdit carries the fields an admin may change on a ticket. Zero values
// mean "leave as is".
type RequestEdit struct {
	Status     models.RequestStatus
	Priority   models.Priority
	Technician string
	Price      float64
}

// EditRequest applies an admin edit. Status moves are not checked against a
// transition table: the store is a blind state container and the admin
// console may set any status, including regressions. When a technician is
// named and the request has no offers yet, exactly one synthetic offer is
// appended on their behalf; a request that already carries offers never gains
// a second synthetic one.
func (s *Service) EditRequest(ctx context.Context, requestId string, edit RequestEdit) (models.RepairRequest, error) {
	request, ok := s.repo.RequestByID(requestId)
	if !ok {
		return models.RepairRequest{}, fmt.Errorf("service.Service.EditRequest: %w", models.ErrNoRequest)
	}

	if len(edit.Status) > 0 {
		request.Status = edit.Status
	}
	if len(edit.Priority) > 0 {
		request.Priority = edit.Priority
	}

	if len(edit.Technician) > 0 && len(request.Offers) == 0 {
		request.Offers = append(request.Offers, models.Offer{
			Id:             uuid.NewString(),
			TechnicianName: edit.Technician,
			Price:          edit.Price,
			Note:           models.AdminAssignedNote,
			Timestamp:      time.Now(),
		})
	}

	s.repo.UpdateRequest(request)
	return request, nil
}

// DeleteRequest removes the ticket. Removing an unknown id succeeds, the
// operation is idempotent.
func (s *Service) DeleteRequest(ctx context.Context, requestId string) error {
	s.repo.DeleteRequest(requestId)
	return nil
}

//// Offers

// SubmitOffer appends a technician's bid to the request. Offers only ever
// accumulate, display order is pure insertion order and no ranking is done.
func (s *Service) SubmitOffer(ctx context.Context, requestId, technicianName string, price float64, note string) (models.Offer, error) {
	offer := models.Offer{
		Id:             uuid.NewString(),
		TechnicianName: technicianName,
		Price:          price,
		Note:           note,
		Timestamp:      time.Now(),
	}

	if !s.repo.AppendOffer(requestId, offer) {
		return models.Offer{}, fmt.Errorf("service.Service.SubmitOffer: %w", models.ErrNoRequest)
	}

	return offer, nil
}

func (s *Service) GetOffers(ctx context.Context, requestId string) ([]models.Offer, error) {
	request, ok := s.repo.RequestByID(requestId)
	if !ok {
		return nil, fmt.Errorf("service.Service.GetOffers: %w", models.ErrNoRequest)
	}
	if request.Offers == nil {
		return []models.Offer{}, nil
	}
	return request.Offers, nil
}

// AcceptOffer flips the request's status to OFFER_ACCEPTED. Which offer won
// is not recorded on the entity; the offer id routes the action but the offer
// list itself is left untouched.
func (s *Service) AcceptOffer(ctx context.Context, requestId, offerId string) (models.RepairRequest, error) {
	request, ok := s.repo.RequestByID(requestId)
	if !ok {
		return models.RepairRequest{}, fmt.Errorf("service.Service.AcceptOffer: %w", models.ErrNoRequest)
	}

	request.Status = models.StatusOfferAccepted
	s.repo.UpdateRequest(request)
	return request, nil
}

// GetOpenBoard lists the technician job board: OPEN requests matching the
// search term across issue, location and device type.
func (s *Service) GetOpenBoard(ctx context.Context, term string) ([]models.RepairRequest, error) {
	return s.repo.OpenRequests(term), nil
}

//// Customers

func (s *Service) AddCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.Id = uuid.NewString()
	customer.TotalRepairs = 0
	customer.JoinedAt = time.Now()
	if len(customer.Email) == 0 {
		customer.Email = models.DefaultCustomerEmail
	}

	s.repo.CreateCustomer(customer)
	return customer, nil
}

func (s *Service) GetCustomers(ctx context.Context, query string) ([]models.Customer, error) {
	return s.repo.Customers(query), nil
}
