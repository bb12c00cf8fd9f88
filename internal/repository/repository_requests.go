package repository

import (
	"strings"

	"repaircenter/internal/models"
)

// CreateRequest inserts the request at the head of the collection, so the
// listing order is most-recently-created first. The caller supplies a fully
// formed request with a fresh unique id.
func (repo *Repository) CreateRequest(request models.RepairRequest) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.requests = append([]models.RepairRequest{request.Clone()}, repo.requests...)
}

// UpdateRequest replaces the stored record matching the request's id in place,
// keeping its position in the collection. A missing id is a silent no-op: the
// store must neither error nor insert.
func (repo *Repository) UpdateRequest(request models.RepairRequest) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.requests {
		if repo.requests[i].Id == request.Id {
			repo.requests[i] = request.Clone()
			return
		}
	}
}

// DeleteRequest removes the record with the matching id. Deleting an absent
// id is a no-op, so the operation is idempotent.
func (repo *Repository) DeleteRequest(id string) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.requests {
		if repo.requests[i].Id == id {
			repo.requests = append(repo.requests[:i], repo.requests[i+1:]...)
			return
		}
	}
}

// Requests returns the ordered collection, newest first, optionally narrowed
// to a status and paginated. limit <= 0 means no limit.
func (repo *Repository) Requests(limit, offset int, status models.RequestStatus) []models.RepairRequest {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var result []models.RepairRequest
	skipped := 0
	for _, request := range repo.requests {
		if len(status) > 0 && request.Status != status {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		result = append(result, request.Clone())
		if limit > 0 && len(result) >= limit {
			break
		}
	}

	return result
}

// OpenRequests returns OPEN requests whose issue description, location or
// device type contains the search term, case-insensitively. An empty term
// matches every open request.
func (repo *Repository) OpenRequests(term string) []models.RepairRequest {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	term = strings.ToLower(term)

	var result []models.RepairRequest
	for _, request := range repo.requests {
		if request.Status != models.StatusOpen {
			continue
		}
		if len(term) > 0 &&
			!strings.Contains(strings.ToLower(request.IssueDescription), term) &&
			!strings.Contains(strings.ToLower(request.Location), term) &&
			!strings.Contains(strings.ToLower(request.DeviceType), term) {
			continue
		}
		result = append(result, request.Clone())
	}

	return result
}

func (repo *Repository) RequestByID(id string) (models.RepairRequest, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, request := range repo.requests {
		if request.Id == id {
			return request.Clone(), true
		}
	}

	return models.RepairRequest{}, false
}

// AppendOffer appends the offer to the request's offer sequence, preserving
// submission order. It reports whether the request was found; an unknown id
// leaves the store untouched.
func (repo *Repository) AppendOffer(requestId string, offer models.Offer) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for i := range repo.requests {
		if repo.requests[i].Id == requestId {
			repo.requests[i].Offers = append(repo.requests[i].Offers, offer)
			return true
		}
	}

	return false
}
