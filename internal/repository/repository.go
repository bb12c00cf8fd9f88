package repository

import (
	"sync"

	"repaircenter/internal/models"
)

// Repository is the single authoritative holder of repair requests and
// customers. Collections are kept in memory, ordered most-recent-first, and
// every mutation goes through an explicit operation under the lock so the
// store stays consistent when exposed as a shared service.
type Repository struct {
	mu        sync.RWMutex
	requests  []models.RepairRequest
	customers []models.Customer
}

func NewRepository() *Repository {
	return &Repository{}
}

func (repo *Repository) Close() error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.requests = nil
	repo.customers = nil
	return nil
}
