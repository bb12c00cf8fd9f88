package repository

import (
	"strings"

	"repaircenter/internal/models"
)

// CreateCustomer prepends the customer to the collection. The caller supplies
// a fully formed customer with a fresh unique id. Customers are only ever
// created and listed, there is no update or delete.
func (repo *Repository) CreateCustomer(customer models.Customer) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.customers = append([]models.Customer{customer}, repo.customers...)
}

// Customers returns customers whose name or phone contains the query as a
// case-insensitive substring, newest first. An empty query returns everyone.
func (repo *Repository) Customers(query string) []models.Customer {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	query = strings.ToLower(query)

	var result []models.Customer
	for _, customer := range repo.customers {
		if len(query) > 0 &&
			!strings.Contains(strings.ToLower(customer.Name), query) &&
			!strings.Contains(strings.ToLower(customer.Phone), query) {
			continue
		}
		result = append(result, customer)
	}

	return result
}
