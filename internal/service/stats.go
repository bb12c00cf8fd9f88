package service

import (
	"context"

	"repaircenter/internal/models"
)

type StatusCounts struct {
	Open       int `json:"open"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}

type DeviceCounts struct {
	Smartphone int `json:"smartphone"`
	Laptop     int `json:"laptop"`
	Tablet     int `json:"tablet"`
}

type DashboardStats struct {
	TotalRequests int          `json:"totalRequests"`
	TotalRevenue  float64      `json:"totalRevenue"`
	Statuses      StatusCounts `json:"statuses"`
	Devices       DeviceCounts `json:"devices"`
}

// GetDashboard aggregates the admin dashboard numbers. Revenue counts the
// first offer's price of every request that has moved past OPEN; the entity
// does not record which offer was accepted, so the first bid stands in for it.
func (s *Service) GetDashboard(ctx context.Context) (DashboardStats, error) {
	requests := s.repo.Requests(0, 0, "")

	stats := DashboardStats{TotalRequests: len(requests)}
	for _, request := range requests {
		switch request.Status {
		case models.StatusOpen:
			stats.Statuses.Open++
		case models.StatusInProgress, models.StatusOfferAccepted:
			stats.Statuses.InProgress++
		case models.StatusCompleted:
			stats.Statuses.Completed++
		}

		switch request.DeviceType {
		case "Smartphone":
			stats.Devices.Smartphone++
		case "Laptop":
			stats.Devices.Laptop++
		case "Tablet":
			stats.Devices.Tablet++
		}

		if request.Status != models.StatusOpen && len(request.Offers) > 0 {
			stats.TotalRevenue += request.Offers[0].Price
		}
	}

	return stats, nil
}
