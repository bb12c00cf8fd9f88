package repository

import (
	"fmt"
	"time"

	gofakeit "github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"repaircenter/internal/models"
)

var seedDeviceTypes = []string{"Smartphone", "Laptop", "Tablet", "Other"}

var seedIssues = []string{
	"Screen is cracked and touch not responding in top corner.",
	"Battery not charging, light blinks amber.",
	"Device restarts randomly under load.",
	"Speaker crackles at high volume.",
	"Keyboard keys sticking after liquid spill.",
}

// SeedDemoData fills an empty store with a handful of plausible requests and
// customers so a fresh instance has something to show. Safe to call more than
// once, it only seeds when both collections are empty.
func (repo *Repository) SeedDemoData(requests, customers int) {
	repo.mu.RLock()
	empty := len(repo.requests) == 0 && len(repo.customers) == 0
	repo.mu.RUnlock()
	if !empty {
		return
	}

	for i := 0; i < customers; i++ {
		repo.CreateCustomer(models.Customer{
			Id:           uuid.NewString(),
			Name:         gofakeit.Name(),
			Phone:        gofakeit.Phone(),
			Email:        gofakeit.Email(),
			Address:      gofakeit.Address().Address,
			TotalRepairs: 0,
			JoinedAt:     time.Now().Add(-time.Duration(gofakeit.Number(1, 90)) * 24 * time.Hour),
		})
	}

	for i := 0; i < requests; i++ {
		id := uuid.NewString()
		request := models.RepairRequest{
			Id:               id,
			CustomerName:     gofakeit.Name(),
			DeviceType:       seedDeviceTypes[gofakeit.Number(0, len(seedDeviceTypes)-1)],
			Brand:            gofakeit.Company(),
			Model:            gofakeit.ProductName(),
			IssueDescription: seedIssues[gofakeit.Number(0, len(seedIssues)-1)],
			Location:         gofakeit.City(),
			ServiceType:      models.STHomeService,
			Status:           models.StatusOpen,
			CreatedAt:        time.Now().Add(-time.Duration(gofakeit.Number(1, 72)) * time.Hour),
			Offers:           []models.Offer{},
			Image:            fmt.Sprintf("https://picsum.photos/seed/%s/200/200", id),
		}
		if gofakeit.Bool() {
			request.ServiceType = models.STShopRepair
		}
		// every other request arrives with a bid already on it
		if i%2 == 0 {
			request.Offers = append(request.Offers, models.Offer{
				Id:             uuid.NewString(),
				TechnicianName: gofakeit.Company(),
				Price:          float64(gofakeit.Number(20, 200)),
				Note:           gofakeit.SentenceSimple(),
				Timestamp:      time.Now().Add(-time.Duration(gofakeit.Number(1, 60)) * time.Minute),
			})
		}
		repo.CreateRequest(request)
	}
}
