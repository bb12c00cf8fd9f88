package repository

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	gofakeit "github.com/brianvoe/gofakeit/v7"

	"repaircenter/internal/models"
)

func NewTestRequest(n int) models.RepairRequest {
	return models.RepairRequest{
		Id:               "req-" + strconv.Itoa(n),
		CustomerName:     gofakeit.Name(),
		DeviceType:       "Smartphone",
		Brand:            gofakeit.Company(),
		Model:            gofakeit.ProductName(),
		IssueDescription: gofakeit.SentenceSimple(),
		Location:         gofakeit.City(),
		ServiceType:      models.STHomeService,
		Status:           models.StatusOpen,
		CreatedAt:        time.Now(),
		Offers:           []models.Offer{},
	}
}

func AddTestRequests(t *testing.T, repo *Repository, count int) []models.RepairRequest {
	requests := make([]models.RepairRequest, 0, count)
	for i := 0; i < count; i++ {
		request := NewTestRequest(i)
		repo.CreateRequest(request)
		requests = append(requests, request)
	}
	return requests
}

func TestCreateRequestOrder(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	created := AddTestRequests(t, repo, 10)

	listed := repo.Requests(0, 0, "")
	if len(listed) != len(created) {
		t.Fatalf("Created %d requests, listed %d", len(created), len(listed))
	}

	// most-recently-created first: listing order is creation order reversed
	for i, request := range listed {
		expected := created[len(created)-1-i].Id
		if request.Id != expected {
			t.Fatalf("Wrong order at position %d: expected id %s, got %s", i, expected, request.Id)
		}
	}
}

func TestRequestsPaginationAndFilter(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	created := AddTestRequests(t, repo, 9)

	// flip every third request to COMPLETED
	completed := 0
	for i, request := range created {
		if i%3 == 0 {
			request.Status = models.StatusCompleted
			repo.UpdateRequest(request)
			completed++
		}
	}

	listed := repo.Requests(0, 0, models.StatusCompleted)
	if len(listed) != completed {
		t.Fatalf("Expected %d completed requests, got %d", completed, len(listed))
	}

	for _, lim := range []int{1, 4, len(created)} {
		listed = repo.Requests(lim, 0, "")
		if len(listed) != lim {
			t.Fatalf("Expected %d requests with limit set, got %d", lim, len(listed))
		}
	}

	for _, off := range []int{1, 4, len(created)} {
		listed = repo.Requests(0, off, "")
		if len(listed) != len(created)-off {
			t.Fatalf("Expected %d requests with offset %d, got %d", len(created)-off, off, len(listed))
		}
	}
}

func TestUpdateRequest(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	created := AddTestRequests(t, repo, 5)

	changed := created[2]
	changed.Status = models.StatusInProgress
	changed.IssueDescription = "Updated description"
	repo.UpdateRequest(changed)

	stored, ok := repo.RequestByID(changed.Id)
	if !ok {
		t.Fatalf("Request %s disappeared after update", changed.Id)
	}
	if stored.Status != models.StatusInProgress || stored.IssueDescription != "Updated description" {
		t.Errorf("Update was not applied: %+v", stored)
	}

	// position in the ordered collection must not move
	listed := repo.Requests(0, 0, "")
	if listed[len(created)-1-2].Id != changed.Id {
		t.Error("Update moved the request inside the ordered collection")
	}
}

func TestUpdateRequestMissingIsNoop(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	AddTestRequests(t, repo, 3)
	before := repo.Requests(0, 0, "")

	ghost := NewTestRequest(99)
	ghost.Id = "no-such-id"
	repo.UpdateRequest(ghost)

	after := repo.Requests(0, 0, "")
	if len(after) != len(before) {
		t.Fatalf("Update with unknown id changed the collection size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].Id != before[i].Id {
			t.Fatalf("Update with unknown id reordered the collection at %d", i)
		}
	}
	if _, ok := repo.RequestByID("no-such-id"); ok {
		t.Fatal("Update with unknown id inserted a request")
	}
}

func TestDeleteRequestIdempotent(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	created := AddTestRequests(t, repo, 4)

	repo.DeleteRequest(created[1].Id)
	if _, ok := repo.RequestByID(created[1].Id); ok {
		t.Fatal("Request still present after delete")
	}
	if len(repo.Requests(0, 0, "")) != len(created)-1 {
		t.Fatal("Wrong collection size after delete")
	}

	// second delete of the same id must be a no-op
	repo.DeleteRequest(created[1].Id)
	if len(repo.Requests(0, 0, "")) != len(created)-1 {
		t.Fatal("Repeated delete changed the collection")
	}
}

func TestAppendOffer(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	created := AddTestRequests(t, repo, 2)

	count := 5
	for i := 0; i < count; i++ {
		ok := repo.AppendOffer(created[0].Id, models.Offer{
			Id:             "offer-" + strconv.Itoa(i),
			TechnicianName: gofakeit.Company(),
			Price:          float64(10 * i),
			Note:           fmt.Sprintf("bid %d", i),
			Timestamp:      time.Now(),
		})
		if !ok {
			t.Fatalf("AppendOffer reported request %s as missing", created[0].Id)
		}
	}

	stored, _ := repo.RequestByID(created[0].Id)
	if len(stored.Offers) != count {
		t.Fatalf("Expected %d offers after %d appends, got %d", count, count, len(stored.Offers))
	}
	for i, offer := range stored.Offers {
		if offer.Id != "offer-"+strconv.Itoa(i) {
			t.Fatalf("Offers out of submission order at %d: got %s", i, offer.Id)
		}
	}

	// untouched request keeps an empty offer list
	other, _ := repo.RequestByID(created[1].Id)
	if len(other.Offers) != 0 {
		t.Errorf("Offers leaked onto another request: %v", other.Offers)
	}
}

func TestAppendOfferMissingRequest(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	AddTestRequests(t, repo, 2)

	if repo.AppendOffer("no-such-id", models.Offer{Id: "x"}) {
		t.Fatal("AppendOffer reported success for a missing request")
	}
	for _, request := range repo.Requests(0, 0, "") {
		if len(request.Offers) != 0 {
			t.Fatalf("Offer for a missing id landed on request %s", request.Id)
		}
	}
}

func TestOpenRequestsSearch(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	screen := NewTestRequest(0)
	screen.IssueDescription = "Cracked Screen, touch dead in corner"
	repo.CreateRequest(screen)

	battery := NewTestRequest(1)
	battery.IssueDescription = "Battery drains overnight"
	battery.Location = "Gulshan 1, Dhaka"
	repo.CreateRequest(battery)

	closed := NewTestRequest(2)
	closed.IssueDescription = "cracked screen too"
	closed.Status = models.StatusCompleted
	repo.CreateRequest(closed)

	board := repo.OpenRequests("")
	if len(board) != 2 {
		t.Fatalf("Expected 2 open requests on the board, got %d", len(board))
	}

	board = repo.OpenRequests("CRACKED")
	if len(board) != 1 || board[0].Id != screen.Id {
		t.Fatalf("Case-insensitive issue search failed: %+v", board)
	}

	board = repo.OpenRequests("gulshan")
	if len(board) != 1 || board[0].Id != battery.Id {
		t.Fatalf("Location search failed: %+v", board)
	}

	if len(repo.OpenRequests("no-such-term")) != 0 {
		t.Fatal("Search for absent term returned results")
	}
}

func TestListedRequestsDoNotAliasStore(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	created := AddTestRequests(t, repo, 1)
	repo.AppendOffer(created[0].Id, models.Offer{Id: "o1", Price: 50})

	listed := repo.Requests(0, 0, "")
	listed[0].Offers[0].Price = 12345
	listed[0].Status = models.StatusCanceled

	stored, _ := repo.RequestByID(created[0].Id)
	if stored.Offers[0].Price != 50 {
		t.Error("Mutating a listed request's offers reached into the store")
	}
	if stored.Status != models.StatusOpen {
		t.Error("Mutating a listed request's status reached into the store")
	}
}

func TestSeedDemoData(t *testing.T) {
	repo := NewRepository()
	defer repo.Close()

	repo.SeedDemoData(6, 4)
	if len(repo.Requests(0, 0, "")) != 6 {
		t.Fatalf("Expected 6 seeded requests, got %d", len(repo.Requests(0, 0, "")))
	}
	if len(repo.Customers("")) != 4 {
		t.Fatalf("Expected 4 seeded customers, got %d", len(repo.Customers("")))
	}

	// seeding a non-empty store must be a no-op
	repo.SeedDemoData(6, 4)
	if len(repo.Requests(0, 0, "")) != 6 {
		t.Fatal("Repeated seeding duplicated demo data")
	}
}
