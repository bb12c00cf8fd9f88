package router

import (
	"net/http"

	"repaircenter/internal/controller"
)

func NewRouter(c *controller.Controller) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/ping", c.Ping)
	mux.HandleFunc("GET /api/requests", c.GetRequests)
	mux.HandleFunc("POST /api/requests/new", c.NewRequest)
	mux.HandleFunc("GET /api/requests/{requestId}", c.GetRequest)
	mux.HandleFunc("PATCH /api/requests/{requestId}/edit", c.EditRequest)
	mux.HandleFunc("DELETE /api/requests/{requestId}", c.DeleteRequest)
	mux.HandleFunc("POST /api/requests/{requestId}/offers/new", c.NewOffer)
	mux.HandleFunc("GET /api/requests/{requestId}/offers", c.GetOffers)
	mux.HandleFunc("PUT /api/requests/{requestId}/offers/{offerId}/accept", c.AcceptOffer)
	mux.HandleFunc("GET /api/board", c.GetBoard)
	mux.HandleFunc("GET /api/dashboard", c.GetDashboard)
	mux.HandleFunc("GET /api/customers", c.GetCustomers)
	mux.HandleFunc("POST /api/customers/new", c.NewCustomer)
	mux.HandleFunc("POST /api/diagnosis", c.Diagnose)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("page not found"))
	})

	cors := http.NewServeMux()
	cors.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Accept", "*/*")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
		} else {
			mux.ServeHTTP(w, r)
		}
	})

	return cors
}
