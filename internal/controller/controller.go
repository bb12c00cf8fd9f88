package controller

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"repaircenter/internal/models"
	"repaircenter/internal/service"
)

type Service interface {
	AddRequest(ctx context.Context, request models.RepairRequest) (models.RepairRequest, error)
	GetRequests(ctx context.Context, limit, offset int, status models.RequestStatus) ([]models.RepairRequest, error)
	GetRequest(ctx context.Context, requestId string) (models.RepairRequest, error)
	EditRequest(ctx context.Context, requestId string, edit service.RequestEdit) (models.RepairRequest, error)
	DeleteRequest(ctx context.Context, requestId string) error

	SubmitOffer(ctx context.Context, requestId, technicianName string, price float64, note string) (models.Offer, error)
	GetOffers(ctx context.Context, requestId string) ([]models.Offer, error)
	AcceptOffer(ctx context.Context, requestId, offerId string) (models.RepairRequest, error)
	GetOpenBoard(ctx context.Context, term string) ([]models.RepairRequest, error)

	AddCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	GetCustomers(ctx context.Context, query string) ([]models.Customer, error)
	GetDashboard(ctx context.Context) (service.DashboardStats, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, deviceType, brand, model, issue string) string
}

type Controller struct {
	service  Service
	analyzer Analyzer
	log      *logrus.Logger

	// one outstanding diagnosis call at a time
	analyzing atomic.Bool
}

func NewController(service Service, analyzer Analyzer, log *logrus.Logger) *Controller {
	return &Controller{service: service, analyzer: analyzer, log: log}
}

//// Requests

// GET /api/ping
func (c *Controller) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// GET /api/requests
func (c *Controller) GetRequests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit, err := c.getQueryInt(query, "limit")
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, "invalid value of 'limit' query parameter: "+query.Get("limit"))
		return
	}

	offset, err := c.getQueryInt(query, "offset")
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, "invalid value of 'offset' query parameter: "+query.Get("offset"))
		return
	}

	status := models.RequestStatus(query.Get("status"))
	if len(status) > 0 && !models.ValidRequestStatus(status) {
		c.errorResponse(w, http.StatusBadRequest, "invalid status supplied: "+string(status))
		return
	}

	requests, err := c.service.GetRequests(r.Context(), limit, offset, status)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, requests)
}

// POST /api/requests/new
func (c *Controller) NewRequest(w http.ResponseWriter, r *http.Request) {
	data, err := c.readBody(r.Body)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not read request body")
		return
	}

	req, err := ParseNewRequestReq(data)
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	request, err := c.service.AddRequest(r.Context(), models.RepairRequest{
		CustomerName:     req.CustomerName,
		ContactPhone:     req.ContactPhone,
		ContactEmail:     req.ContactEmail,
		DeviceType:       req.DeviceType,
		Brand:            req.Brand,
		Model:            req.Model,
		IssueDescription: req.IssueDescription,
		Location:         req.Location,
		ServiceType:      req.ServiceType,
		Priority:         req.Priority,
		AiAnalysis:       req.AiAnalysis,
		Image:            req.Image,
	})
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, request)
}

// GET /api/requests/{requestId}
func (c *Controller) GetRequest(w http.ResponseWriter, r *http.Request) {
	requestId := r.PathValue("requestId")
	if len(requestId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty requestId supplied")
		return
	}

	request, err := c.service.GetRequest(r.Context(), requestId)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, request)
}

// PATCH /api/requests/{requestId}/edit
func (c *Controller) EditRequest(w http.ResponseWriter, r *http.Request) {
	requestId := r.PathValue("requestId")
	if len(requestId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty requestId supplied")
		return
	}

	data, err := c.readBody(r.Body)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not read request body")
		return
	}

	edit, err := ParseEditRequestReq(data)
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	request, err := c.service.EditRequest(r.Context(), requestId, edit)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, request)
}

// DELETE /api/requests/{requestId}
func (c *Controller) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	requestId := r.PathValue("requestId")
	if len(requestId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty requestId supplied")
		return
	}

	err := c.service.DeleteRequest(r.Context(), requestId)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

//// Offers

// POST /api/requests/{requestId}/offers/new
func (c *Controller) NewOffer(w http.ResponseWriter, r *http.Request) {
	requestId := r.PathValue("requestId")
	if len(requestId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty requestId supplied")
		return
	}

	data, err := c.readBody(r.Body)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not read request body")
		return
	}

	technicianName, price, note, err := ParseNewOfferReq(data)
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	offer, err := c.service.SubmitOffer(r.Context(), requestId, technicianName, price, note)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, offer)
}

// GET /api/requests/{requestId}/offers
func (c *Controller) GetOffers(w http.ResponseWriter, r *http.Request) {
	requestId := r.PathValue("requestId")
	if len(requestId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty requestId supplied")
		return
	}

	offers, err := c.service.GetOffers(r.Context(), requestId)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, offers)
}

// PUT /api/requests/{requestId}/offers/{offerId}/accept
func (c *Controller) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	requestId := r.PathValue("requestId")
	if len(requestId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty requestId supplied")
		return
	}

	offerId := r.PathValue("offerId")
	if len(offerId) == 0 {
		c.errorResponse(w, http.StatusBadRequest, "empty offerId supplied")
		return
	}

	request, err := c.service.AcceptOffer(r.Context(), requestId, offerId)
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, request)
}

// GET /api/board
func (c *Controller) GetBoard(w http.ResponseWriter, r *http.Request) {
	requests, err := c.service.GetOpenBoard(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, requests)
}

// GET /api/dashboard
func (c *Controller) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := c.service.GetDashboard(r.Context())
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, stats)
}

//// Customers

// GET /api/customers
func (c *Controller) GetCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.service.GetCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, customers)
}

// POST /api/customers/new
func (c *Controller) NewCustomer(w http.ResponseWriter, r *http.Request) {
	data, err := c.readBody(r.Body)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not read request body")
		return
	}

	req, err := ParseNewCustomerReq(data)
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := c.service.AddCustomer(r.Context(), models.Customer{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		c.serviceErrorResponse(w, err)
		return
	}

	c.marshalResponse(w, customer)
}

//// Diagnosis

type DiagnoseResp struct {
	Analysis string `json:"analysis"`
}

// POST /api/diagnosis
func (c *Controller) Diagnose(w http.ResponseWriter, r *http.Request) {
	data, err := c.readBody(r.Body)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not read request body")
		return
	}

	req, err := ParseDiagnoseReq(data)
	if err != nil {
		c.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !c.analyzing.CompareAndSwap(false, true) {
		c.serviceErrorResponse(w, models.ErrAnalysisRunning)
		return
	}
	defer c.analyzing.Store(false)

	text := c.analyzer.Analyze(r.Context(), req.DeviceType, req.Brand, req.Model, req.IssueDescription)
	c.marshalResponse(w, DiagnoseResp{Analysis: text})
}

//// Service

type ErrorResponse struct {
	Reason string `json:"reason"`
}

func (c *Controller) getQueryInt(query url.Values, key string) (int, error) {
	strs, ok := query[key]
	if ok && len(strs) > 0 {
		return strconv.Atoi(strs[0])
	}
	return 0, nil
}

func (c *Controller) errorResponse(w http.ResponseWriter, status int, text string) {
	w.WriteHeader(status)

	data, err := json.Marshal(ErrorResponse{Reason: text})
	if err != nil {
		c.log.WithError(err).Error("controller.Controller.errorResponse: marshal failed")
		return
	}

	_, err = w.Write(data)
	if err != nil {
		c.log.WithError(err).Error("controller.Controller.errorResponse: write failed")
		return
	}
}

func (c *Controller) serviceErrorResponse(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNoRequest):
		c.errorResponse(w, http.StatusNotFound, "requested repair request does not exist")
	case errors.Is(err, models.ErrAnalysisRunning):
		c.errorResponse(w, http.StatusConflict, "an analysis is already in progress, try again shortly")
	default:
		c.log.WithError(err).Error("controller: unexpected service error")
		c.errorResponse(w, http.StatusInternalServerError, "internal server error: "+err.Error())
	}
}

func (c *Controller) marshalResponse(w http.ResponseWriter, data any) {
	d, err := json.Marshal(data)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not marshal response data")
		return
	}

	_, err = w.Write(d)
	if err != nil {
		c.errorResponse(w, http.StatusInternalServerError, "could not write response data")
		return
	}
}

func (c *Controller) readBody(src io.ReadCloser) ([]byte, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	src.Close()
	return data, nil
}
