package controller

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"repaircenter/internal/models"
	"repaircenter/internal/service"
)

// New request intake

type NewRequestReq struct {
	CustomerName     string             `json:"customerName"`
	ContactPhone     string             `json:"contactPhone"`
	ContactEmail     string             `json:"contactEmail"`
	DeviceType       string             `json:"deviceType"`
	Brand            string             `json:"brand"`
	Model            string             `json:"model"`
	IssueDescription string             `json:"issueDescription"`
	Location         string             `json:"location"`
	ServiceType      models.ServiceType `json:"serviceType"`
	Priority         models.Priority    `json:"priority"`
	AiAnalysis       string             `json:"aiAnalysis"`
	Image            string             `json:"image"`
}

func ParseNewRequestReq(data []byte) (*NewRequestReq, error) {
	t := &NewRequestReq{}

	err := json.Unmarshal(data, t)
	if err != nil {
		return nil, err
	}

	if len(strings.TrimSpace(t.IssueDescription)) == 0 {
		return nil, fmt.Errorf("field 'issueDescription' is required")
	}

	if !models.ValidServiceType(t.ServiceType) {
		return nil, fmt.Errorf("invalid service type supplied: %s, should be one of: %s, %s", string(t.ServiceType), models.STHomeService, models.STShopRepair)
	}

	if len(t.Priority) > 0 && !models.ValidPriority(t.Priority) {
		return nil, fmt.Errorf("invalid priority supplied: %s, should be one of: %s, %s", string(t.Priority), models.PriorityNormal, models.PriorityUrgent)
	}

	if err = checkLengthLimit(t.CustomerName, "customerName", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.DeviceType, "deviceType", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.Brand, "brand", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.Model, "model", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.Location, "location", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.IssueDescription, "issueDescription", 500); err != nil {
		return nil, err
	}

	return t, nil
}

// Admin edit request

type EditRequestReq struct {
	Status     models.RequestStatus `json:"status"`
	Priority   models.Priority      `json:"priority"`
	Technician string               `json:"technician"`
	Price      json.RawMessage      `json:"price"`
}

func ParseEditRequestReq(data []byte) (service.RequestEdit, error) {
	t := &EditRequestReq{}
	edit := service.RequestEdit{}

	err := json.Unmarshal(data, t)
	if err != nil {
		return edit, err
	}

	if len(t.Status) > 0 && !models.ValidRequestStatus(t.Status) {
		return edit, fmt.Errorf("invalid status supplied: %s", string(t.Status))
	}
	if len(t.Priority) > 0 && !models.ValidPriority(t.Priority) {
		return edit, fmt.Errorf("invalid priority supplied: %s", string(t.Priority))
	}
	if err = checkLengthLimit(t.Technician, "technician", 100); err != nil {
		return edit, err
	}

	edit.Status = t.Status
	edit.Priority = t.Priority
	edit.Technician = t.Technician
	edit.Price = coercePrice(t.Price)

	return edit, nil
}

// New offer request

type NewOfferReq struct {
	TechnicianName string          `json:"technicianName"`
	Price          json.RawMessage `json:"price"`
	Note           string          `json:"note"`
}

func ParseNewOfferReq(data []byte) (technicianName string, price float64, note string, err error) {
	t := &NewOfferReq{}

	err = json.Unmarshal(data, t)
	if err != nil {
		return "", 0, "", err
	}

	if len(t.TechnicianName) == 0 {
		return "", 0, "", fmt.Errorf("field 'technicianName' is required")
	}
	if len(t.Note) == 0 {
		return "", 0, "", fmt.Errorf("field 'note' is required")
	}
	if err = checkLengthLimit(t.TechnicianName, "technicianName", 100); err != nil {
		return "", 0, "", err
	}
	if err = checkLengthLimit(t.Note, "note", 500); err != nil {
		return "", 0, "", err
	}

	return t.TechnicianName, coercePrice(t.Price), t.Note, nil
}

// New customer request

type NewCustomerReq struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func ParseNewCustomerReq(data []byte) (*NewCustomerReq, error) {
	t := &NewCustomerReq{}

	err := json.Unmarshal(data, t)
	if err != nil {
		return nil, err
	}

	if len(t.Name) == 0 {
		return nil, fmt.Errorf("field 'name' is required")
	}
	if len(t.Phone) == 0 {
		return nil, fmt.Errorf("field 'phone' is required")
	}
	if err = checkLengthLimit(t.Name, "name", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.Phone, "phone", 100); err != nil {
		return nil, err
	}
	if err = checkLengthLimit(t.Address, "address", 500); err != nil {
		return nil, err
	}

	return t, nil
}

// Diagnosis request

type DiagnoseReq struct {
	DeviceType       string `json:"deviceType"`
	Brand            string `json:"brand"`
	Model            string `json:"model"`
	IssueDescription string `json:"issueDescription"`
}

func ParseDiagnoseReq(data []byte) (*DiagnoseReq, error) {
	t := &DiagnoseReq{}

	err := json.Unmarshal(data, t)
	if err != nil {
		return nil, err
	}

	if len(t.Brand) == 0 {
		return nil, fmt.Errorf("field 'brand' is required")
	}
	if len(t.IssueDescription) == 0 {
		return nil, fmt.Errorf("field 'issueDescription' is required")
	}

	return t, nil
}

// Service

// coercePrice turns whatever the intake supplied into a non-negative price.
// The field arrives as a number or a free-text string; malformed or negative
// input becomes 0 rather than an error.
func coercePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}

	var price float64
	if err := json.Unmarshal(raw, &price); err != nil {
		var str string
		if err = json.Unmarshal(raw, &str); err != nil {
			return 0
		}
		price, err = strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return 0
		}
	}

	if price < 0 {
		return 0
	}
	return price
}

func checkLengthLimit(str, fieldName string, limit int) error {
	if len(str) > limit {
		return fmt.Errorf("field '%s' exceeds length limit: %d / %d", fieldName, len(str), limit)
	}
	return nil
}
