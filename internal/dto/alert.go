package dto

import (
	"time"

	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
)

// AlertResponse defines the data returned for a threshold alert.
type AlertResponse struct {
	AlertID   string    `json:"alertID"`
	Scope     string    `json:"scope"`
	RefID     string    `json:"refID"`
	Level     float64   `json:"level"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToAlertResponse converts a domain.Alert to AlertResponse DTO.
func ToAlertResponse(a *domain.Alert) AlertResponse {
	return AlertResponse{
		AlertID:   a.AlertID,
		Scope:     string(a.Scope),
		RefID:     a.RefID,
		Level:     a.Level,
		Type:      string(a.Type),
		CreatedAt: a.CreatedAt,
	}
}

// ToAlertResponses converts a slice of domain.Alert to []AlertResponse.
func ToAlertResponses(alerts []domain.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = ToAlertResponse(&alerts[i])
	}
	return responses
}
