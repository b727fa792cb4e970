package dto

import (
	"time"

	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/alert"
	"github.com/davidotu-spec/AegisFlow-AI/internal/domain/compliance"
)

// AlertDTO represents a security alert in API responses
type AlertDTO struct {
	ID             string    `json:"id"`
	Severity       string    `json:"severity"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Timestamp      time.Time `json:"timestamp"`
	AutoRemediated bool      `json:"autoRemediated"`
	Status         string    `json:"status"`
}

// AlertListQuery holds the alert list query parameters
type AlertListQuery struct {
	Severity string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
	Status   string `json:"status" validate:"omitempty,oneof=open fixed"`
}

// AlertSummaryDTO represents alert statistics
type AlertSummaryDTO struct {
	Total          int            `json:"total"`
	Open           int            `json:"open"`
	Fixed          int            `json:"fixed"`
	AutoRemediated int            `json:"autoRemediated"`
	OpenCritical   int            `json:"openCritical"`
	BySeverity     map[string]int `json:"bySeverity"`
}

// ComplianceDTO is the compliance sidebar
type ComplianceDTO struct {
	Frameworks []compliance.Framework `json:"frameworks"`
	Policies   []string               `json:"policies"`
}

func ToAlertDTO(a *alert.Alert) AlertDTO {
	return AlertDTO{
		ID:             a.ID,
		Severity:       string(a.Severity),
		Title:          a.Title,
		Description:    a.Description,
		Timestamp:      a.Timestamp,
		AutoRemediated: a.AutoRemediated,
		Status:         string(a.Status),
	}
}

func ToAlertDTOs(as []*alert.Alert) []AlertDTO {
	out := make([]AlertDTO, len(as))
	for i, a := range as {
		out[i] = ToAlertDTO(a)
	}
	return out
}

func ToAlertSummaryDTO(s alert.Summary) AlertSummaryDTO {
	by := make(map[string]int, len(s.BySeverity))
	for k, v := range s.BySeverity {
		by[string(k)] = v
	}
	return AlertSummaryDTO{
		Total:          s.Total,
		Open:           s.Open,
		Fixed:          s.Fixed,
		AutoRemediated: s.AutoRemediated,
		OpenCritical:   s.OpenCritical,
		BySeverity:     by,
	}
}

func ToComplianceDTO(p compliance.Posture) ComplianceDTO {
	return ComplianceDTO{Frameworks: p.Frameworks, Policies: p.Policies}
}
