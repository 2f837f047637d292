package handler

import "time"

type recordEventRequest struct {
	Type     string `json:"type"     validate:"required,oneof=Visitor Incident Other"`
	Comments string `json:"comments" validate:"max=2000"`
}

type acceptedResponse struct {
	Message string `json:"message"`
}

type logEntryResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Line      string    `json:"line"`
}

type recentLogsResponse struct {
	Data []logEntryResponse `json:"data"`
}

type noticeResponse struct {
	Kind       string    `json:"kind"`
	ClientName string    `json:"client_name,omitempty"`
	Message    string    `json:"message"`
	At         time.Time `json:"at"`
}

type noticesResponse struct {
	Data []noticeResponse `json:"data"`
}

// ErrorResponse is the canonical error envelope for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}
