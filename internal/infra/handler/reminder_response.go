package handler

import (
	"github.com/montagezeit/reminder-engine/internal/app"
)

type LocationResponse struct {
	Status         string  `json:"status"`
	Lat            float64 `json:"lat,omitempty"`
	Lon            float64 `json:"lon,omitempty"`
	AccuracyMeters float64 `json:"accuracy_meters,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func FromLocationOutput(output app.LocationOutput) LocationResponse {
	return LocationResponse{
		Status:         output.Status,
		Lat:            output.Lat,
		Lon:            output.Lon,
		AccuracyMeters: output.AccuracyMeters,
	}
}
