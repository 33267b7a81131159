package app

import "github.com/montagezeit/reminder-engine/internal/domain"

type LocationOutput struct {
	Status         string
	Lat            float64
	Lon            float64
	AccuracyMeters float64
}

func FromLocationResult(result domain.LocationResult) LocationOutput {
	out := LocationOutput{
		Status: string(result.Kind()),
	}

	switch result.Kind() {
	case domain.LocationSuccess:
		out.Lat = result.Lat()
		out.Lon = result.Lon()
		out.AccuracyMeters = result.AccuracyMeters()
	case domain.LocationLowAccuracy:
		out.AccuracyMeters = result.AccuracyMeters()
	case domain.LocationUnavailable, domain.LocationTimeout, domain.LocationSkipped:
	}

	return out
}
