package domain

// LocationKind tags the outcome of one position-fix attempt.
type LocationKind string

const (
	LocationSuccess     LocationKind = "success"
	LocationLowAccuracy LocationKind = "low_accuracy"
	LocationUnavailable LocationKind = "unavailable"
	LocationTimeout     LocationKind = "timeout"
	LocationSkipped     LocationKind = "skipped_by_user"
)

// LocationResult is the immutable outcome of a single acquisition attempt.
// Failures are values, never errors: a caller proceeds with a degraded
// check-in rather than failing the whole action.
type LocationResult struct {
	kind           LocationKind
	lat            float64
	lon            float64
	accuracyMeters float64
}

func SuccessResult(lat, lon, accuracyMeters float64) LocationResult {
	return LocationResult{
		kind:           LocationSuccess,
		lat:            lat,
		lon:            lon,
		accuracyMeters: accuracyMeters,
	}
}

func LowAccuracyResult(accuracyMeters float64) LocationResult {
	return LocationResult{
		kind:           LocationLowAccuracy,
		accuracyMeters: accuracyMeters,
	}
}

func UnavailableResult() LocationResult {
	return LocationResult{kind: LocationUnavailable}
}

func TimeoutResult() LocationResult {
	return LocationResult{kind: LocationTimeout}
}

func SkippedByUserResult() LocationResult {
	return LocationResult{kind: LocationSkipped}
}

func (r LocationResult) Kind() LocationKind {
	return r.kind
}

func (r LocationResult) Lat() float64 {
	return r.lat
}

func (r LocationResult) Lon() float64 {
	return r.lon
}

func (r LocationResult) AccuracyMeters() float64 {
	return r.accuracyMeters
}

func (r LocationResult) IsSuccess() bool {
	return r.kind == LocationSuccess
}
