package domain

import "time"

// Staged location acquisition: a fast low-power attempt first, then an
// optional high-accuracy retry when the first result and the remaining
// timeout budget justify it.

const (
	// MaxAllowedAccuracyMeters is the accuracy bound beyond which a raw fix
	// is classified as low accuracy instead of a success.
	MaxAllowedAccuracyMeters = 3000.0

	// GoodStageOneAccuracyMeters is the accuracy at which a stage-one
	// success is good enough to skip the high-accuracy retry.
	GoodStageOneAccuracyMeters = 1200.0

	// GoodLastKnownAccuracyMeters is the accuracy at which a cached
	// last-known position short-circuits live acquisition entirely.
	GoodLastKnownAccuracyMeters = 1500.0

	StageOneMaxTimeout = 7 * time.Second
	StageOneMinTimeout = 2500 * time.Millisecond
	MinStageTwoTimeout = 3 * time.Second
	MinRequestTimeout  = 1 * time.Second
)

// NormalizeTotalTimeout floors the caller's budget so an effectively
// zero-timeout acquisition cannot be requested.
func NormalizeTotalTimeout(total time.Duration) time.Duration {
	if total < MinRequestTimeout {
		return MinRequestTimeout
	}

	return total
}

// StageOneTimeout gives the low-power attempt half the total budget,
// clamped to [2.5s, 7s] and never more than the total itself.
func StageOneTimeout(total time.Duration) time.Duration {
	half := total / 2
	if half < StageOneMinTimeout {
		half = StageOneMinTimeout
	}

	if half > StageOneMaxTimeout {
		half = StageOneMaxTimeout
	}

	if half > total {
		return total
	}

	return half
}

func ShouldUseLastKnown(lastKnown LocationResult) bool {
	return lastKnown.kind == LocationSuccess && lastKnown.accuracyMeters <= GoodLastKnownAccuracyMeters
}

func ShouldTryHighAccuracy(stageOne LocationResult) bool {
	switch stageOne.kind {
	case LocationSuccess:
		return stageOne.accuracyMeters > GoodStageOneAccuracyMeters
	case LocationLowAccuracy, LocationTimeout, LocationUnavailable:
		return true
	case LocationSkipped:
		return false
	default:
		return false
	}
}

func HasEnoughTimeForStageTwo(remaining time.Duration) bool {
	return remaining >= MinStageTwoTimeout
}

// ChooseBetterResult merges the two stage outcomes. Any success wins, stage
// two first. Between two low-accuracy results the numerically smaller
// accuracy wins. A stage-one Unavailable is preserved over a stage-two
// Timeout: "no provider" is a stronger negative signal than "ran out of
// time".
func ChooseBetterResult(stageOne, stageTwo LocationResult) LocationResult {
	switch {
	case stageTwo.kind == LocationSuccess:
		return stageTwo
	case stageOne.kind == LocationSuccess:
		return stageOne
	case stageTwo.kind == LocationLowAccuracy && stageOne.kind == LocationLowAccuracy:
		if stageTwo.accuracyMeters <= stageOne.accuracyMeters {
			return stageTwo
		}

		return stageOne
	case stageTwo.kind == LocationLowAccuracy:
		return stageTwo
	case stageOne.kind == LocationLowAccuracy:
		return stageOne
	case stageOne.kind == LocationUnavailable:
		return stageOne
	default:
		return stageTwo
	}
}

// ToLocationResult classifies a raw fix by its reported accuracy.
func ToLocationResult(lat, lon, accuracyMeters float64) LocationResult {
	if accuracyMeters > MaxAllowedAccuracyMeters {
		return LowAccuracyResult(accuracyMeters)
	}

	return SuccessResult(lat, lon, accuracyMeters)
}
