package matching

// Band routes a match to automated acceptance, human review or mandatory
// human handling.
type Band string

const (
	BandAuto   Band = "AUTO"
	BandReview Band = "REVIEW"
	BandHuman  Band = "HUMAN"
)

// Band thresholds on the fused score.
const (
	autoThreshold   = 0.80
	reviewThreshold = 0.60
)

// Classify maps a fused score in [0, 1] to a confidence band. Total and
// monotonic: a higher score never yields a lower-confidence band.
func Classify(finalScore float64) Band {
	switch {
	case finalScore >= autoThreshold:
		return BandAuto
	case finalScore >= reviewThreshold:
		return BandReview
	default:
		return BandHuman
	}
}
