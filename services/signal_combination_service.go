package services

import (
	"fmt"
	"math"

	"gitlab.com/aoterocom/AOStockbot/helpers"
	"gitlab.com/aoterocom/AOStockbot/models"
)

// SignalCombinationService blends one mean reversion record and one
// momentum record per symbol into a single classified signal. Combine and
// Classify are pure: same input, same output, no I/O.
type SignalCombinationService struct {
}

func NewSignalCombinationService() SignalCombinationService {
	return SignalCombinationService{}
}

// Combine folds the two strategy records into a CombinedSignal. Strength
// is treated as unsigned magnitude with Direction carrying the sign. The
// threshold cascade is order sensitive: first match wins.
func (scs *SignalCombinationService) Combine(mr models.StrategySignal, mom models.StrategySignal) (models.CombinedSignal, error) {
	if err := mr.Validate(); err != nil {
		return models.CombinedSignal{}, err
	}
	if err := mom.Validate(); err != nil {
		return models.CombinedSignal{}, err
	}
	if mr.Symbol != mom.Symbol {
		return models.CombinedSignal{}, models.NewValidationError(mr.Symbol,
			"paired with signal for %s", mom.Symbol)
	}
	if mr.Strategy != models.MeanReversion || mom.Strategy != models.Momentum {
		return models.CombinedSignal{}, models.NewValidationError(mr.Symbol,
			"expected a %s/%s pair, got %s/%s", models.MeanReversion, models.Momentum, mr.Strategy, mom.Strategy)
	}

	mrSigned := mr.SignedStrength()
	momSigned := mom.SignedStrength()
	mrMagnitude := math.Abs(mrSigned)
	momMagnitude := math.Abs(momSigned)

	var combinedStrength float64
	direction := models.NONE

	switch {
	// Both strategies agree with conviction: boost the average
	case mrMagnitude > 0.5 && momMagnitude > 0.5 && sameSign(mrSigned, momSigned):
		combinedStrength = (mrMagnitude + momMagnitude) / 2 * 1.2
		direction = directionOf(mrSigned)

	// Momentum breakout with mean reversion support
	case momMagnitude > 0.7 && mrMagnitude > 0.2 && !oppositeSign(mrSigned, momSigned):
		combinedStrength = momMagnitude*0.8 + mrMagnitude*0.2
		direction = directionOf(momSigned)

	// One strategy strong on its own; momentum wins magnitude ties
	case math.Max(mrMagnitude, momMagnitude) > 0.6:
		combinedStrength = math.Max(mrMagnitude, momMagnitude) * 0.8
		if momMagnitude >= mrMagnitude {
			direction = directionOf(momSigned)
		} else {
			direction = directionOf(mrSigned)
		}

	// Weak signals: dampened average, NONE on disagreement
	default:
		combinedStrength = (mrMagnitude + momMagnitude) / 2 * 0.6
		if oppositeSign(mrSigned, momSigned) || (mrSigned == 0 && momSigned == 0) {
			direction = models.NONE
		} else if mrSigned != 0 {
			direction = directionOf(mrSigned)
		} else {
			direction = directionOf(momSigned)
		}
	}

	price := mr.Price
	if price == 0 {
		price = mom.Price
	}

	combined := models.CombinedSignal{
		Symbol:           mr.Symbol,
		Price:            price,
		CombinedStrength: helpers.Clamp(roundStrength(combinedStrength), 0, 1),
		Direction:        direction,
		MeanReversion:    mr,
		Momentum:         mom,
	}
	combined.StrategyLabel = scs.Classify(mr, mom, combined)
	combined.Confidence = scs.ConfidenceFor(combined.StrategyLabel, combined.CombinedStrength)

	return combined, nil
}

// Classify derives the categorical label, first match wins.
func (scs *SignalCombinationService) Classify(mr models.StrategySignal, mom models.StrategySignal, combined models.CombinedSignal) models.StrategyLabel {
	mrActive := mr.Direction != models.NONE
	momActive := mom.Direction != models.NONE

	switch {
	case mrActive && momActive && mr.Direction == mom.Direction && mr.Strength > 0.5 && mom.Strength > 0.5:
		return models.LabelConsensus
	case mrActive && momActive && mr.Direction != mom.Direction:
		return models.LabelContrarian
	case mom.Strength > mr.Strength && mom.Strength > 0.4:
		return models.LabelMomentum
	case mr.Strength > mom.Strength && mr.Strength > 0.4:
		return models.LabelMeanReversion
	default:
		return models.LabelWeak
	}
}

// ConfidenceFor is a fixed lookup, not a derived statistic. Downstream
// reports depend on these exact values. Comparisons are strict: a
// combined strength of exactly 0.7 lands in the 0.6 tier.
func (scs *SignalCombinationService) ConfidenceFor(label models.StrategyLabel, combinedStrength float64) float64 {
	switch {
	case label == models.LabelConsensus:
		return 0.9
	case label == models.LabelContrarian:
		return 0.4
	case combinedStrength > 0.7:
		return 0.75
	case combinedStrength > 0.4:
		return 0.6
	default:
		return 0.3
	}
}

// CombineAll processes an ordered batch. Output keeps input order. A
// symbol that fails validation is skipped with a warning and never aborts
// the rest of the batch.
func (scs *SignalCombinationService) CombineAll(pairs []models.SignalPair) []models.CombinedSignal {
	combinedSignals := make([]models.CombinedSignal, 0, len(pairs))
	for _, pair := range pairs {
		mr := pair.MeanReversion
		if mr.Symbol == "" {
			mr = models.NewEmptyStrategySignal(pair.Symbol, models.MeanReversion)
		}
		mom := pair.Momentum
		if mom.Symbol == "" {
			mom = models.NewEmptyStrategySignal(pair.Symbol, models.Momentum)
		}

		combined, err := scs.Combine(mr, mom)
		if err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("⚠️ Skipping %s: %s", pair.Symbol, err.Error()))
			continue
		}
		combinedSignals = append(combinedSignals, combined)
	}
	return combinedSignals
}

// roundStrength keeps blends at a stable decimal precision. The
// confidence tiers compare against exact boundaries, so accumulated
// float error (0.8*0.8 + 0.3*0.2 != 0.7) must not leak into them.
func roundStrength(strength float64) float64 {
	return math.Round(strength*1e12) / 1e12
}

func sameSign(a float64, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

func oppositeSign(a float64, b float64) bool {
	return (a > 0 && b < 0) || (a < 0 && b > 0)
}

func directionOf(signedStrength float64) models.SignalDirection {
	if signedStrength > 0 {
		return models.BUY
	}
	if signedStrength < 0 {
		return models.SELL
	}
	return models.NONE
}
