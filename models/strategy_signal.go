package models

import (
	"github.com/go-playground/validator/v10"
)

type StrategyType string

const (
	MeanReversion StrategyType = "MEAN_REVERSION"
	Momentum      StrategyType = "MOMENTUM"
)

type SignalDirection string

const (
	BUY  SignalDirection = "BUY"
	SELL SignalDirection = "SELL"
	NONE SignalDirection = "NONE"
)

var validate = validator.New()

// StrategySignal is the per-stock output of a single strategy run.
// Strength is an unsigned magnitude; Direction carries the sign.
// Signals are created once per analysis run and never mutated.
type StrategySignal struct {
	Symbol            string          `validate:"required"`
	Strategy          StrategyType    `validate:"required"`
	Direction         SignalDirection `validate:"required"`
	Strength          float64         `validate:"gte=0,lte=1"`
	Confidence        float64         `validate:"gte=0,lte=1"`
	Price             float64         `validate:"gte=0"`
	SupportingMetrics map[string]float64
}

func NewStrategySignal(symbol string, strategy StrategyType, direction SignalDirection,
	strength float64, confidence float64, price float64, metrics map[string]float64) StrategySignal {
	return StrategySignal{
		Symbol:            symbol,
		Strategy:          strategy,
		Direction:         direction,
		Strength:          strength,
		Confidence:        confidence,
		Price:             price,
		SupportingMetrics: metrics,
	}
}

// NewEmptyStrategySignal stands in for a strategy that produced no record
// for the symbol: zero strength, direction NONE.
func NewEmptyStrategySignal(symbol string, strategy StrategyType) StrategySignal {
	return StrategySignal{
		Symbol:     symbol,
		Strategy:   strategy,
		Direction:  NONE,
		Strength:   0,
		Confidence: 0,
	}
}

// SignedStrength folds Direction into Strength: positive for BUY,
// negative for SELL, zero for NONE.
func (ss *StrategySignal) SignedStrength() float64 {
	switch ss.Direction {
	case BUY:
		return ss.Strength
	case SELL:
		return -ss.Strength
	default:
		return 0
	}
}

func (ss *StrategySignal) Validate() error {
	if err := validate.Struct(ss); err != nil {
		return NewValidationError(ss.Symbol, "%s", err.Error())
	}
	switch ss.Direction {
	case BUY, SELL, NONE:
	default:
		return NewValidationError(ss.Symbol, "unknown direction %q", ss.Direction)
	}
	switch ss.Strategy {
	case MeanReversion, Momentum:
	default:
		return NewValidationError(ss.Symbol, "unknown strategy %q", ss.Strategy)
	}
	return nil
}
