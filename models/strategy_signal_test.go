package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignedStrength(t *testing.T) {
	buy := NewStrategySignal("AAPL", MeanReversion, BUY, 0.6, 0.8, 100, nil)
	sell := NewStrategySignal("AAPL", MeanReversion, SELL, 0.6, 0.8, 100, nil)
	none := NewStrategySignal("AAPL", MeanReversion, NONE, 0.6, 0.8, 100, nil)

	assert.Equal(t, 0.6, buy.SignedStrength())
	assert.Equal(t, -0.6, sell.SignedStrength())
	assert.Equal(t, 0.0, none.SignedStrength())
}

func TestValidateAcceptsWellFormedSignal(t *testing.T) {
	signal := NewStrategySignal("AAPL", Momentum, BUY, 0.5, 0.5, 187.3, map[string]float64{"RSI": 61.2})
	assert.NoError(t, signal.Validate())
}

func TestValidateRejectsOutOfRangeStrength(t *testing.T) {
	signal := NewStrategySignal("AAPL", Momentum, BUY, 1.5, 0.5, 187.3, nil)
	err := signal.Validate()

	assert.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateRejectsNegativeConfidence(t *testing.T) {
	signal := NewStrategySignal("AAPL", Momentum, BUY, 0.5, -0.1, 187.3, nil)
	assert.Error(t, signal.Validate())
}

func TestValidateRejectsEmptySymbol(t *testing.T) {
	signal := NewStrategySignal("", Momentum, BUY, 0.5, 0.5, 187.3, nil)
	assert.Error(t, signal.Validate())
}

func TestValidateRejectsUnknownDirection(t *testing.T) {
	signal := NewStrategySignal("AAPL", Momentum, SignalDirection("HOLD"), 0.5, 0.5, 187.3, nil)
	assert.Error(t, signal.Validate())
}

func TestEmptySignalIsValidAndDirectionless(t *testing.T) {
	signal := NewEmptyStrategySignal("AAPL", MeanReversion)

	assert.NoError(t, signal.Validate())
	assert.Equal(t, NONE, signal.Direction)
	assert.Equal(t, 0.0, signal.Strength)
}
