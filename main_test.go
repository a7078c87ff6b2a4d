package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOStockbot/strategies"
)

func TestResolveStrategiesDefaultsToBothStrategies(t *testing.T) {
	t.Setenv("strategies", "")

	meanReversionStrategy, momentumStrategy, err := resolveStrategies("", "1d", 252)

	assert.NoError(t, err)
	assert.IsType(t, &strategies.MeanReversionStrategy{}, meanReversionStrategy)
	assert.IsType(t, &strategies.MomentumStrategy{}, momentumStrategy)
}

func TestResolveStrategiesAcceptsEitherOrder(t *testing.T) {
	meanReversionStrategy, momentumStrategy, err := resolveStrategies("momentumStrategy, meanReversionStrategy", "1d", 252)

	assert.NoError(t, err)
	assert.IsType(t, &strategies.MeanReversionStrategy{}, meanReversionStrategy)
	assert.IsType(t, &strategies.MomentumStrategy{}, momentumStrategy)
}

func TestResolveStrategiesReadsEnvWhenFlagIsEmpty(t *testing.T) {
	t.Setenv("strategies", "meanReversionStrategy,momentumStrategy")

	meanReversionStrategy, momentumStrategy, err := resolveStrategies("", "1d", 252)

	assert.NoError(t, err)
	assert.NotNil(t, meanReversionStrategy)
	assert.NotNil(t, momentumStrategy)
}

func TestResolveStrategiesRejectsBadPairs(t *testing.T) {
	_, _, err := resolveStrategies("momentumStrategy", "1d", 252)
	assert.Error(t, err)

	_, _, err = resolveStrategies("momentumStrategy,momentumStrategy", "1d", 252)
	assert.Error(t, err)

	_, _, err = resolveStrategies("neuralNetStrategy,momentumStrategy", "1d", 252)
	assert.Error(t, err)
}
