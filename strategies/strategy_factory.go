package strategies

import (
	"fmt"

	"gitlab.com/aoterocom/AOStockbot/interfaces"
	"gitlab.com/aoterocom/AOStockbot/models"
)

// minCandles is the shortest series either strategy will score. Shorter
// series yield a zero strength NONE signal.
const minCandles = 50

func StrategyFactory(strategyName string, interval string, lookback int) (interfaces.SignalStrategy, error) {

	switch strategyName {
	case "meanReversionStrategy":
		meanReversionStrategy := NewMeanReversionStrategy(interval, lookback)
		return interfaces.SignalStrategy(&meanReversionStrategy), nil
	case "momentumStrategy":
		momentumStrategy := NewMomentumStrategy(interval, lookback)
		return interfaces.SignalStrategy(&momentumStrategy), nil
	default:
		return nil, fmt.Errorf("%s is not a known strategy", strategyName)
	}

}

// resolveDirection folds a buy score and a sell score into a single
// directional signal. Equal non-zero scores cancel out to NONE.
func resolveDirection(buyStrength float64, sellStrength float64) (models.SignalDirection, float64) {
	if buyStrength > sellStrength {
		return models.BUY, buyStrength
	}
	if sellStrength > buyStrength {
		return models.SELL, sellStrength
	}
	return models.NONE, 0
}
