package interfaces

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockbot/models"
)

type (
	SignalStrategy interface {
		Analyze(symbol string, marketDataService MarketDataService) (models.StrategySignal, error)
		SignalFromSeries(symbol string, timeSeries *techan.TimeSeries) models.StrategySignal
	}
)
