package interfaces

import (
	"github.com/sdcoffey/techan"
)

// MarketDataService supplies candle series for the analysis universe.
// Live fetching, caching and retries live behind this interface, outside
// the signal engine.
type MarketDataService interface {
	GetSymbols(limit int) ([]string, error)
	GetSeries(symbol string, interval string, limit int) (*techan.TimeSeries, error)
}
