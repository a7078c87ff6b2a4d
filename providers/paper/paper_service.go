package paper

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	str2duration "github.com/xhit/go-str2duration/v2"
)

var defaultSymbols = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "BRK-B", "JPM", "V",
	"JNJ", "WMT", "PG", "UNH", "HD", "DIS", "BAC", "XOM", "PFE", "KO",
}

// PaperService is a deterministic synthetic market data source: a seeded
// random walk per symbol. It stands in for a live stock feed during
// offline runs and tests.
type PaperService struct {
	symbols []string
}

func NewPaperService() *PaperService {
	symbols := defaultSymbols
	if symbolsEnv := os.Getenv("symbols"); symbolsEnv != "" {
		symbols = strings.Split(symbolsEnv, ",")
	}
	return &PaperService{
		symbols: symbols,
	}
}

func (ps *PaperService) GetSymbols(limit int) ([]string, error) {
	if limit <= 0 || limit > len(ps.symbols) {
		limit = len(ps.symbols)
	}
	return ps.symbols[:limit], nil
}

func (ps *PaperService) GetSeries(symbol string, interval string, limit int) (*techan.TimeSeries, error) {
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("series length %d requested for %s", limit, symbol)
	}

	period, err := str2duration.ParseDuration(interval)
	if err != nil {
		return nil, fmt.Errorf("unparseable interval %q: %w", interval, err)
	}

	// Seed from the symbol so every call returns the same walk
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(symbol))
	rng := rand.New(rand.NewSource(int64(hasher.Sum64())))

	price := 20 + rng.Float64()*180
	drift := (rng.Float64() - 0.45) * 0.004
	volatility := 0.005 + rng.Float64()*0.02

	timeSeries := techan.NewTimeSeries()
	start := time.Unix(0, 0).Add(period)

	for i := 0; i < limit; i++ {
		openPrice := price
		closePrice := openPrice * (1 + drift + rng.NormFloat64()*volatility)
		if closePrice < 1 {
			closePrice = 1
		}

		maxPrice := openPrice
		minPrice := closePrice
		if closePrice > openPrice {
			maxPrice = closePrice
			minPrice = openPrice
		}

		candle := techan.NewCandle(techan.NewTimePeriod(start.Add(period*time.Duration(i)), period))
		candle.OpenPrice = big.NewDecimal(openPrice)
		candle.ClosePrice = big.NewDecimal(closePrice)
		candle.MaxPrice = big.NewDecimal(maxPrice * (1 + rng.Float64()*0.005))
		candle.MinPrice = big.NewDecimal(minPrice * (1 - rng.Float64()*0.005))
		candle.Volume = big.NewDecimal(1000000 * (0.5 + rng.Float64()))
		candle.TradeCount = uint(1000 + rng.Intn(9000))
		timeSeries.AddCandle(candle)

		price = closePrice
	}

	return timeSeries, nil
}
