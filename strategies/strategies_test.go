package strategies

import (
	"testing"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOStockbot/models"
	"gitlab.com/aoterocom/AOStockbot/providers/paper"
)

func seriesFromCloses(closes []float64) *techan.TimeSeries {
	timeSeries := techan.NewTimeSeries()
	day := 24 * time.Hour
	start := time.Unix(0, 0)

	for i, closePrice := range closes {
		openPrice := closePrice
		if i > 0 {
			openPrice = closes[i-1]
		}

		maxPrice := openPrice
		minPrice := closePrice
		if closePrice > openPrice {
			maxPrice = closePrice
			minPrice = openPrice
		}

		candle := techan.NewCandle(techan.NewTimePeriod(start.Add(day*time.Duration(i)), day))
		candle.OpenPrice = big.NewDecimal(openPrice)
		candle.ClosePrice = big.NewDecimal(closePrice)
		candle.MaxPrice = big.NewDecimal(maxPrice)
		candle.MinPrice = big.NewDecimal(minPrice)
		candle.Volume = big.NewDecimal(1000000)
		candle.TradeCount = 1000
		timeSeries.AddCandle(candle)
	}

	return timeSeries
}

func flatThenTrend(flatLength int, trendLength int, trendPct float64) []float64 {
	var closes []float64
	price := 100.0
	for i := 0; i < flatLength; i++ {
		closes = append(closes, price)
	}
	for i := 0; i < trendLength; i++ {
		price *= 1 + trendPct
		closes = append(closes, price)
	}
	return closes
}

func geometricSeries(length int, growthPct float64) []float64 {
	var closes []float64
	price := 50.0
	for i := 0; i < length; i++ {
		price *= 1 + growthPct
		closes = append(closes, price)
	}
	return closes
}

func TestMeanReversionFlagsOversoldAsBuy(t *testing.T) {
	strategy := NewMeanReversionStrategy("1d", 252)
	timeSeries := seriesFromCloses(flatThenTrend(60, 15, -0.02))

	signal := strategy.SignalFromSeries("AAPL", timeSeries)

	assert.NoError(t, signal.Validate())
	assert.Equal(t, models.MeanReversion, signal.Strategy)
	assert.Equal(t, models.BUY, signal.Direction)
	assert.GreaterOrEqual(t, signal.Strength, 0.35)
	assert.LessOrEqual(t, signal.Strength, 1.0)
	assert.Less(t, signal.SupportingMetrics["RSI"], 30.0)
	assert.Less(t, signal.SupportingMetrics["Z_Score"], -1.5)
}

func TestMeanReversionFlagsOverboughtAsSell(t *testing.T) {
	strategy := NewMeanReversionStrategy("1d", 252)
	timeSeries := seriesFromCloses(flatThenTrend(60, 15, 0.02))

	signal := strategy.SignalFromSeries("AAPL", timeSeries)

	assert.Equal(t, models.SELL, signal.Direction)
	assert.GreaterOrEqual(t, signal.Strength, 0.35)
	assert.Greater(t, signal.SupportingMetrics["RSI"], 70.0)
}

func TestMeanReversionShortSeriesYieldsEmptySignal(t *testing.T) {
	strategy := NewMeanReversionStrategy("1d", 252)
	timeSeries := seriesFromCloses(flatThenTrend(10, 10, -0.02))

	signal := strategy.SignalFromSeries("AAPL", timeSeries)

	assert.Equal(t, models.NONE, signal.Direction)
	assert.Equal(t, 0.0, signal.Strength)
}

func TestMomentumFlagsSteadyUptrendAsBuy(t *testing.T) {
	strategy := NewMomentumStrategy("1d", 260)
	timeSeries := seriesFromCloses(geometricSeries(260, 0.005))

	signal := strategy.SignalFromSeries("MSFT", timeSeries)

	assert.NoError(t, signal.Validate())
	assert.Equal(t, models.Momentum, signal.Strategy)
	assert.Equal(t, models.BUY, signal.Direction)
	// RSI level 0.1, MACD above signal 0.2, ROC 0.1, full MA alignment 0.3
	assert.InDelta(t, 0.7, signal.Strength, 1e-9)
	assert.Equal(t, 4.0, signal.SupportingMetrics["MA_Alignment"])
}

func TestMomentumFlagsFreshBreakdownAsSell(t *testing.T) {
	// A long-running geometric decline converges: MACD decays toward zero
	// faster than its signal line, so the histogram turns positive and the
	// MACD component stops firing. A fresh breakdown out of a flat base
	// keeps MACD diverging below its signal line.
	strategy := NewMomentumStrategy("1d", 260)
	timeSeries := seriesFromCloses(flatThenTrend(200, 15, -0.01))

	signal := strategy.SignalFromSeries("MSFT", timeSeries)

	assert.Equal(t, models.SELL, signal.Direction)
	// RSI level 0.1, MACD below signal 0.2, ROC 0.1, zero MA alignment 0.3
	assert.InDelta(t, 0.7, signal.Strength, 1e-9)
	assert.Equal(t, 0.0, signal.SupportingMetrics["MA_Alignment"])
	assert.Less(t, signal.SupportingMetrics["MACD_Histogram"], 0.0)
}

func TestMomentumConvergedDowntrendLosesMACDComponent(t *testing.T) {
	strategy := NewMomentumStrategy("1d", 260)
	timeSeries := seriesFromCloses(geometricSeries(260, -0.005))

	signal := strategy.SignalFromSeries("MSFT", timeSeries)

	// Still a sell, but only RSI, ROC and MA alignment fire
	assert.Equal(t, models.SELL, signal.Direction)
	assert.InDelta(t, 0.5, signal.Strength, 1e-9)
	assert.Greater(t, signal.SupportingMetrics["MACD_Histogram"], 0.0)
}

func TestMomentumShortSeriesYieldsEmptySignal(t *testing.T) {
	strategy := NewMomentumStrategy("1d", 260)
	timeSeries := seriesFromCloses(geometricSeries(30, 0.005))

	signal := strategy.SignalFromSeries("MSFT", timeSeries)

	assert.Equal(t, models.NONE, signal.Direction)
	assert.Equal(t, 0.0, signal.Strength)
}

func TestStrategiesAnalyzeThroughProvider(t *testing.T) {
	marketDataService := paper.NewPaperService()

	for _, name := range []string{"meanReversionStrategy", "momentumStrategy"} {
		strategy, err := StrategyFactory(name, "1d", 252)
		assert.NoError(t, err)

		signal, err := strategy.Analyze("AAPL", marketDataService)
		assert.NoError(t, err)
		assert.NoError(t, signal.Validate())
		assert.Equal(t, "AAPL", signal.Symbol)
		assert.Greater(t, signal.Price, 0.0)
	}
}

func TestStrategyFactoryRejectsUnknownName(t *testing.T) {
	_, err := StrategyFactory("neuralNetStrategy", "1d", 252)
	assert.Error(t, err)
}

func TestResolveDirection(t *testing.T) {
	direction, strength := resolveDirection(0.6, 0.2)
	assert.Equal(t, models.BUY, direction)
	assert.Equal(t, 0.6, strength)

	direction, strength = resolveDirection(0.1, 0.4)
	assert.Equal(t, models.SELL, direction)
	assert.Equal(t, 0.4, strength)

	direction, strength = resolveDirection(0.3, 0.3)
	assert.Equal(t, models.NONE, direction)
	assert.Equal(t, 0.0, strength)
}
