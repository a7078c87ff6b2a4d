package strategies

import (
	"fmt"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockbot/helpers"
	"gitlab.com/aoterocom/AOStockbot/interfaces"
	"gitlab.com/aoterocom/AOStockbot/models"
	"gitlab.com/aoterocom/AOStockbot/strategies/indicators"
)

// MeanReversionStrategy scores oversold/overbought conditions: RSI
// extremes, Bollinger band position, price z-score, volume confirmation
// and short-term pullbacks.
type MeanReversionStrategy struct {
	Interval string
	Lookback int
}

func NewMeanReversionStrategy(interval string, lookback int) MeanReversionStrategy {
	return MeanReversionStrategy{
		Interval: interval,
		Lookback: lookback,
	}
}

func (s *MeanReversionStrategy) Analyze(symbol string, marketDataService interfaces.MarketDataService) (models.StrategySignal, error) {
	timeSeries, err := marketDataService.GetSeries(symbol, s.Interval, s.Lookback)
	if err != nil {
		return models.StrategySignal{}, fmt.Errorf("mean reversion analysis for %s: %w", symbol, err)
	}
	return s.SignalFromSeries(symbol, timeSeries), nil
}

func (s *MeanReversionStrategy) SignalFromSeries(symbol string, timeSeries *techan.TimeSeries) models.StrategySignal {
	lastCandleIndex := len(timeSeries.Candles) - 1
	if lastCandleIndex+1 < minCandles {
		return models.NewEmptyStrategySignal(symbol, models.MeanReversion)
	}

	closePrices := techan.NewClosePriceIndicator(timeSeries)
	rsiIndicator := techan.NewRelativeStrengthIndexIndicator(closePrices, 14)
	bbPosition := indicators.NewBollingerPositionIndicator(closePrices, 20, 2)
	zScore := indicators.NewZScoreIndicator(closePrices, 50)
	volumeRatio := indicators.NewVolumeRatioIndicator(timeSeries, 20)
	roc5 := indicators.NewRateOfChangeIndicator(closePrices, 5)

	lastRSI := rsiIndicator.Calculate(lastCandleIndex).Float()
	lastBBPosition := bbPosition.Calculate(lastCandleIndex).Float()
	lastZScore := zScore.Calculate(lastCandleIndex).Float()
	lastVolumeRatio := volumeRatio.Calculate(lastCandleIndex).Float()
	lastROC5 := roc5.Calculate(lastCandleIndex).Float()
	lastPrice := closePrices.Calculate(lastCandleIndex).Float()

	buyStrength := 0.0
	sellStrength := 0.0
	componentsFired := 0

	// RSI oversold/overbought, the primary indicator
	if lastRSI < 30 {
		buyStrength += 0.35
		componentsFired++
	} else if lastRSI < 40 {
		buyStrength += 0.2
		componentsFired++
	}

	if lastRSI > 70 {
		sellStrength += 0.35
		componentsFired++
	} else if lastRSI > 60 {
		sellStrength += 0.2
		componentsFired++
	}

	// Bollinger band position
	if lastBBPosition < 0.1 {
		buyStrength += 0.25
		componentsFired++
	} else if lastBBPosition < 0.2 {
		buyStrength += 0.15
		componentsFired++
	}

	if lastBBPosition > 0.9 {
		sellStrength += 0.25
		componentsFired++
	} else if lastBBPosition > 0.8 {
		sellStrength += 0.15
		componentsFired++
	}

	// Statistical deviation from the 50 candle mean
	if lastZScore < -2 {
		buyStrength += 0.25
		componentsFired++
	} else if lastZScore < -1.5 {
		buyStrength += 0.15
		componentsFired++
	}

	if lastZScore > 2 {
		sellStrength += 0.25
		componentsFired++
	} else if lastZScore > 1.5 {
		sellStrength += 0.15
		componentsFired++
	}

	// High volume only confirms a side that already scored
	if lastVolumeRatio > 1.5 {
		if buyStrength > 0 {
			buyStrength += 0.1
			componentsFired++
		}
		if sellStrength > 0 {
			sellStrength += 0.1
			componentsFired++
		}
	}

	// Short-term move against the mean, contrarian reading
	if lastROC5 < -5 {
		buyStrength += 0.05
		componentsFired++
	} else if lastROC5 > 5 {
		sellStrength += 0.05
		componentsFired++
	}

	buyStrength = helpers.Clamp(buyStrength, 0, 1)
	sellStrength = helpers.Clamp(sellStrength, 0, 1)

	direction, strength := resolveDirection(buyStrength, sellStrength)

	return models.NewStrategySignal(symbol, models.MeanReversion, direction, strength,
		helpers.Clamp(float64(componentsFired)/5.0, 0, 1), lastPrice,
		map[string]float64{
			"RSI":          lastRSI,
			"BB_Position":  lastBBPosition,
			"Z_Score":      lastZScore,
			"Volume_Ratio": lastVolumeRatio,
			"ROC_5":        lastROC5,
		})
}
