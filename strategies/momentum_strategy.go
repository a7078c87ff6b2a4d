package strategies

import (
	"fmt"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStockbot/helpers"
	"gitlab.com/aoterocom/AOStockbot/interfaces"
	"gitlab.com/aoterocom/AOStockbot/models"
	"gitlab.com/aoterocom/AOStockbot/strategies/indicators"
)

// MomentumStrategy scores trend continuation: RSI level crossings, MACD
// crossover, rate of change, moving average alignment and volume momentum.
type MomentumStrategy struct {
	Interval string
	Lookback int
}

func NewMomentumStrategy(interval string, lookback int) MomentumStrategy {
	return MomentumStrategy{
		Interval: interval,
		Lookback: lookback,
	}
}

func (s *MomentumStrategy) Analyze(symbol string, marketDataService interfaces.MarketDataService) (models.StrategySignal, error) {
	timeSeries, err := marketDataService.GetSeries(symbol, s.Interval, s.Lookback)
	if err != nil {
		return models.StrategySignal{}, fmt.Errorf("momentum analysis for %s: %w", symbol, err)
	}
	return s.SignalFromSeries(symbol, timeSeries), nil
}

func (s *MomentumStrategy) SignalFromSeries(symbol string, timeSeries *techan.TimeSeries) models.StrategySignal {
	lastCandleIndex := len(timeSeries.Candles) - 1
	if lastCandleIndex+1 < minCandles {
		return models.NewEmptyStrategySignal(symbol, models.Momentum)
	}

	closePrices := techan.NewClosePriceIndicator(timeSeries)
	rsiIndicator := techan.NewRelativeStrengthIndexIndicator(closePrices, 14)
	macdIndicator := techan.NewMACDIndicator(closePrices, 12, 26)
	macdSignalLine := techan.NewEMAIndicator(macdIndicator, 9)
	macdHistogram := techan.NewMACDHistogramIndicator(macdIndicator, 9)
	roc5 := indicators.NewRateOfChangeIndicator(closePrices, 5)
	volumeRatio := indicators.NewVolumeRatioIndicator(timeSeries, 20)

	lastRSI := rsiIndicator.Calculate(lastCandleIndex).Float()
	prevRSI := rsiIndicator.Calculate(lastCandleIndex - 1).Float()
	lastMACD := macdIndicator.Calculate(lastCandleIndex).Float()
	prevMACD := macdIndicator.Calculate(lastCandleIndex - 1).Float()
	lastMACDSignal := macdSignalLine.Calculate(lastCandleIndex).Float()
	prevMACDSignal := macdSignalLine.Calculate(lastCandleIndex - 1).Float()
	lastHistogram := macdHistogram.Calculate(lastCandleIndex).Float()
	lastROC5 := roc5.Calculate(lastCandleIndex).Float()
	lastVolumeRatio := volumeRatio.Calculate(lastCandleIndex).Float()
	lastPrice := closePrices.Calculate(lastCandleIndex).Float()

	buyStrength := 0.0
	sellStrength := 0.0
	componentsFired := 0

	// RSI level crossings
	if lastRSI > 60 && prevRSI <= 60 {
		buyStrength += 0.3
		componentsFired++
	} else if lastRSI > 50 && prevRSI <= 50 {
		buyStrength += 0.2
		componentsFired++
	} else if lastRSI > 55 {
		buyStrength += 0.1
		componentsFired++
	}

	if lastRSI < 40 && prevRSI >= 40 {
		sellStrength += 0.3
		componentsFired++
	} else if lastRSI < 50 && prevRSI >= 50 {
		sellStrength += 0.2
		componentsFired++
	} else if lastRSI < 45 {
		sellStrength += 0.1
		componentsFired++
	}

	// MACD crossover beats a mere positive histogram
	if lastMACD > lastMACDSignal && prevMACD <= prevMACDSignal {
		buyStrength += 0.4
		componentsFired++
	} else if lastMACD > lastMACDSignal && lastHistogram > 0 {
		buyStrength += 0.2
		componentsFired++
	}

	if lastMACD < lastMACDSignal && prevMACD >= prevMACDSignal {
		sellStrength += 0.4
		componentsFired++
	} else if lastMACD < lastMACDSignal && lastHistogram < 0 {
		sellStrength += 0.2
		componentsFired++
	}

	// Price rate of change
	if lastROC5 > 5 {
		buyStrength += 0.2
		componentsFired++
	} else if lastROC5 > 2 {
		buyStrength += 0.1
		componentsFired++
	} else if lastROC5 < -5 {
		sellStrength += 0.2
		componentsFired++
	} else if lastROC5 < -2 {
		sellStrength += 0.1
		componentsFired++
	}

	// Moving average alignment. Windows longer than the series are skipped.
	maSignals := 0
	maWindows := 0
	for _, window := range []int{10, 20, 50, 200} {
		if lastCandleIndex+1 < window {
			continue
		}
		maWindows++
		sma := techan.NewSimpleMovingAverage(closePrices, window)
		if lastPrice > sma.Calculate(lastCandleIndex).Float() {
			maSignals++
		}
	}

	if maWindows > 0 {
		if maSignals >= 3 {
			buyStrength += 0.3
			componentsFired++
		} else if maSignals >= 2 {
			buyStrength += 0.1
			componentsFired++
		}

		if maSignals <= 1 {
			sellStrength += 0.3
			componentsFired++
		} else if maSignals <= 2 {
			sellStrength += 0.1
			componentsFired++
		}
	}

	// Volume backs whichever way price is moving
	if lastVolumeRatio > 1.5 {
		if lastROC5 > 0 {
			buyStrength += 0.1
		} else {
			sellStrength += 0.1
		}
		componentsFired++
	}

	buyStrength = helpers.Clamp(buyStrength, 0, 1)
	sellStrength = helpers.Clamp(sellStrength, 0, 1)

	direction, strength := resolveDirection(buyStrength, sellStrength)

	return models.NewStrategySignal(symbol, models.Momentum, direction, strength,
		helpers.Clamp(float64(componentsFired)/5.0, 0, 1), lastPrice,
		map[string]float64{
			"RSI":            lastRSI,
			"MACD":           lastMACD,
			"MACD_Signal":    lastMACDSignal,
			"MACD_Histogram": lastHistogram,
			"ROC_5":          lastROC5,
			"Volume_Ratio":   lastVolumeRatio,
			"MA_Alignment":   float64(maSignals),
		})
}
