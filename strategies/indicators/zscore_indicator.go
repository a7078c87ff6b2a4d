package indicators

import (
	"math"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

type zScoreIndicator struct {
	base   techan.Indicator
	sma    techan.Indicator
	window int
}

// NewZScoreIndicator measures how many windowed standard deviations the
// base indicator sits away from its windowed mean.
func NewZScoreIndicator(baseIndicator techan.Indicator, window int) techan.Indicator {
	return zScoreIndicator{
		base:   baseIndicator,
		sma:    techan.NewSimpleMovingAverage(baseIndicator, window),
		window: window,
	}
}

func (z zScoreIndicator) Calculate(index int) big.Decimal {
	mean := z.sma.Calculate(index).Float()

	start := index - z.window + 1
	if start < 0 {
		start = 0
	}

	total := 0.0
	count := 0
	for i := start; i <= index; i++ {
		diff := z.base.Calculate(i).Float() - mean
		total += diff * diff
		count++
	}

	if count < 2 {
		return big.NewDecimal(0.0)
	}

	std := math.Sqrt(total / float64(count-1))
	if std == 0.0 {
		return big.NewDecimal(0.0)
	}

	return big.NewDecimal((z.base.Calculate(index).Float() - mean) / std)
}
