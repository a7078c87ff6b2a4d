package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

type bollingerPositionIndicator struct {
	base  techan.Indicator
	upper techan.Indicator
	lower techan.Indicator
}

// NewBollingerPositionIndicator locates the base indicator inside its
// Bollinger band: 0 at the lower band, 1 at the upper band.
func NewBollingerPositionIndicator(baseIndicator techan.Indicator, window int, sigma float64) techan.Indicator {
	return bollingerPositionIndicator{
		base:  baseIndicator,
		upper: techan.NewBollingerUpperBandIndicator(baseIndicator, window, sigma),
		lower: techan.NewBollingerLowerBandIndicator(baseIndicator, window, sigma),
	}
}

func (bp bollingerPositionIndicator) Calculate(index int) big.Decimal {
	upper := bp.upper.Calculate(index).Float()
	lower := bp.lower.Calculate(index).Float()
	width := upper - lower

	if width == 0.0 {
		return big.NewDecimal(0.5)
	}

	return big.NewDecimal((bp.base.Calculate(index).Float() - lower) / width)
}
