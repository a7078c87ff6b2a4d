package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

type rateOfChangeIndicator struct {
	base     techan.Indicator
	lookback int
}

// NewRateOfChangeIndicator returns the percentage change of the base
// indicator over the lookback period.
func NewRateOfChangeIndicator(baseIndicator techan.Indicator, lookback int) techan.Indicator {
	return rateOfChangeIndicator{
		base:     baseIndicator,
		lookback: lookback,
	}
}

func (roc rateOfChangeIndicator) Calculate(index int) big.Decimal {
	if index < roc.lookback {
		return big.NewDecimal(0.0)
	}

	previous := roc.base.Calculate(index - roc.lookback).Float()
	if previous == 0.0 {
		return big.NewDecimal(0.0)
	}

	current := roc.base.Calculate(index).Float()
	return big.NewDecimal((current - previous) / previous * 100)
}
