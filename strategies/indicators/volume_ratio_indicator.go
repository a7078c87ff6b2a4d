package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

type volumeRatioIndicator struct {
	volume techan.Indicator
	sma    techan.Indicator
}

// NewVolumeRatioIndicator compares current volume against its moving
// average. Values above 1 mean trading activity is picking up.
func NewVolumeRatioIndicator(series *techan.TimeSeries, window int) techan.Indicator {
	volume := techan.NewVolumeIndicator(series)
	return volumeRatioIndicator{
		volume: volume,
		sma:    techan.NewSimpleMovingAverage(volume, window),
	}
}

func (vr volumeRatioIndicator) Calculate(index int) big.Decimal {
	average := vr.sma.Calculate(index).Float()
	if average == 0.0 {
		return big.NewDecimal(0.0)
	}

	return big.NewDecimal(vr.volume.Calculate(index).Float() / average)
}
