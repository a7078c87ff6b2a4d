package services

import (
	"sort"

	"gitlab.com/aoterocom/AOStockbot/models"
)

// SignalRankingService is purely mechanical: the combiner guarantees
// stable output for identical input, so ranking is just stable sorting
// and bucketing.
type SignalRankingService struct {
	TopN int
}

func NewSignalRankingService(topN int) SignalRankingService {
	if topN <= 0 {
		topN = 5
	}
	return SignalRankingService{
		TopN: topN,
	}
}

// SortedByStrength returns a copy sorted descending by combined strength.
// Ties keep their input order.
func (srs *SignalRankingService) SortedByStrength(signals []models.CombinedSignal) []models.CombinedSignal {
	sorted := make([]models.CombinedSignal, len(signals))
	copy(sorted, signals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CombinedStrength > sorted[j].CombinedStrength
	})
	return sorted
}

// TopSignals picks the strongest signals pointing in the given direction.
func (srs *SignalRankingService) TopSignals(signals []models.CombinedSignal, direction models.SignalDirection) []models.CombinedSignal {
	var bucket []models.CombinedSignal
	for _, signal := range signals {
		if signal.Direction == direction {
			bucket = append(bucket, signal)
		}
	}

	bucket = srs.SortedByStrength(bucket)
	if len(bucket) > srs.TopN {
		bucket = bucket[:srs.TopN]
	}
	return bucket
}

// TopByLabel picks the strongest signals carrying the given label.
func (srs *SignalRankingService) TopByLabel(signals []models.CombinedSignal, label models.StrategyLabel, n int) []models.CombinedSignal {
	var bucket []models.CombinedSignal
	for _, signal := range signals {
		if signal.StrategyLabel == label {
			bucket = append(bucket, signal)
		}
	}

	bucket = srs.SortedByStrength(bucket)
	if n > 0 && len(bucket) > n {
		bucket = bucket[:n]
	}
	return bucket
}

func (srs *SignalRankingService) LabelDistribution(signals []models.CombinedSignal) map[models.StrategyLabel]int {
	distribution := map[models.StrategyLabel]int{}
	for _, signal := range signals {
		distribution[signal.StrategyLabel]++
	}
	return distribution
}
