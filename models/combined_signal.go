package models

type StrategyLabel string

const (
	LabelConsensus     StrategyLabel = "CONSENSUS"
	LabelMomentum      StrategyLabel = "MOMENTUM"
	LabelMeanReversion StrategyLabel = "MEAN_REVERSION"
	LabelContrarian    StrategyLabel = "CONTRARIAN"
	LabelWeak          StrategyLabel = "WEAK"
)

// CombinedSignal is the unified per-stock signal derived from exactly one
// mean reversion record and one momentum record. One per symbol per run,
// immutable after creation.
type CombinedSignal struct {
	Symbol           string
	Price            float64
	CombinedStrength float64
	Direction        SignalDirection
	StrategyLabel    StrategyLabel
	Confidence       float64
	MeanReversion    StrategySignal
	Momentum         StrategySignal
}

// SignalPair groups the two per-strategy records for one symbol, in the
// order the symbol appeared in the analysis universe.
type SignalPair struct {
	Symbol        string
	MeanReversion StrategySignal
	Momentum      StrategySignal
}
