package database

import "gorm.io/gorm"

type CombinedSignal struct {
	gorm.Model
	AnalysisRunID    uint
	Symbol           string
	Price            float64
	CombinedStrength float64
	Direction        string
	StrategyLabel    string
	Confidence       float64
	StrategySignals  []StrategySignal
}
