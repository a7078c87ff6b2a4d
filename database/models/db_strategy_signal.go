package database

import "gorm.io/gorm"

type StrategySignal struct {
	gorm.Model
	CombinedSignalID uint
	Symbol           string
	Strategy         string
	Direction        string
	Strength         float64
	Confidence       float64
}
