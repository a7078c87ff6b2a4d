package database

import "gorm.io/gorm"

type AnalysisRun struct {
	gorm.Model
	Interval    string
	SymbolCount int
	Signals     []CombinedSignal
}
