package database

import (
	database "gitlab.com/aoterocom/AOStockbot/database/models"
	"gitlab.com/aoterocom/AOStockbot/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.AnalysisRun{}, &database.CombinedSignal{}, &database.StrategySignal{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

// SaveRun persists a full analysis run with its combined signals and the
// per-strategy records they derive from.
func (dbs *DBService) SaveRun(interval string, combinedSignals []models.CombinedSignal) uint {
	run := database.AnalysisRun{
		Interval:    interval,
		SymbolCount: len(combinedSignals),
	}

	for _, signal := range combinedSignals {
		run.Signals = append(run.Signals, database.CombinedSignal{
			Symbol:           signal.Symbol,
			Price:            signal.Price,
			CombinedStrength: signal.CombinedStrength,
			Direction:        string(signal.Direction),
			StrategyLabel:    string(signal.StrategyLabel),
			Confidence:       signal.Confidence,
			StrategySignals: []database.StrategySignal{{
				Symbol:     signal.MeanReversion.Symbol,
				Strategy:   string(signal.MeanReversion.Strategy),
				Direction:  string(signal.MeanReversion.Direction),
				Strength:   signal.MeanReversion.Strength,
				Confidence: signal.MeanReversion.Confidence,
			}, {
				Symbol:     signal.Momentum.Symbol,
				Strategy:   string(signal.Momentum.Strategy),
				Direction:  string(signal.Momentum.Direction),
				Strength:   signal.Momentum.Strength,
				Confidence: signal.Momentum.Confidence,
			}},
		})
	}

	dbs.DB.Create(&run)
	return run.ID
}

// GetRuns returns the latest runs, newest first.
func (dbs *DBService) GetRuns(limit int) []database.AnalysisRun {
	var runs []database.AnalysisRun
	dbs.DB.Preload("Signals").Preload("Signals.StrategySignals").
		Order("created_at desc").Limit(limit).Find(&runs)
	return runs
}
