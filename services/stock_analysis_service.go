package services

import (
	"fmt"

	"gitlab.com/aoterocom/AOStockbot/database"
	"gitlab.com/aoterocom/AOStockbot/helpers"
	"gitlab.com/aoterocom/AOStockbot/interfaces"
	"gitlab.com/aoterocom/AOStockbot/models"
)

// StockAnalysisService runs both strategies over a symbol universe and
// feeds the paired records to the combiner. Output order follows the
// input universe, no implicit sort.
type StockAnalysisService struct {
	marketDataService  interfaces.MarketDataService
	meanReversion      interfaces.SignalStrategy
	momentum           interfaces.SignalStrategy
	combinationService SignalCombinationService
	databaseService    *database.DBService
	interval           string
}

func NewStockAnalysisService(marketDataService interfaces.MarketDataService,
	meanReversion interfaces.SignalStrategy, momentum interfaces.SignalStrategy,
	databaseService *database.DBService, interval string) StockAnalysisService {
	return StockAnalysisService{
		marketDataService:  marketDataService,
		meanReversion:      meanReversion,
		momentum:           momentum,
		combinationService: NewSignalCombinationService(),
		databaseService:    databaseService,
		interval:           interval,
	}
}

// AnalyzeSymbols produces one CombinedSignal per symbol, in symbol order.
// A strategy failure for one symbol degrades that strategy to a zero NONE
// record and never aborts the run.
func (sas *StockAnalysisService) AnalyzeSymbols(symbols []string) []models.CombinedSignal {
	helpers.Logger.Infoln(fmt.Sprintf("🔄 Combining strategy results for %d symbols", len(symbols)))

	pairs := make([]models.SignalPair, 0, len(symbols))
	for _, symbol := range symbols {
		mrSignal, err := sas.meanReversion.Analyze(symbol, sas.marketDataService)
		if err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("⚠️ %s", err.Error()))
			mrSignal = models.NewEmptyStrategySignal(symbol, models.MeanReversion)
		}

		momSignal, err := sas.momentum.Analyze(symbol, sas.marketDataService)
		if err != nil {
			helpers.Logger.Warnln(fmt.Sprintf("⚠️ %s", err.Error()))
			momSignal = models.NewEmptyStrategySignal(symbol, models.Momentum)
		}

		pairs = append(pairs, models.SignalPair{
			Symbol:        symbol,
			MeanReversion: mrSignal,
			Momentum:      momSignal,
		})
	}

	combinedSignals := sas.combinationService.CombineAll(pairs)

	if sas.databaseService != nil {
		runID := sas.databaseService.SaveRun(sas.interval, combinedSignals)
		helpers.Logger.Debugln(fmt.Sprintf("💾 Analysis run %d recorded (%d signals)", runID, len(combinedSignals)))
	}

	return combinedSignals
}
