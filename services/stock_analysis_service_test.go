package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOStockbot/providers/paper"
	"gitlab.com/aoterocom/AOStockbot/strategies"
)

func newAnalysisService() StockAnalysisService {
	marketDataService := paper.NewPaperService()
	meanReversionStrategy := strategies.NewMeanReversionStrategy("1d", 252)
	momentumStrategy := strategies.NewMomentumStrategy("1d", 252)
	return NewStockAnalysisService(marketDataService, &meanReversionStrategy, &momentumStrategy, nil, "1d")
}

func TestAnalyzeSymbolsKeepsUniverseOrder(t *testing.T) {
	analysisService := newAnalysisService()
	symbols := []string{"MSFT", "AAPL", "GOOGL", "AMZN"}

	combinedSignals := analysisService.AnalyzeSymbols(symbols)

	assert.Len(t, combinedSignals, len(symbols))
	for i, symbol := range symbols {
		assert.Equal(t, symbol, combinedSignals[i].Symbol)
	}
}

func TestAnalyzeSymbolsIsDeterministic(t *testing.T) {
	analysisService := newAnalysisService()
	symbols := []string{"AAPL", "MSFT"}

	first := analysisService.AnalyzeSymbols(symbols)
	second := analysisService.AnalyzeSymbols(symbols)

	assert.Equal(t, first, second)
}

func TestAnalyzeSymbolsPermutationPermutesOutput(t *testing.T) {
	analysisService := newAnalysisService()

	forward := analysisService.AnalyzeSymbols([]string{"AAPL", "MSFT", "GOOGL"})
	backward := analysisService.AnalyzeSymbols([]string{"GOOGL", "MSFT", "AAPL"})

	assert.Equal(t, forward[0], backward[2])
	assert.Equal(t, forward[1], backward[1])
	assert.Equal(t, forward[2], backward[0])
}

func TestAnalyzeSymbolsEmitsValidSignals(t *testing.T) {
	analysisService := newAnalysisService()

	combinedSignals := analysisService.AnalyzeSymbols([]string{"AAPL", "MSFT", "GOOGL", "NVDA", "KO"})

	for _, signal := range combinedSignals {
		assert.GreaterOrEqual(t, signal.CombinedStrength, 0.0)
		assert.LessOrEqual(t, signal.CombinedStrength, 1.0)
		assert.NotEmpty(t, signal.StrategyLabel)
		assert.Contains(t, []float64{0.9, 0.75, 0.6, 0.4, 0.3}, signal.Confidence)
		assert.NoError(t, signal.MeanReversion.Validate())
		assert.NoError(t, signal.Momentum.Validate())
	}
}
