package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gitlab.com/aoterocom/AOStockbot/helpers"
	"gitlab.com/aoterocom/AOStockbot/models"
)

// ReportService writes the CSV artifacts of a run and logs a summary.
// The summary goes through helpers.Logger, which forwards to Telegram
// when configured.
type ReportService struct {
	outputDir      string
	rankingService SignalRankingService
}

func NewReportService(outputDir string, rankingService SignalRankingService) ReportService {
	return ReportService{
		outputDir:      outputDir,
		rankingService: rankingService,
	}
}

var csvHeader = []string{"Symbol", "Current_Price", "MR_Signal", "MR_Direction", "Mom_Signal",
	"Mom_Direction", "Combined_Strength", "Direction", "Strategy_Type", "Confidence_Score"}

func (rs *ReportService) WriteCSVReports(signals []models.CombinedSignal) error {
	if err := os.MkdirAll(rs.outputDir, 0755); err != nil {
		return err
	}

	if err := rs.writeCSV("combined_strategy_analysis.csv", signals); err != nil {
		return err
	}

	labelFiles := []struct {
		filename string
		label    models.StrategyLabel
		topN     int
	}{
		{"consensus_signals.csv", models.LabelConsensus, 10},
		{"momentum_dominant_signals.csv", models.LabelMomentum, 10},
		{"mean_reversion_dominant_signals.csv", models.LabelMeanReversion, 10},
		{"contrarian_signals.csv", models.LabelContrarian, 5},
	}

	for _, labelFile := range labelFiles {
		bucket := rs.rankingService.TopByLabel(signals, labelFile.label, labelFile.topN)
		if err := rs.writeCSV(labelFile.filename, bucket); err != nil {
			return err
		}
	}

	helpers.Logger.Infoln(fmt.Sprintf("💾 Reports saved to %s", rs.outputDir))
	return nil
}

func (rs *ReportService) writeCSV(filename string, signals []models.CombinedSignal) error {
	f, err := os.Create(filepath.Join(rs.outputDir, filename))
	if err != nil {
		return err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, signal := range signals {
		record := []string{
			signal.Symbol,
			formatFloat(signal.Price),
			formatFloat(signal.MeanReversion.Strength),
			string(signal.MeanReversion.Direction),
			formatFloat(signal.Momentum.Strength),
			string(signal.Momentum.Direction),
			formatFloat(signal.CombinedStrength),
			string(signal.Direction),
			string(signal.StrategyLabel),
			formatFloat(signal.Confidence),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func (rs *ReportService) LogSummary(signals []models.CombinedSignal) {
	helpers.Logger.Infoln(fmt.Sprintf("🎯 Combined strategy analysis: %d stocks", len(signals)))

	for _, topBuy := range rs.rankingService.TopSignals(signals, models.BUY) {
		helpers.Logger.Infoln(fmt.Sprintf("🟢 BUY %s: $%.2f | Signal %.3f | %s | Confidence %.2f",
			topBuy.Symbol, topBuy.Price, topBuy.CombinedStrength, topBuy.StrategyLabel, topBuy.Confidence))
	}

	for _, topSell := range rs.rankingService.TopSignals(signals, models.SELL) {
		helpers.Logger.Infoln(fmt.Sprintf("🔴 SELL %s: $%.2f | Signal %.3f | %s | Confidence %.2f",
			topSell.Symbol, topSell.Price, topSell.CombinedStrength, topSell.StrategyLabel, topSell.Confidence))
	}

	distribution := rs.rankingService.LabelDistribution(signals)
	for _, label := range []models.StrategyLabel{models.LabelConsensus, models.LabelMomentum,
		models.LabelMeanReversion, models.LabelContrarian, models.LabelWeak} {
		count := distribution[label]
		if count == 0 {
			continue
		}
		helpers.Logger.Infoln(fmt.Sprintf("📊 %s: %d stocks (%.1f%%)", label, count,
			float64(count)/float64(len(signals))*100))
	}

	var strengths []float64
	var signedStrengths []float64
	for _, signal := range signals {
		strengths = append(strengths, signal.CombinedStrength)
		switch signal.Direction {
		case models.BUY:
			signedStrengths = append(signedStrengths, signal.CombinedStrength)
		case models.SELL:
			signedStrengths = append(signedStrengths, -signal.CombinedStrength)
		}
	}

	mean := helpers.Mean(strengths)
	helpers.Logger.Debugln(fmt.Sprintf("📈 Strength mean %.3f, std dev %.3f, buy/sell ratio %.2f",
		mean, helpers.StdDev(strengths, mean), helpers.PositiveNegativeRatio(signedStrengths)))
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 4, 64)
}
