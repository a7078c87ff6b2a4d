package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOStockbot/database"
	"gitlab.com/aoterocom/AOStockbot/helpers"
	"gitlab.com/aoterocom/AOStockbot/interfaces"
	"gitlab.com/aoterocom/AOStockbot/providers/paper"
	"gitlab.com/aoterocom/AOStockbot/services"
	"gitlab.com/aoterocom/AOStockbot/strategies"
)

func init() {
	cwd, _ := os.Getwd()
	err := godotenv.Load(cwd + "/conf.env")
	if err != nil {
		log.Warnln("Error loading conf.env file", err)
	}
}

func main() {
	app := &cli.App{
		Name:  "AOStockbot",
		Usage: "combined mean reversion + momentum stock signal engine",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "run both strategies over the symbol universe and emit combined signals",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "symbols", Usage: "comma separated symbol list (overrides env)"},
					&cli.StringFlag{Name: "strategies", Usage: "comma separated strategy pair (overrides env)"},
					&cli.IntFlag{Name: "top", Usage: "signals per top bucket", Value: 0},
					&cli.StringFlag{Name: "output", Usage: "report output directory"},
				},
				Action: runAnalysis,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		helpers.Logger.Fatalln(err)
	}
}

func runAnalysis(c *cli.Context) error {
	helpers.Logger.Infoln("🚀 Combined strategy analysis: mean reversion + momentum")

	interval := os.Getenv("interval")
	if interval == "" {
		interval = "1d"
	}

	lookback, _ := strconv.Atoi(os.Getenv("lookbackCandles"))
	if lookback <= 0 {
		lookback = 252
	}

	topN := c.Int("top")
	if topN <= 0 {
		topN, _ = strconv.Atoi(os.Getenv("topSignals"))
	}

	outputDir := c.String("output")
	if outputDir == "" {
		outputDir = os.Getenv("outputDir")
	}
	if outputDir == "" {
		outputDir = "output"
	}

	var databaseService *database.DBService
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled {
		var err error
		databaseService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"),
			os.Getenv("databaseName"), os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
	}

	meanReversionStrategy, momentumStrategy, err := resolveStrategies(c.String("strategies"), interval, lookback)
	if err != nil {
		return err
	}

	marketDataService := interfaces.MarketDataService(paper.NewPaperService())

	symbols, err := resolveSymbols(c.String("symbols"), marketDataService)
	if err != nil {
		return err
	}

	analysisService := services.NewStockAnalysisService(marketDataService,
		meanReversionStrategy, momentumStrategy, databaseService, interval)
	combinedSignals := analysisService.AnalyzeSymbols(symbols)

	rankingService := services.NewSignalRankingService(topN)
	reportService := services.NewReportService(outputDir, rankingService)
	reportService.LogSummary(combinedSignals)
	if err := reportService.WriteCSVReports(combinedSignals); err != nil {
		return err
	}

	helpers.Logger.Infoln(fmt.Sprintf("🎉 Analysis complete: %d stocks", len(combinedSignals)))
	return nil
}

// resolveStrategies builds the strategy pair from the flag, falling back
// to env. The engine always pairs one mean reversion strategy with one
// momentum strategy, in either order.
func resolveStrategies(flagValue string, interval string, lookback int) (interfaces.SignalStrategy, interfaces.SignalStrategy, error) {
	strategiesString := flagValue
	if strategiesString == "" {
		strategiesString = os.Getenv("strategies")
	}
	if strategiesString == "" {
		strategiesString = "meanReversionStrategy,momentumStrategy"
	}

	strategyNames := strings.Split(strategiesString, ",")
	if len(strategyNames) != 2 {
		return nil, nil, fmt.Errorf("expected a strategy pair, got %q", strategiesString)
	}

	var meanReversionStrategy, momentumStrategy interfaces.SignalStrategy
	for _, strategyName := range strategyNames {
		strategy, err := strategies.StrategyFactory(strings.TrimSpace(strategyName), interval, lookback)
		if err != nil {
			return nil, nil, err
		}
		switch strategy.(type) {
		case *strategies.MeanReversionStrategy:
			meanReversionStrategy = strategy
		case *strategies.MomentumStrategy:
			momentumStrategy = strategy
		}
	}
	if meanReversionStrategy == nil || momentumStrategy == nil {
		return nil, nil, fmt.Errorf("%q must pair a mean reversion strategy with a momentum strategy", strategiesString)
	}

	return meanReversionStrategy, momentumStrategy, nil
}

func resolveSymbols(flagValue string, marketDataService interfaces.MarketDataService) ([]string, error) {
	if flagValue != "" {
		return strings.Split(flagValue, ","), nil
	}

	universeSize, _ := strconv.Atoi(os.Getenv("universeSize"))
	return marketDataService.GetSymbols(universeSize)
}
