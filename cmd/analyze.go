package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/analysis"
	"github.com/lotworks/lotsplit/internal/ingest"
	"github.com/lotworks/lotsplit/internal/model"
)

var (
	analyzeInput   string
	analyzeFormat  string // input format: csv, mls, xlsx, shp
	analyzeSheet   string
	analyzeOutput  string
	analyzeOutFmt  string // output format: table, csv, json
	analyzePersist bool
	analyzeTop     int

	analyzeMaxPrice   float64
	analyzeMinLot     float64
	analyzeTarget     float64
	analyzeRenovation float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a property export for lot-split opportunities",
	Long: `Reads a property export, runs the subdivision and financial analysis on
every row, and prints the results ranked by score.

Input formats:
  csv   generic listing export with heuristic column matching (default)
  mls   MLS-flavored export (lot size in acres, zoning inferred)
  xlsx  Excel workbook, same column heuristics as csv
  shp   county parcel shapefile (attributes only)

Examples:
  lotsplit analyze --input listings.csv
  lotsplit analyze --input mls_export.csv --format mls --max-price 750000
  lotsplit analyze --input parcels.shp --format shp --out results.csv --out-format csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		props, err := loadProperties()
		if err != nil {
			return err
		}
		zap.L().Info("analyze: properties loaded",
			zap.Int("count", len(props)),
			zap.String("format", analyzeFormat),
		)

		acfg := analysisConfigFromFlags()
		results := analysis.AnalyzeBatch(ctx, props, acfg)

		if analyzeTop > 0 && analyzeTop < len(results) {
			results = results[:analyzeTop]
		}

		if analyzePersist {
			st, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			run, err := st.SaveRun(ctx, acfg, results, len(props))
			if err != nil {
				return eris.Wrap(err, "analyze: save run")
			}
			fmt.Fprintf(os.Stderr, "run saved: %s\n", run.ID)
		}

		return writeResults(results)
	},
}

func loadProperties() ([]model.Property, error) {
	switch analyzeFormat {
	case "csv", "":
		return ingest.ParseCSVFile(analyzeInput)
	case "mls":
		f, err := os.Open(analyzeInput)
		if err != nil {
			return nil, eris.Wrapf(err, "analyze: open %s", analyzeInput)
		}
		defer f.Close()
		return ingest.ParseMLSCSV(f)
	case "xlsx":
		return ingest.ParseXLSX(analyzeInput, ingest.XLSXOptions{SheetName: analyzeSheet})
	case "shp":
		return ingest.ParseShapefile(analyzeInput)
	default:
		return nil, eris.Errorf("unknown input format %q", analyzeFormat)
	}
}

func analysisConfigFromFlags() model.AnalysisConfig {
	acfg := cfg.Analysis
	if analyzeMaxPrice > 0 {
		acfg.MaxPrice = analyzeMaxPrice
	}
	if analyzeMinLot > 0 {
		acfg.MinLotArea = analyzeMinLot
	}
	if analyzeTarget > 0 {
		acfg.TargetProfitPct = analyzeTarget
	}
	if analyzeRenovation > 0 {
		acfg.RenovationBudget = analyzeRenovation
	}
	return acfg.WithDefaults()
}

func writeResults(results []model.AnalysisResult) error {
	out := os.Stdout
	if analyzeOutput != "" {
		f, err := os.Create(analyzeOutput)
		if err != nil {
			return eris.Wrapf(err, "analyze: create %s", analyzeOutput)
		}
		defer f.Close()
		out = f
	}

	switch analyzeOutFmt {
	case "csv":
		return analysis.WriteCSV(out, results)
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(results), "analyze: encode json")
	case "table", "":
		printTable(out, results)
		return nil
	default:
		return eris.Errorf("unknown output format %q", analyzeOutFmt)
	}
}

func printTable(out *os.File, results []model.AnalysisResult) {
	if len(results) == 0 {
		fmt.Fprintln(out, "no properties with analysis results")
		return
	}
	fmt.Fprintf(out, "%-40s %12s %10s %10s %12s %8s %-10s %5s\n",
		"ADDRESS", "PRICE", "LOT", "NEW LOT", "PROFIT", "MARGIN", "STATUS", "SCORE")
	fmt.Fprintln(out, strings.Repeat("-", 114))
	for _, r := range results {
		addr := r.Property.Address
		if len(addr) > 38 {
			addr = addr[:35] + "..."
		}
		fmt.Fprintf(out, "%-40s %12.0f %10.0f %10.0f %12.0f %7.1f%% %-10s %5d\n",
			addr, r.Property.Price, r.Property.LotArea,
			r.Feasibility.NewLotArea, r.Financials.Profit,
			r.Financials.ProfitMarginPct, r.Status, r.Score)
	}
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "input file (required)")
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "csv", "input format: csv, mls, xlsx, shp")
	analyzeCmd.Flags().StringVar(&analyzeSheet, "sheet", "", "worksheet name for xlsx input")
	analyzeCmd.Flags().StringVar(&analyzeOutput, "out", "", "output file (default stdout)")
	analyzeCmd.Flags().StringVar(&analyzeOutFmt, "out-format", "table", "output format: table, csv, json")
	analyzeCmd.Flags().BoolVar(&analyzePersist, "persist", false, "save the run to the configured store")
	analyzeCmd.Flags().IntVar(&analyzeTop, "top", 0, "keep only the N best results (0 = all)")
	analyzeCmd.Flags().Float64Var(&analyzeMaxPrice, "max-price", 0, "maximum purchase price (overrides config)")
	analyzeCmd.Flags().Float64Var(&analyzeMinLot, "min-lot", 0, "minimum lot area in sq ft (overrides config)")
	analyzeCmd.Flags().Float64Var(&analyzeTarget, "target-profit", 0, "target profit margin percent (overrides config)")
	analyzeCmd.Flags().Float64Var(&analyzeRenovation, "renovation-budget", 0, "renovation budget in dollars (overrides config)")
	_ = analyzeCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(analyzeCmd)
}
