package main

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/analysis"
	"github.com/lotworks/lotsplit/internal/model"
	"github.com/lotworks/lotsplit/pkg/parcel"
)

var (
	lookupPrice   float64
	lookupLivable float64
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [address]",
	Short: "Analyze a single address via the city parcel service",
	Long: `Resolves an address through the parcel, zoning, and historic-district
layers, then runs the subdivision analysis on the result. When the city
service is unreachable the record degrades to an estimate and the analysis
still runs.

The parcel layer carries no pricing, so --price is required.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		address := args[0]

		opts := []parcel.Option{
			parcel.WithRateLimit(cfg.Parcel.RateLimitRPS),
			parcel.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.Parcel.TimeoutSecs) * time.Second}),
		}
		if cfg.Parcel.BaseURL != "" {
			opts = append(opts, parcel.WithBaseURL(cfg.Parcel.BaseURL))
		}
		client := parcel.NewClient(opts...)

		rec, err := client.Lookup(ctx, address)
		if err != nil {
			return eris.Wrap(err, "lookup: parcel chain")
		}

		p := propertyFromParcel(rec)
		p.Price = lookupPrice
		p.LivableArea = lookupLivable
		if p.LotArea <= 0 {
			return eris.Errorf("lookup: no lot area for %q; the parcel layer had no record", address)
		}

		zap.L().Info("lookup: parcel resolved",
			zap.String("address", address),
			zap.String("source", string(p.Source)),
			zap.String("zoning", p.ZoningCode),
			zap.Bool("historic", p.Historic),
		)

		result, err := analysis.AnalyzeOne(p, cfg.Analysis)
		if err != nil {
			return eris.Wrap(err, "lookup: analyze")
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(result), "lookup: encode result")
	},
}

// propertyFromParcel maps a parcel record to the engine's input type.
func propertyFromParcel(rec *parcel.Record) model.Property {
	p := model.Property{
		Address:    rec.Address,
		LotArea:    rec.LotAreaSqFt,
		ZoningCode: rec.ZoningCode,
		Historic:   rec.Historic,
		Source:     model.SourceParcelAPI,
	}
	if !rec.Matched {
		p.Source = model.SourceEstimated
	}
	if rec.Width > 0 && rec.Depth > 0 {
		p.Dimensions = &model.LotDimensions{
			Width:  rec.Width,
			Depth:  rec.Depth,
			Source: model.DimensionExplicit,
		}
	}
	return p
}

func init() {
	lookupCmd.Flags().Float64Var(&lookupPrice, "price", 0, "purchase price in dollars (required)")
	lookupCmd.Flags().Float64Var(&lookupLivable, "livable", 0, "livable area in sq ft")
	_ = lookupCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(lookupCmd)
}
