package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lotworks/lotsplit/internal/ingest"
)

var shploadOut string

var shploadCmd = &cobra.Command{
	Use:   "shpload [shapefile]",
	Short: "Convert a county parcel shapefile to a property CSV",
	Long: `Extracts the DBF attribute table from a parcel shapefile and writes a
CSV that the analyze command accepts. Parcels without an address or lot
area are dropped. Appraisal values stand in for prices when present.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := ingest.ParseShapefile(args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if shploadOut != "" {
			f, err := os.Create(shploadOut)
			if err != nil {
				return eris.Wrapf(err, "shpload: create %s", shploadOut)
			}
			defer f.Close()
			out = f
		}

		w := csv.NewWriter(out)
		header := []string{"address", "price", "lot size", "zoning", "square feet"}
		if err := w.Write(header); err != nil {
			return eris.Wrap(err, "shpload: write header")
		}
		for _, p := range props {
			row := []string{
				p.Address,
				formatNum(p.Price),
				formatNum(p.LotArea),
				p.ZoningCode,
				formatNum(p.LivableArea),
			}
			if err := w.Write(row); err != nil {
				return eris.Wrap(err, "shpload: write row")
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return eris.Wrap(err, "shpload: flush")
		}

		zap.L().Info("shapefile converted",
			zap.String("shapefile", args[0]),
			zap.Int("parcels", len(props)),
		)
		return nil
	},
}

func formatNum(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func init() {
	shploadCmd.Flags().StringVar(&shploadOut, "out", "", "output CSV path (default stdout)")
	rootCmd.AddCommand(shploadCmd)
}
