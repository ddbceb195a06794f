package main

import (
	"path"
	"path/filepath"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lotworks/lotsplit/internal/fetch"
)

var (
	fetchOutDir      string
	fetchConcurrency int
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url...]",
	Short: "Download listing exports or parcel data over HTTP or FTP",
	Long: `Downloads one or more files into --dir, dispatching on URL scheme.
County appraisal districts publish bulk parcel exports on plain FTP; MLS
exports come over HTTPS. Each file is named after the last URL path
segment.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dl := fetch.NewDownloader(fetch.Options{
			Timeout:   time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			UserAgent: cfg.Fetch.UserAgent,
		})

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(fetchConcurrency)

		for _, rawURL := range args {
			rawURL := rawURL
			g.Go(func() error {
				name := path.Base(rawURL)
				if name == "" || name == "." || name == "/" {
					return eris.Errorf("fetch: cannot derive filename from %q", rawURL)
				}
				dest := filepath.Join(fetchOutDir, name)

				n, err := dl.DownloadToFile(ctx, rawURL, dest)
				if err != nil {
					return eris.Wrapf(err, "fetch: %s", rawURL)
				}
				zap.L().Info("downloaded",
					zap.String("url", rawURL),
					zap.String("dest", dest),
					zap.Int64("bytes", n),
				)
				return nil
			})
		}

		return g.Wait()
	},
}

func init() {
	fetchCmd.Flags().StringVar(&fetchOutDir, "dir", ".", "output directory")
	fetchCmd.Flags().IntVar(&fetchConcurrency, "concurrency", 4, "parallel downloads")
	rootCmd.AddCommand(fetchCmd)
}
