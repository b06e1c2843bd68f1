package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/cli/config"
	"github.com/secmon-lab/execdiag/pkg/repository/memory"
	"github.com/secmon-lab/execdiag/pkg/service/report"
	"github.com/secmon-lab/execdiag/pkg/usecase"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

func cmdRender() *cli.Command {
	var outDir string
	var concurrency int
	var appCfg config.App

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Aliases:     []string{"o"},
			Usage:       "Directory receiving the rendered PDFs",
			Value:       ".",
			Destination: &outDir,
		},
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Number of reports rendered in parallel",
			Value:       4,
			Destination: &concurrency,
		},
	}
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:      "render",
		Usage:     "Render PDF reports from answer files (JSON or TOML)",
		ArgsUsage: "<answer file>...",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				return goerr.New("at least one answer file is required")
			}

			cfg, err := appCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load app configuration")
			}

			uc := usecase.New(memory.New(),
				usecase.WithRenderer(report.New(report.WithBranding(cfg.ReportBranding()))),
			)

			outputs, err := renderFiles(ctx, uc, files, outDir, concurrency)
			if err != nil {
				return err
			}
			for _, out := range outputs {
				logging.Default().Info("Report written", "path", out)
			}
			return nil
		},
	}
}

// outputPath maps an answer file to its PDF path inside dir
func outputPath(dir, file string) string {
	base := filepath.Base(file)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".pdf")
}

// renderFiles renders every answer file into dir with at most concurrency
// renders in flight. Paths are returned in input order.
func renderFiles(ctx context.Context, uc *usecase.UseCases, files []string, dir string, concurrency int) ([]string, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	outputs := make([]string, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	for i, file := range files {
		eg.Go(func() error {
			sheet, err := loadAnswerSheet(file)
			if err != nil {
				return err
			}

			rep, err := uc.Report.RenderAnswers(ctx, sheet)
			if err != nil {
				return goerr.Wrap(err, "failed to render answer file", goerr.V("path", file))
			}

			out := outputPath(dir, file)
			if err := os.WriteFile(out, rep.Data, 0600); err != nil {
				return goerr.Wrap(err, "failed to write report", goerr.V("path", out))
			}
			outputs[i] = out
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
