package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/service/archive"
	"github.com/secmon-lab/execdiag/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Archive holds CLI flags for the Cloud Storage report archive
type Archive struct {
	bucket string
	prefix string
}

// Flags returns CLI flags for archive configuration
func (a *Archive) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-bucket",
			Usage:       "Cloud Storage bucket receiving a copy of every generated report (disabled when empty)",
			Category:    "Archive",
			Sources:     cli.EnvVars("EXECDIAG_REPORT_BUCKET"),
			Destination: &a.bucket,
		},
		&cli.StringFlag{
			Name:        "report-prefix",
			Usage:       "Object name prefix for archived reports",
			Category:    "Archive",
			Sources:     cli.EnvVars("EXECDIAG_REPORT_PREFIX"),
			Destination: &a.prefix,
		},
	}
}

// IsConfigured reports whether an archive bucket is set
func (a *Archive) IsConfigured() bool {
	return a.bucket != ""
}

// Configure opens the archive. It returns nil when no bucket is configured.
// The caller is responsible for calling Close() on the returned archive.
func (a *Archive) Configure(ctx context.Context) (*archive.GCS, error) {
	if !a.IsConfigured() {
		logging.Default().Info("Report archive disabled")
		return nil, nil
	}

	var opts []archive.Option
	if a.prefix != "" {
		opts = append(opts, archive.WithPrefix(a.prefix))
	}
	gcs, err := archive.New(ctx, a.bucket, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize report archive")
	}

	logging.Default().Info("Report archive enabled", "bucket", a.bucket, "prefix", a.prefix)
	return gcs, nil
}
