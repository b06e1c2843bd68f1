package archive

import (
	"context"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/execdiag/pkg/domain/interfaces"
)

const pdfContentType = "application/pdf"

// GCS stores reports as objects in a Cloud Storage bucket
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.ReportArchive = &GCS{}

type Option func(*GCS)

// WithPrefix places every object under prefix
func WithPrefix(prefix string) Option {
	return func(g *GCS) {
		g.prefix = prefix
	}
}

// New creates a GCS archive using application default credentials
func New(ctx context.Context, bucket string, opts ...Option) (*GCS, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	g := &GCS{
		client: client,
		bucket: bucket,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// ObjectName returns the object path a report is stored at
func (g *GCS) ObjectName(name string) string {
	if g.prefix == "" {
		return name
	}
	return path.Join(g.prefix, name)
}

// Store uploads data as a PDF object
func (g *GCS) Store(ctx context.Context, name string, data []byte) error {
	object := g.ObjectName(name)

	w := g.client.Bucket(g.bucket).Object(object).NewWriter(ctx)
	w.ContentType = pdfContentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to upload report",
			goerr.V("bucket", g.bucket),
			goerr.V("object", object))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize report upload",
			goerr.V("bucket", g.bucket),
			goerr.V("object", object))
	}
	return nil
}

// Close releases the storage client
func (g *GCS) Close() error {
	return g.client.Close()
}
