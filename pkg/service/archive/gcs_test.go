package archive_test

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/execdiag/pkg/service/archive"
)

func TestNew_RequiresBucket(t *testing.T) {
	_, err := archive.New(context.Background(), "")
	gt.Error(t, err)
}

func TestGCS_Store(t *testing.T) {
	bucket := os.Getenv("TEST_GCS_BUCKET")
	if bucket == "" {
		t.Skip("TEST_GCS_BUCKET not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test_%d", time.Now().UnixNano())
	a, err := archive.New(ctx, bucket, archive.WithPrefix(prefix))
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, a.Close())
	})

	data := []byte("%PDF-1.3 test")
	gt.NoError(t, a.Store(ctx, "report.pdf", data)).Required()

	client, err := storage.NewClient(ctx)
	gt.NoError(t, err).Required()
	defer client.Close()

	obj := client.Bucket(bucket).Object(a.ObjectName("report.pdf"))
	r, err := obj.NewReader(ctx)
	gt.NoError(t, err).Required()
	got, err := io.ReadAll(r)
	gt.NoError(t, err).Required()
	gt.NoError(t, r.Close())

	gt.Value(t, got).Equal(data)
	gt.Value(t, r.Attrs.ContentType).Equal("application/pdf")
	gt.NoError(t, obj.Delete(ctx))
}
