// Package source loads findings payloads from local files or S3 objects.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/cloudsift/cloudsift/internal/models"
	"github.com/cloudsift/cloudsift/pkg/pathutil"
)

const (
	defaultScanID    = "local"
	defaultAccountID = "unknown"
)

// ObjectGetter fetches a single object body. *s3.Client satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader reads findings from a local path or an s3://bucket/key URI.
type Loader struct {
	// NewObjectGetter builds the S3 client on first use. Overridable in tests.
	NewObjectGetter func(ctx context.Context) (ObjectGetter, error)
}

// NewLoader returns a Loader that builds its S3 client from the default
// AWS credential chain.
func NewLoader() *Loader {
	return &Loader{
		NewObjectGetter: func(ctx context.Context) (ObjectGetter, error) {
			cfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("loading AWS config: %w", err)
			}
			return s3.NewFromConfig(cfg), nil
		},
	}
}

// Load reads the findings payload at path. The payload may be a full
// summarize request or a bare findings array.
func (l *Loader) Load(ctx context.Context, path string) (*models.SummarizeRequest, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "s3://") {
		data, err = l.fetchS3(ctx, path)
	} else {
		var validPath string
		validPath, err = pathutil.ValidateInputPath(path)
		if err == nil {
			data, err = os.ReadFile(validPath)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("reading findings from %s: %w", path, err)
	}
	return Parse(data)
}

func (l *Loader) fetchS3(ctx context.Context, uri string) ([]byte, error) {
	bucket, key, err := splitS3URI(uri)
	if err != nil {
		return nil, err
	}
	getter, err := l.NewObjectGetter(ctx)
	if err != nil {
		return nil, err
	}
	out, err := getter.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()
	return io.ReadAll(out.Body)
}

func splitS3URI(uri string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(uri, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 URI %q, expected s3://bucket/key", uri)
	}
	return bucket, key, nil
}

// Parse decodes a findings payload. A bare JSON array is wrapped in a
// request with default scan and account identifiers.
func Parse(data []byte) (*models.SummarizeRequest, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var findings []models.Finding
		if err := json.Unmarshal(data, &findings); err != nil {
			return nil, fmt.Errorf("parsing findings array: %w", err)
		}
		return &models.SummarizeRequest{
			ScanID:    defaultScanID,
			AccountID: defaultAccountID,
			Findings:  findings,
		}, nil
	}

	var req models.SummarizeRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("parsing summarize request: %w", err)
	}
	if req.ScanID == "" {
		req.ScanID = defaultScanID
	}
	if req.AccountID == "" {
		req.AccountID = defaultAccountID
	}
	return &req, nil
}
