// Package fixturearchive pushes and pulls the testdata/*.sdpb golden
// corpus to a shared S3 bucket, so a cross-language CI run can publish
// newly generated goldens from one language's encoder for every other
// language's decoder to fetch.
package fixturearchive

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marmos91/sdp/internal/logger"
)

// Config configures the archive's S3 client and object layout.
type Config struct {
	Bucket         string
	Region         string
	Prefix         string
	ForcePathStyle bool
	Endpoint       string
}

// Archive wraps an S3 client scoped to one bucket/prefix.
type Archive struct {
	client *s3.Client
	bucket string
	prefix string
}

// New builds an Archive from cfg, loading AWS credentials from the
// default provider chain.
func New(ctx context.Context, cfg Config) (*Archive, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("fixturearchive: bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("fixturearchive: load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return &Archive{client: client, bucket: cfg.Bucket, prefix: strings.Trim(cfg.Prefix, "/")}, nil
}

func (a *Archive) key(name string) string {
	if a.prefix == "" {
		return name
	}
	return path.Join(a.prefix, name)
}

// Push uploads the named golden fixture (e.g. "primitives.sdpb") with the
// given raw bytes.
func (a *Archive) Push(ctx context.Context, name string, content []byte) error {
	key := a.key(name)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return fmt.Errorf("fixturearchive: push %s: %w", key, err)
	}
	logger.Info("fixture pushed", "bucket", a.bucket, "key", key, "bytes", len(content))
	return nil
}

// Pull downloads the named golden fixture's raw bytes.
func (a *Archive) Pull(ctx context.Context, name string) ([]byte, error) {
	key := a.key(name)
	out, err := a.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("fixturearchive: pull %s: %w", key, err)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("fixturearchive: read %s: %w", key, err)
	}
	logger.Info("fixture pulled", "bucket", a.bucket, "key", key, "bytes", len(content))
	return content, nil
}

// List returns the names of every golden fixture currently archived
// under the configured prefix.
func (a *Archive) List(ctx context.Context) ([]string, error) {
	var names []string
	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
		Prefix: aws.String(a.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("fixturearchive: list: %w", err)
		}
		for _, obj := range page.Contents {
			names = append(names, path.Base(aws.ToString(obj.Key)))
		}
	}
	return names, nil
}
