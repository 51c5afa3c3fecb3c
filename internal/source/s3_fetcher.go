package source

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ObjectGetter is the subset of the S3 client used by the fetcher.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Fetcher implements Fetcher over an S3 bucket.
type s3Fetcher struct {
	client ObjectGetter
	bucket string
	logger zerolog.Logger
}

// NewS3Fetcher creates a Fetcher backed by the default AWS credential chain.
func NewS3Fetcher(ctx context.Context, bucket, region string, logger zerolog.Logger) (Fetcher, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	logger.Info().
		Str("bucket", bucket).
		Str("region", region).
		Msg("S3 snapshot fetcher initialised")

	return NewS3FetcherWithClient(s3.NewFromConfig(cfg), bucket, logger), nil
}

// NewS3FetcherWithClient creates a Fetcher using the given S3 client.
func NewS3FetcherWithClient(client ObjectGetter, bucket string, logger zerolog.Logger) Fetcher {
	return &s3Fetcher{
		client: client,
		bucket: bucket,
		logger: logger.With().Str("component", "s3-fetcher").Logger(),
	}
}

// Fetch downloads the object stored under key. The caller closes the body.
func (f *s3Fetcher) Fetch(ctx context.Context, key string) (io.ReadCloser, error) {
	f.logger.Info().
		Str("bucket", f.bucket).
		Str("key", key).
		Msg("fetching snapshot from S3")

	result, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		f.logger.Error().
			Err(err).
			Str("bucket", f.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", f.bucket, key, err)
	}

	return result.Body, nil
}
