package connectors

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmwalker/trackpipe/internal/shared"
)

// S3Connector wraps an S3 client scoped to static credentials and one region.
type S3Connector struct {
	client *s3.Client
}

// NewS3Connector builds an S3 client from static credentials.
func NewS3Connector(ctx context.Context, cfg shared.AWSConfig) (*S3Connector, error) {
	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("%w: AWS access key id and secret", shared.ErrMissingCredentials)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrConnectFailed, err)
	}

	return &S3Connector{client: s3.NewFromConfig(awsCfg)}, nil
}

func (c *S3Connector) Kind() Kind { return KindStorage }

// Close satisfies [Connector]; the S3 client holds no per-connection state.
func (c *S3Connector) Close() error { return nil }

// PutObject uploads body under bucket/key with the given content type.
func (c *S3Connector) PutObject(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return nil
}
