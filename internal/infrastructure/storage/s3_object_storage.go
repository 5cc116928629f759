package storage

import (
	"context"
	"fmt"
	"io"

	appconfig "entregaswoo/internal/infrastructure/config"
	"entregaswoo/internal/infrastructure/database"
	"entregaswoo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// S3ObjectStorage holds store logo assets in an S3 bucket and hands back
// the public object URL persisted on the store record.
type S3ObjectStorage struct {
	client *s3.Client
	bucket string
	region string
}

var _ interfaces.IObjectStorage = (*S3ObjectStorage)(nil)

func NewS3ObjectStorage(ctx context.Context, cfg appconfig.AWSConfig) (*S3ObjectStorage, error) {
	awsCfg, err := database.NewAWSConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "creating aws config for s3")
	}
	return &S3ObjectStorage{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.LogoBucket,
		region: cfg.Region,
	}, nil
}

func (s *S3ObjectStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrapf(err, "uploading object %s", key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
