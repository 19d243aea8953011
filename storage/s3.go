package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Config struct {
	BucketName      string
	Region          string
	Endpoint        string // пустой для AWS; для R2/MinIO адрес API
	AccessKeyID     string
	SecretAccessKey string
}

// S3Store хранит объекты в бакете; локаторы имеют вид s3://<bucket>/<key>.
type S3Store struct {
	client     *s3.Client
	bucketName string
}

func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("invalid S3 configuration: bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	sdkCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS SDK config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3StoreWithClient(client, cfg.BucketName), nil
}

func NewS3StoreWithClient(client *s3.Client, bucketName string) *S3Store {
	return &S3Store{client: client, bucketName: bucketName}
}

func (s *S3Store) locator(key string) string {
	return "s3://" + s.bucketName + "/" + key
}

func (s *S3Store) keyFromLocator(locator string) (string, error) {
	prefix := "s3://" + s.bucketName + "/"
	if !strings.HasPrefix(locator, prefix) || len(locator) == len(prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocator, locator)
	}
	return strings.TrimPrefix(locator, prefix), nil
}

// Owns сообщает, указывает ли локатор на объект этого бакета.
func (s *S3Store) Owns(locator string) bool {
	_, err := s.keyFromLocator(locator)
	return err == nil
}

func (s *S3Store) Put(ctx context.Context, folder, filename, contentType string, reader io.Reader) (string, error) {
	key := NewKey(folder, filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object to S3 (key: %s): %w", key, err)
	}
	return s.locator(key), nil
}

func (s *S3Store) List(ctx context.Context, prefix string) ([]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucketName),
		Prefix: aws.String(prefix),
	})

	locators := make([]string, 0)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list S3 objects (prefix: %s): %w", prefix, err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil {
				locators = append(locators, s.locator(*obj.Key))
			}
		}
	}
	return locators, nil
}

func (s *S3Store) Delete(ctx context.Context, locator string) error {
	key, err := s.keyFromLocator(locator)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3 (key: %s): %w", key, err)
	}
	return nil
}
