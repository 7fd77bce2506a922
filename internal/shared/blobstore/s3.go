package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Store struct {
	client *s3.Client
	region string
}

// NewS3Store builds an Uploader backed by S3 using the ambient AWS config
// (AWS_REGION, credentials chain).
func NewS3Store() (Uploader, error) {
	region := os.Getenv("AWS_S3_REGION")
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &s3Store{
		client: s3.NewFromConfig(cfg),
		region: region,
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}

	return s.publicURL(bucket, key), nil
}

func (s *s3Store) publicURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, key)
}
