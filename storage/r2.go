package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/Savin-AS94/hw05-final/config"
)

// R2 stores images in a Cloudflare R2 bucket through the S3 API.
type R2 struct {
	client *s3.Client
	cfg    *config.R2Config
}

func NewR2(cfg *config.R2Config) *R2 {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})
	return &R2{client: client, cfg: cfg}
}

func (r *R2) Save(key string, body io.Reader, contentType string) (string, error) {
	_, err := r.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(r.cfg.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return r.cfg.PublicURL + "/" + key, nil
}
