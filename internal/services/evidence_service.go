package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"fulfill-backend/internal/config"
	"fulfill-backend/internal/timeutil"
)

// EvidenceService issues presigned URLs for QC evidence images. Uploads go
// straight from the browser to the bucket; the backend only stores object
// keys on the submission record.
type EvidenceService struct {
	presign *s3.PresignClient
	bucket  string
}

func NewEvidenceService(cfg *config.Config) (*EvidenceService, error) {
	if cfg.Evidence.AccessKey == "" || cfg.Evidence.SecretKey == "" {
		return nil, fmt.Errorf("evidence store credentials not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Evidence.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Evidence.AccessKey, cfg.Evidence.SecretKey, "")),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Evidence.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Evidence.Endpoint)
		}
		o.UsePathStyle = true
	})

	return &EvidenceService{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.Evidence.Bucket,
	}, nil
}

// NewObjectKey builds a collision-safe key for a new evidence image
func (s *EvidenceService) NewObjectKey(orderLineID int, qcType, filename string) string {
	name := strings.ReplaceAll(filename, "/", "_")
	return fmt.Sprintf("qc/%d/%s/%d_%s", orderLineID, qcType, timeutil.Now().UnixNano(), name)
}

// PresignUpload returns a short-lived PUT URL for one evidence image
func (s *EvidenceService) PresignUpload(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// PresignDownload returns a short-lived GET URL for a stored evidence image
func (s *EvidenceService) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(time.Hour))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
