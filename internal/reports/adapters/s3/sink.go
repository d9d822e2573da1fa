package s3

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"ga-report-exporter/internal/reports/core/domain"
	"ga-report-exporter/internal/reports/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// PutObjectAPI is the subset of *s3.Client the sink needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
}

type ReportObjectSink struct {
	client    PutObjectAPI
	bucket    string
	keyPrefix string
	prefix    string
}

func NewReportObjectSink(client PutObjectAPI, bucket, keyPrefix, filePrefix string) *ReportObjectSink {
	return &ReportObjectSink{
		client:    client,
		bucket:    bucket,
		keyPrefix: keyPrefix,
		prefix:    filePrefix,
	}
}

var _ ports.ReportSinkPort = (*ReportObjectSink)(nil)

func (s *ReportObjectSink) Name() string { return "s3" }

func (s *ReportObjectSink) Save(ctx context.Context, a *domain.Artifact) (string, error) {
	key := path.Join(s.keyPrefix, a.FileName(s.prefix))

	_, err := s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(a.Body),
		ContentLength: aws.Int64(int64(len(a.Body))),
		ContentType:   aws.String("application/json"),
		Metadata: map[string]string{
			"run-id":  a.RunID,
			"view-id": a.ViewID,
		},
	})
	if err != nil {
		return "", fmt.Errorf("put s3://%s/%s: %w", s.bucket, key, err)
	}

	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
