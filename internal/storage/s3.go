// Package storage provides the object storage writer for prepared training
// data. Each dataset split is written as a pair of feature and label objects
// under a run-scoped prefix so that externally managed training jobs can
// consume them as separate channels.
//
// LAYOUT:
//
//	s3://<bucket>/<prefix>/<channel>/features.csv
//	s3://<bucket>/<prefix>/<channel>/labels.csv
//
// Payloads use the same CSV encoding as the scoring batches so everything a
// model sees, in training and at evaluation time, goes through one
// serializer. The S3 client is hidden behind a narrow interface so upload
// logic stays testable without AWS credentials.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/evalops/scorebench/internal/batch"
	"github.com/evalops/scorebench/internal/logging"
)

// ObjectPutter is the slice of the S3 API the uploader needs. *s3.Client
// satisfies it; tests substitute a recorder.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader writes prepared dataset splits to an S3 bucket under a run
// prefix. Bucket and prefix are explicit configuration passed in by the
// caller; nothing here is hardcoded.
type Uploader struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewUploader builds an uploader backed by a real S3 client using the
// ambient AWS configuration chain (environment, shared config, instance
// role). Region resolution follows the same chain.
func NewUploader(ctx context.Context, bucket, prefix string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return NewUploaderWithClient(s3.NewFromConfig(cfg), bucket, prefix), nil
}

// NewUploaderWithClient builds an uploader around an existing client.
// Used by tests and by callers that already hold a configured S3 client.
func NewUploaderWithClient(client ObjectPutter, bucket, prefix string) *Uploader {
	return &Uploader{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// UploadSplit writes one dataset split as paired feature and label objects
// under the split's channel name (train, validation). Labels are written as
// a single CSV column aligned row-for-row with the feature object.
func (u *Uploader) UploadSplit(ctx context.Context, channel string, features [][]float64, labels []float64) error {
	if len(features) != len(labels) {
		return fmt.Errorf("feature row count %d does not match label count %d", len(features), len(labels))
	}
	if len(features) == 0 {
		return fmt.Errorf("refusing to upload empty %s split", channel)
	}

	labelRows := make([][]float64, len(labels))
	for i, v := range labels {
		labelRows[i] = []float64{v}
	}

	if err := u.putObject(ctx, channel, "features.csv", batch.EncodeRows(features)); err != nil {
		return err
	}
	if err := u.putObject(ctx, channel, "labels.csv", batch.EncodeRows(labelRows)); err != nil {
		return err
	}

	logging.Success("Uploaded %s split: %d rows to s3://%s/%s",
		channel, len(features), u.bucket, path.Join(u.prefix, channel))
	return nil
}

// putObject writes one object and wraps failures with the full object path
// so a failed run names exactly what is missing from the bucket.
func (u *Uploader) putObject(ctx context.Context, channel, name string, body []byte) error {
	key := path.Join(u.prefix, channel, name)

	logging.Debug("Putting s3://%s/%s (%d bytes)", u.bucket, key, len(body))

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload s3://%s/%s: %w", u.bucket, key, err)
	}
	return nil
}
