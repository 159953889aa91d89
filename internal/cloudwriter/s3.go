package cloudwriter

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/chrisdamba/menuengine/internal/models"
)

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Store struct {
	client putObjectAPI
	bucket string
	prefix string
}

func NewS3Store(ctx context.Context, cfg models.CloudStorageConfig) (*S3Store, error) {
	if cfg.BucketName == "" {
		return nil, ErrNoBucket
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return newS3Store(s3.NewFromConfig(awsCfg), cfg.BucketName, cfg.Prefix), nil
}

func newS3Store(client putObjectAPI, bucket, prefix string) *S3Store {
	return &S3Store{client: client, bucket: bucket, prefix: prefix}
}

// Create starts an object at prefix/key. ctx bounds the upload on Close.
func (s *S3Store) Create(ctx context.Context, key, contentType string) (ObjectWriter, error) {
	if key == "" {
		return nil, fmt.Errorf("empty object key in bucket %s", s.bucket)
	}
	return &s3Object{
		ctx:         ctx,
		store:       s,
		key:         path.Join(s.prefix, key),
		contentType: contentType,
	}, nil
}

type s3Object struct {
	ctx         context.Context
	store       *S3Store
	key         string
	contentType string
	buf         bytes.Buffer
	closed      bool
}

func (o *s3Object) Key() string {
	return o.key
}

func (o *s3Object) Write(p []byte) (int, error) {
	if o.closed {
		return 0, fmt.Errorf("%w: %s", ErrObjectClosed, o.key)
	}
	return o.buf.Write(p)
}

func (o *s3Object) Close() error {
	if o.closed {
		return fmt.Errorf("%w: %s", ErrObjectClosed, o.key)
	}
	o.closed = true

	input := &s3.PutObjectInput{
		Bucket:        aws.String(o.store.bucket),
		Key:           aws.String(o.key),
		Body:          bytes.NewReader(o.buf.Bytes()),
		ContentLength: aws.Int64(int64(o.buf.Len())),
	}
	if o.contentType != "" {
		input.ContentType = aws.String(o.contentType)
	}
	if _, err := o.store.client.PutObject(o.ctx, input); err != nil {
		return fmt.Errorf("unable to upload s3://%s/%s: %w", o.store.bucket, o.key, err)
	}
	return nil
}
