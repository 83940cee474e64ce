package filestorage

import (
	"bytes"
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"sailing-venues-backend/config"
	s3client "sailing-venues-backend/s3"
)

type Provider interface {
	EnsureExportBucket(ctx context.Context) error
	UploadExport(ctx context.Context, objectName string, data []byte, contentType string) error
	PresignedExportURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
		bucket:   config.Conf.S3.ExportBucket,
	}
}

type impl struct {
	s3client *minio.Client
	bucket   string
}

func (i impl) EnsureExportBucket(ctx context.Context) error {
	exists, err := i.s3client.BucketExists(ctx, i.bucket)
	if err != nil {
		return errors.Wrap(err, "bucket check failed")
	}
	if exists {
		return nil
	}
	err = i.s3client.MakeBucket(ctx, i.bucket, minio.MakeBucketOptions{Region: "us-east-1"})
	if err != nil {
		return errors.Wrap(err, "bucket create failed")
	}
	return nil
}

func (i impl) UploadExport(ctx context.Context, objectName string, data []byte, contentType string) error {
	_, err := i.s3client.PutObject(ctx, i.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrap(err, "export upload failed")
	}
	return nil
}

func (i impl) PresignedExportURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := i.s3client.PresignedGetObject(ctx, i.bucket, objectName, expiry, nil)
	if err != nil {
		return "", errors.Wrap(err, "presigned url failed")
	}
	return u.String(), nil
}
