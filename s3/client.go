package s3client

import (
	"github.com/minio/minio-go/v7"
)

// Client is set by the s3 initializer and shared by the storage handlers.
var Client *minio.Client
