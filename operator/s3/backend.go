// Package s3 provides an operator backed by an S3-compatible service via
// minio-go. Every instance is built from one configuration snapshot and
// is meant to be dropped after the request it served.
package s3

import (
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/s3utils"
	"github.com/mwantia/querystore/operator"
)

type S3Backend struct {
	client     *minio.Client
	bucketName string
	root       string
	info       *operator.Info
}

// Config contains everything needed to construct an S3 operator.
type Config struct {
	// Endpoint of the S3-compatible service, host[:port] without scheme
	Endpoint string

	// Bucket all keys of this operator live in
	Bucket string

	// Region passed through to the client (optional)
	Region string

	// Root prefix applied to every key (optional)
	Root string

	AccessKeyID     string
	SecretAccessKey string

	// UseSSL enables TLS towards the endpoint
	UseSSL bool
}

func NewS3Backend(config Config) (*S3Backend, error) {
	if err := s3utils.CheckValidBucketName(config.Bucket); err != nil {
		return nil, operator.NewError(operator.KindInvalidConfig, "new", config.Bucket, err)
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
		Secure: config.UseSSL,
		Region: config.Region,
	})
	if err != nil {
		return nil, operator.NewError(operator.KindInvalidConfig, "new", config.Endpoint, err)
	}

	return &S3Backend{
		client:     client,
		bucketName: config.Bucket,
		root:       strings.Trim(config.Root, "/"),
		info: &operator.Info{
			Scheme: "s3",
			ID:     uuid.Must(uuid.NewV7()).String(),
			Capabilities: &operator.Capabilities{
				Capabilities: []operator.Capability{
					operator.CapabilityStat,
					operator.CapabilityRead,
					operator.CapabilityWrite,
					operator.CapabilityDelete,
					operator.CapabilityList,
					operator.CapabilityListStartAfter,
				},
			},
		},
	}, nil
}

// Info returns static information about this operator instance.
func (sb *S3Backend) Info() *operator.Info {
	return sb.info
}

// fullKey prepends the configured root prefix to a store-relative key.
func (sb *S3Backend) fullKey(key string) string {
	if sb.root == "" {
		return key
	}
	return sb.root + "/" + key
}

// relativeKey strips the configured root prefix from a backend key.
func (sb *S3Backend) relativeKey(key string) string {
	if sb.root == "" {
		return key
	}
	return strings.TrimPrefix(key, sb.root+"/")
}
