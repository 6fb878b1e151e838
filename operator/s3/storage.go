package s3

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/mwantia/querystore/operator"
)

func (sb *S3Backend) Stat(ctx context.Context, key string) (*operator.Metadata, error) {
	info, err := sb.client.StatObject(ctx, sb.bucketName, sb.fullKey(key), minio.StatObjectOptions{})
	if err != nil {
		return nil, toOperatorError(err, "stat", key)
	}

	return sb.metadata(info), nil
}

func (sb *S3Backend) Read(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	opts := minio.GetObjectOptions{}
	if length > 0 {
		if err := opts.SetRange(offset, offset+length-1); err != nil {
			return nil, operator.NewError(operator.KindUnexpected, "read", key, err)
		}
	} else if offset > 0 {
		if err := opts.SetRange(offset, 0); err != nil {
			return nil, operator.NewError(operator.KindUnexpected, "read", key, err)
		}
	}

	obj, err := sb.client.GetObject(ctx, sb.bucketName, sb.fullKey(key), opts)
	if err != nil {
		return nil, toOperatorError(err, "read", key)
	}

	return obj, nil
}

func (sb *S3Backend) Write(ctx context.Context, key string, buffer []byte) error {
	_, err := sb.client.PutObject(ctx, sb.bucketName, sb.fullKey(key),
		bytes.NewReader(buffer), int64(len(buffer)), minio.PutObjectOptions{})
	if err != nil {
		return toOperatorError(err, "write", key)
	}

	return nil
}

func (sb *S3Backend) Delete(ctx context.Context, key string) error {
	// RemoveObject succeeds on absent keys, so probe first to keep the
	// not-found contract.
	if _, err := sb.client.StatObject(ctx, sb.bucketName, sb.fullKey(key), minio.StatObjectOptions{}); err != nil {
		return toOperatorError(err, "delete", key)
	}

	if err := sb.client.RemoveObject(ctx, sb.bucketName, sb.fullKey(key), minio.RemoveObjectOptions{}); err != nil {
		return toOperatorError(err, "delete", key)
	}

	return nil
}

func (sb *S3Backend) metadata(info minio.ObjectInfo) *operator.Metadata {
	meta := &operator.Metadata{
		ContentLength: info.Size,
		ETag:          info.ETag,
		Version:       info.VersionID,
		IsDir:         strings.HasSuffix(info.Key, "/"),
	}
	if !info.LastModified.IsZero() {
		modify := info.LastModified
		meta.LastModified = &modify
	}

	return meta
}

func toOperatorError(err error, op, key string) error {
	response := minio.ToErrorResponse(err)
	switch response.Code {
	case "NoSuchKey", "NoSuchBucket":
		return operator.NewError(operator.KindNotFound, op, key, err)
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return operator.NewError(operator.KindAlreadyExists, op, key, err)
	case "AccessDenied":
		return operator.NewError(operator.KindPermissionDenied, op, key, err)
	case "NotImplemented":
		return operator.NewError(operator.KindUnsupported, op, key, err)
	}

	return operator.NewError(operator.KindUnexpected, op, key, err)
}
