package s3

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/mwantia/querystore/operator"
)

// List enumerates the keys under prefix via the bucket listing API.
// StartAfter is passed through natively; the service resumes enumeration
// directly behind the given key.
func (sb *S3Backend) List(ctx context.Context, prefix string, opts operator.ListOptions) (operator.Lister, error) {
	listOpts := minio.ListObjectsOptions{
		Prefix:    sb.fullKey(prefix),
		Recursive: opts.Recursive,
	}
	if opts.StartAfter != "" {
		listOpts.StartAfter = sb.fullKey(opts.StartAfter)
	}

	return &s3Lister{
		backend: sb,
		objects: sb.client.ListObjects(ctx, sb.bucketName, listOpts),
	}, nil
}

type s3Lister struct {
	backend *S3Backend
	objects <-chan minio.ObjectInfo
}

func (sl *s3Lister) Next(ctx context.Context) (*operator.Entry, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case info, ok := <-sl.objects:
		if !ok {
			return nil, io.EOF
		}
		if info.Err != nil {
			return nil, toOperatorError(info.Err, "list", info.Key)
		}

		return &operator.Entry{
			Key:  sl.backend.relativeKey(info.Key),
			Meta: sl.backend.metadata(info),
		}, nil
	}
}
