package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/mwantia/querystore/operator"
)

func (mb *MemoryBackend) Stat(ctx context.Context, key string) (*operator.Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	obj, exists := mb.keys.Get(key)
	if !exists {
		return nil, operator.NewError(operator.KindNotFound, "stat", key, nil)
	}

	return mb.metadata(obj), nil
}

func (mb *MemoryBackend) Read(ctx context.Context, key string, offset, length int64) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	obj, exists := mb.keys.Get(key)
	if !exists {
		return nil, operator.NewError(operator.KindNotFound, "read", key, nil)
	}

	size := int64(len(obj.buffer))
	if offset < 0 || offset > size {
		return nil, operator.NewError(operator.KindUnexpected, "read", key,
			fmt.Errorf("offset %d outside of object size %d", offset, size))
	}

	end := offset + length
	if length < 0 || end > size {
		end = size
	}

	return io.NopCloser(bytes.NewReader(obj.buffer[offset:end])), nil
}

func (mb *MemoryBackend) Write(ctx context.Context, key string, buffer []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(buffer))
	copy(stored, buffer)

	mb.keys.Set(key, &object{
		buffer: stored,
		modify: time.Now(),
		etag:   fmt.Sprintf("%016x", xxhash.Sum64(stored)),
		isDir:  strings.HasSuffix(key, "/"),
	})

	return nil
}

func (mb *MemoryBackend) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, exists := mb.keys.Delete(key); !exists {
		return operator.NewError(operator.KindNotFound, "delete", key, nil)
	}

	return nil
}

func (mb *MemoryBackend) metadata(obj *object) *operator.Metadata {
	modify := obj.modify
	return &operator.Metadata{
		ContentLength: int64(len(obj.buffer)),
		LastModified:  &modify,
		ETag:          obj.etag,
		IsDir:         obj.isDir,
	}
}
