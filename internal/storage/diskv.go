package storage

import (
	"context"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvBackend stores keys as flat files through diskv's cache.
type DiskvBackend struct {
	d *diskv.Diskv
}

func NewDiskvBackend(basePath string) *DiskvBackend {
	return &DiskvBackend{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 1024 * 1024,
	})}
}

func (b *DiskvBackend) Name() string { return BackendDiskv }

func (b *DiskvBackend) Read(_ context.Context, key string) ([]byte, error) {
	if !b.d.Has(key) {
		return nil, ErrNotFound
	}
	return b.d.Read(key)
}

func (b *DiskvBackend) Write(_ context.Context, key string, value []byte) error {
	return b.d.Write(key, value)
}

func (b *DiskvBackend) Delete(_ context.Context, key string) error {
	if !b.d.Has(key) {
		return ErrNotFound
	}
	return b.d.Erase(key)
}

func (b *DiskvBackend) Close() error { return nil }
