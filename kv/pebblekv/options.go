package pebblekv

import (
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"
)

type Option func(*options)

type options struct {
	fs     vfs.FS
	logger *zap.Logger
	sync   bool
}

func newOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	mergeDefaultOptions(o)
	return o
}

func mergeDefaultOptions(o *options) {
	if o.fs == nil {
		o.fs = vfs.Default
	}

	// || LOGGER ||

	if o.logger == nil {
		o.logger = zap.NewNop()
	}
}

func (o *options) writeOpts() *pebble.WriteOptions {
	if o.sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

// MemBacked keeps the DB entirely in memory. The dirname passed to Open is
// ignored by the in-memory file system.
func MemBacked() Option {
	return func(o *options) { o.fs = vfs.NewMem() }
}

// WithFS sets the file system the DB is stored on.
func WithFS(fs vfs.FS) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger routes pebble's own log output and the DB's debug logs to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithSync makes every write wait for the WAL to be synced to disk.
func WithSync() Option {
	return func(o *options) { o.sync = true }
}
