package store

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// cacheFillTimeout bounds a single background cache write.
const cacheFillTimeout = 2 * time.Second

// fillAsync writes a record into the cache off the request path. Tests swap it
// for a synchronous version.
var fillAsync = fillInBackground

// fillInBackground runs put in a goroutine detached from the request context.
// A failed fill only costs a later cache miss, so it is logged and dropped.
func fillInBackground(key string, put func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), cacheFillTimeout)
		defer cancel()
		if err := put(ctx); err != nil {
			rlog.Warn("failed to fill record cache", "key", key, "error", err)
			return
		}
		rlog.Debug("record cache filled", "key", key)
	}()
}
