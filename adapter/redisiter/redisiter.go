// Package redisiter exposes redis key scans as a fixable range.
package redisiter

import (
	"context"
	"reflect"

	"github.com/redis/go-redis/v9"

	"go.llib.dev/refit"
	"go.llib.dev/refit/internal/option"
)

// Config holds the scan tunables.
type Config struct {
	// Match keeps the scan on keys matching the given glob pattern.
	Match string
	// Count advises redis on how many keys to gather per scan round.
	Count int64
}

// WithMatch keeps the scan on keys matching the given glob pattern.
func WithMatch(pattern string) option.Option[Config] {
	return option.Func[Config](func(c *Config) { c.Match = pattern })
}

// WithCount advises redis on how many keys to gather per scan round.
func WithCount(n int64) option.Option[Config] {
	return option.Func[Config](func(c *Config) { c.Count = n })
}

// Keys returns a single pass range over the keys of the redis database.
// Scanning guarantees no order and may yield a key more than once
// when the keyspace changes underneath it.
func Keys(ctx context.Context, client redis.UniversalClient, opts ...option.Option[Config]) KeyRange {
	return KeyRange{ctx: ctx, client: client, conf: option.ToConfig(opts)}
}

// KeyRange is a single pass range over scanned redis keys.
type KeyRange struct {
	ctx    context.Context
	client redis.UniversalClient
	conf   Config
}

// Begin starts the scan and returns the iterator standing on the first key.
func (r KeyRange) Begin() *KeyIter {
	it := &KeyIter{
		ctx:  r.ctx,
		scan: r.client.Scan(r.ctx, 0, r.conf.Match, r.conf.Count).Iterator(),
	}
	it.fetch()
	return it
}

// End returns the iterator standing past the last key.
func (r KeyRange) End() *KeyIter {
	return &KeyIter{done: true}
}

// KeyIter is a position in a redis key scan.
// It declares its traversal category and its distance type;
// the element and access result types are left for inference.
type KeyIter struct {
	ctx  context.Context
	scan *redis.ScanIterator
	cur  string
	done bool
}

func (it *KeyIter) fetch() {
	if !it.scan.Next(it.ctx) {
		it.done = true
		it.cur = ""
		return
	}
	it.cur = it.scan.Val()
}

// Deref returns the key at the current position.
func (it *KeyIter) Deref() string { return it.cur }

// Ptr returns a pointer to the key at the current position.
func (it *KeyIter) Ptr() *string { return &it.cur }

// Advance steps the scan to the next key.
func (it *KeyIter) Advance() {
	if it.done {
		return
	}
	it.fetch()
}

// Equal reports whether both positions are the same.
// Exhausted iterators compare equal regardless of how they were made.
func (it *KeyIter) Equal(oth *KeyIter) bool {
	if it.done || oth.done {
		return it.done == oth.done
	}
	return it == oth
}

// Err returns the error that ended the scan, if any.
func (it *KeyIter) Err() error {
	if it.scan == nil {
		return nil
	}
	return it.scan.Err()
}

// Category declares the single pass nature of scanning.
func (it *KeyIter) Category() refit.Category { return refit.Input }

// DistanceType declares the type redis cursors count in.
func (it *KeyIter) DistanceType() reflect.Type { return reflect.TypeOf(int64(0)) }
