// Package boltiter exposes the key value pairs of a bolt bucket as a fixable range.
package boltiter

import (
	"bytes"

	"github.com/boltdb/bolt"

	"go.llib.dev/refit/internal/errorkit"
	"go.llib.dev/refit/internal/option"
)

// Pair is a key value entry of a bolt bucket.
// Key and Value are only valid for the life of the transaction.
type Pair struct {
	Key   []byte
	Value []byte
}

// Config holds the tunables of a bucket range.
type Config struct {
	// Prefix keeps the range on keys that begin with the given bytes.
	Prefix []byte
}

// WithPrefix keeps the range on keys having the given prefix.
func WithPrefix(prefix []byte) option.Option[Config] {
	return option.Func[Config](func(c *Config) { c.Prefix = prefix })
}

// Bucket returns a range over the key value pairs of the named bucket.
// The range and its iterators are only usable while tx stays open.
// A missing bucket yields an empty range.
func Bucket(tx *bolt.Tx, name []byte, opts ...option.Option[Config]) BucketRange {
	return BucketRange{tx: tx, name: name, conf: option.ToConfig(opts)}
}

// All reads every matching pair of the named bucket within its own read transaction.
// The returned pairs are copies; they stay valid after the transaction ended.
func All(db *bolt.DB, name []byte, opts ...option.Option[Config]) (_ []Pair, rErr error) {
	tx, err := db.Begin(false)
	if err != nil {
		return nil, err
	}
	defer errorkit.Finish(&rErr, tx.Rollback)
	var (
		vs  []Pair
		rng = Bucket(tx, name, opts...)
	)
	for cur, end := rng.Begin(), rng.End(); !cur.Equal(end); cur.Advance() {
		p := cur.Deref()
		vs = append(vs, Pair{
			Key:   append([]byte(nil), p.Key...),
			Value: append([]byte(nil), p.Value...),
		})
	}
	return vs, nil
}

// BucketRange is a single pass range over a bolt bucket's pairs.
type BucketRange struct {
	tx   *bolt.Tx
	name []byte
	conf Config
}

// Begin opens a cursor and returns the iterator standing on the first matching pair.
func (r BucketRange) Begin() *Cursor {
	c := &Cursor{prefix: r.conf.Prefix}
	b := r.tx.Bucket(r.name)
	if b == nil {
		c.done = true
		return c
	}
	c.cur = b.Cursor()
	if 0 < len(c.prefix) {
		c.set(c.cur.Seek(c.prefix))
	} else {
		c.set(c.cur.First())
	}
	return c
}

// End returns the iterator standing past the last pair of the bucket.
func (r BucketRange) End() *Cursor {
	return &Cursor{done: true}
}

// Cursor is a position inside a bolt bucket.
// It declares no type metadata, everything is left for inference.
type Cursor struct {
	cur    *bolt.Cursor
	prefix []byte
	pair   Pair
	done   bool
}

func (c *Cursor) set(key, value []byte) {
	if key == nil || (0 < len(c.prefix) && !bytes.HasPrefix(key, c.prefix)) {
		c.done = true
		c.pair = Pair{}
		return
	}
	c.pair = Pair{Key: key, Value: value}
}

// Deref returns the pair at the current position.
func (c *Cursor) Deref() Pair { return c.pair }

// Ptr returns a pointer to the pair at the current position.
func (c *Cursor) Ptr() *Pair { return &c.pair }

// Advance steps the cursor to the next matching pair.
func (c *Cursor) Advance() {
	if c.done {
		return
	}
	c.set(c.cur.Next())
}

// Equal reports whether both cursors stand on the same position.
// Exhausted cursors compare equal regardless of how they were made.
func (c *Cursor) Equal(oth *Cursor) bool {
	if c.done || oth.done {
		return c.done == oth.done
	}
	return bytes.Equal(c.pair.Key, oth.pair.Key)
}
