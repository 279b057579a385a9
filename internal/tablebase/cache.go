package tablebase

import (
	"encoding/binary"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hailam/chessplay/internal/board"
)

// cachedResult is the on-disk encoding of a ProbeResult: one byte for
// Found, one byte for WDL, then DTZ as a little-endian two's-complement
// 32-bit integer, six bytes in all. Kept deliberately
// small since this is written once per distinct position ever probed.
type cachedResult struct {
	Found bool
	WDL   int8
	DTZ   int32
}

func encodeResult(r ProbeResult) []byte {
	buf := make([]byte, 6)
	if r.Found {
		buf[0] = 1
	}
	buf[1] = byte(int8(r.WDL))
	binary.LittleEndian.PutUint32(buf[2:], uint32(r.DTZ))
	return buf
}

func decodeResult(buf []byte) (ProbeResult, error) {
	if len(buf) != 6 {
		return ProbeResult{}, fmt.Errorf("tablebase cache: malformed entry of length %d", len(buf))
	}
	return ProbeResult{
		Found: buf[0] == 1,
		WDL:   WDL(int8(buf[1])),
		DTZ:   int(int32(binary.LittleEndian.Uint32(buf[2:]))),
	}, nil
}

// CachingProber wraps a Prober with a persistent BadgerDB cache keyed on
// position hash, so repeated probes of the same position (transpositions,
// re-analysed openings) skip the inner prober entirely. ProbeRoot is not
// cached: it depends on the full legal move list and is already only
// called once per root position.
type CachingProber struct {
	inner Prober
	db    *badger.DB
}

// NewCachingProber opens (or creates) a BadgerDB at dbDir and wraps inner
// with a cache in front of it.
func NewCachingProber(inner Prober, dbDir string) (*CachingProber, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("tablebase cache: opening %s: %w", dbDir, err)
	}
	return &CachingProber{inner: inner, db: db}, nil
}

// Close releases the underlying database handle.
func (c *CachingProber) Close() error {
	return c.db.Close()
}

func cacheKey(pos *board.Position) []byte {
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], pos.Hash)
	return key[:]
}

// Probe looks up pos in the cache first; on a miss it falls through to the
// inner prober and stores the result (found or not) for next time.
func (c *CachingProber) Probe(pos *board.Position) ProbeResult {
	key := cacheKey(pos)

	var cached ProbeResult
	var hit bool
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			decoded, derr := decodeResult(val)
			if derr != nil {
				return derr
			}
			cached = decoded
			hit = true
			return nil
		})
	})
	if err == nil && hit {
		return cached
	}

	result := c.inner.Probe(pos)
	_ = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, encodeResult(result))
	})
	return result
}

// ProbeRoot delegates directly to the inner prober.
func (c *CachingProber) ProbeRoot(pos *board.Position) RootResult {
	return c.inner.ProbeRoot(pos)
}

// MaxPieces delegates to the inner prober.
func (c *CachingProber) MaxPieces() int {
	return c.inner.MaxPieces()
}

// Available delegates to the inner prober.
func (c *CachingProber) Available() bool {
	return c.inner.Available()
}
