package playlist

import (
	"crypto/md5" //nolint:gosec // selection spread, not security
	"encoding/binary"

	"github.com/heartmarshall/phrasecast/internal/domain"
)

// Selector picks clips deterministically from a seed while avoiding clips
// already used in the same generation run. It is not safe for concurrent use;
// each generation call owns one.
type Selector struct {
	used map[string]struct{}
}

// NewSelector creates a Selector with an empty used set.
func NewSelector() *Selector {
	return &Selector{used: make(map[string]struct{})}
}

// MarkUsed records filename as already used.
func (s *Selector) MarkUsed(filename string) {
	s.used[filename] = struct{}{}
}

// Used reports whether filename was already selected.
func (s *Selector) Used(filename string) bool {
	_, ok := s.used[filename]
	return ok
}

// Select returns a clip from pool, preferring unused ones. Once every clip in
// the pool has been used, the whole pool is eligible again. The pick is a pure
// function of pool order, the used set, and seed. Returns false for an empty pool.
func (s *Selector) Select(pool []domain.Clip, seed string) (domain.Clip, bool) {
	if len(pool) == 0 {
		return domain.Clip{}, false
	}

	candidates := make([]domain.Clip, 0, len(pool))
	for _, c := range pool {
		if !s.Used(c.Filename) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = pool
	}

	chosen := candidates[seedIndex(seed, len(candidates))]
	s.MarkUsed(chosen.Filename)
	return chosen, true
}

// seedIndex maps seed onto [0, n). The first 8 hex digits of the MD5 digest
// are the first four bytes read big-endian.
func seedIndex(seed string, n int) int {
	sum := md5.Sum([]byte(seed)) //nolint:gosec
	return int(binary.BigEndian.Uint32(sum[:4]) % uint32(n))
}
