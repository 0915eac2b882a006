// Package hashes is a registry of the Areion hash constructions, in the manner of crypto.Hash. It lets callers pick an
// algorithm by name and use it through the standard hash.Hash interface.
package hashes

import (
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/codahale/areion/haifa"
	"github.com/codahale/areion/md"
	"github.com/codahale/areion/mmo"
	"github.com/codahale/areion/sponge"
)

// An Algorithm identifies an Areion hash construction.
type Algorithm uint8

const (
	MD        Algorithm = 1 + iota // Areion512-MD
	MMO                            // Areion512-MMO
	Sponge256                      // Areion256-Sponge
	Sponge512                      // Areion512-Sponge
	HAIFA                          // Areion512-HAIFA
	maxAlgorithm
)

// ErrUnknownAlgorithm is returned by Lookup for names which do not identify an algorithm.
var ErrUnknownAlgorithm = errors.New("areion/hashes: unknown algorithm")

type info struct {
	name      string
	size      int
	blockSize int
	newHash   func() hash.Hash
}

var algorithms = [maxAlgorithm]info{ //nolint:gochecknoglobals // registry
	MD:        {md.Name, md.Size, md.BlockSize, func() hash.Hash { return md.New() }},
	MMO:       {mmo.Name, mmo.Size, mmo.BlockSize, func() hash.Hash { return mmo.New() }},
	Sponge256: {sponge.Name256, sponge.Size256, sponge.BlockSize, func() hash.Hash { return sponge.New() }},
	Sponge512: {sponge.Name512, sponge.Size512, sponge.BlockSize, func() hash.Hash { return sponge.New512() }},
	HAIFA:     {haifa.Name, haifa.Size, haifa.BlockSize, func() hash.Hash { return haifa.New() }},
}

// All returns every available algorithm, in registry order.
func All() []Algorithm {
	all := make([]Algorithm, 0, maxAlgorithm-1)
	for a := MD; a < maxAlgorithm; a++ {
		all = append(all, a)
	}
	return all
}

// Lookup returns the algorithm with the given name, ignoring case. Both canonical names ("Areion512-MD") and short
// names ("md", "sponge512") are accepted.
func Lookup(name string) (Algorithm, error) {
	for _, a := range All() {
		if strings.EqualFold(name, a.String()) || strings.EqualFold(name, a.ShortName()) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Available reports whether a identifies a known algorithm.
func (a Algorithm) Available() bool {
	return a > 0 && a < maxAlgorithm
}

// String returns the canonical name of the algorithm.
func (a Algorithm) String() string {
	if !a.Available() {
		return fmt.Sprintf("unknown algorithm %d", a)
	}
	return algorithms[a].name
}

// ShortName returns the lowercase name used on the command line.
func (a Algorithm) ShortName() string {
	switch a {
	case MD:
		return "md"
	case MMO:
		return "mmo"
	case Sponge256:
		return "sponge256"
	case Sponge512:
		return "sponge512"
	case HAIFA:
		return "haifa"
	default:
		return ""
	}
}

// Size returns the digest size of the algorithm in bytes.
func (a Algorithm) Size() int {
	a.check()
	return algorithms[a].size
}

// BlockSize returns the block size of the algorithm in bytes.
func (a Algorithm) BlockSize() int {
	a.check()
	return algorithms[a].blockSize
}

// New returns a new hash.Hash computing the algorithm. It panics if the algorithm is not available.
func (a Algorithm) New() hash.Hash {
	a.check()
	return algorithms[a].newHash()
}

// Sum returns the digest of data.
func (a Algorithm) Sum(data []byte) []byte {
	h := a.New()
	_, _ = h.Write(data)
	return h.Sum(nil)
}

func (a Algorithm) check() {
	if !a.Available() {
		panic(fmt.Sprintf("areion/hashes: requested hash function #%d is unavailable", uint8(a)))
	}
}
