package hashes_test

import (
	"bytes"
	"crypto/sha3"
	"encoding"
	"fmt"
	"testing"

	"github.com/codahale/areion/hashes"
	fuzz "github.com/trailofbits/go-fuzz-utils"
)

// FuzzChunking generates a random transcript of writes, intermediate sums, clones, and state round trips and performs
// it on a hash of every algorithm, checking each output against a one-shot hash of the data written so far.
//
//nolint:gocognit // It's fine if this is complicated.
func FuzzChunking(f *testing.F) {
	drbg := sha3.NewSHAKE128()
	_, _ = drbg.Write([]byte("areion chunking"))

	for range 10 {
		seed := make([]byte, 1024)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		algRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		all := hashes.All()
		alg := all[int(algRaw)%len(all)]

		opCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		h := alg.New()
		var written []byte

		for range opCount % 50 {
			opTypeRaw, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}

			const opTypeCount = 4 // Write, Sum, Clone, Marshal
			switch opType := opTypeRaw % opTypeCount; opType {
			case 0: // Write
				input, err := tp.GetBytes()
				if err != nil {
					t.Skip(err)
				}

				_, _ = h.Write(input)
				written = append(written, input...)
			case 1: // Sum
				if got, want := h.Sum(nil), alg.Sum(written); !bytes.Equal(got, want) {
					t.Fatalf("%s: Sum after %d bytes = %x, want = %x", alg, len(written), got, want)
				}
			case 2: // Clone
				c := alg.New()
				state, err := h.(encoding.BinaryMarshaler).MarshalBinary()
				if err != nil {
					t.Fatal(err)
				}
				if err := c.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
					t.Fatal(err)
				}
				_, _ = h.Write([]byte("divergence"))
				h = c
			case 3: // Marshal
				appender := h.(encoding.BinaryAppender)
				state, err := appender.AppendBinary([]byte("prefix"))
				if err != nil {
					t.Fatal(err)
				}
				h = alg.New()
				if err := h.(encoding.BinaryUnmarshaler).UnmarshalBinary(state[len("prefix"):]); err != nil {
					t.Fatal(err)
				}
			default:
				panic(fmt.Sprintf("unknown operation type: %v", opType))
			}
		}

		if got, want := h.Sum(nil), alg.Sum(written); !bytes.Equal(got, want) {
			t.Fatalf("%s: final Sum = %x, want = %x", alg, got, want)
		}
	})
}
