package mmo_test

import (
	"encoding/hex"
	"errors"
	"hash"
	"testing"

	"github.com/codahale/areion"
	"github.com/codahale/areion/internal/hashtest"
	"github.com/codahale/areion/md"
	"github.com/codahale/areion/mmo"
	"github.com/zeebo/assert"
)

func TestSum_Vectors(t *testing.T) {
	seq := make([]byte, 1000)
	for i := range seq {
		seq[i] = byte(i % 251)
	}

	tests := []struct {
		name, want string
		input      []byte
	}{
		{"empty", "11d1d5b09764b23e92c5fe7a586a2f660e7b50cdb4fad63eda636edd886b3ba2", nil},
		{"zero block", "7b4a4919abde75b356f1d35ed0097be5b87af3bc4ccd94bbc7872455fc21a0ff", make([]byte, 32)},
		{"abc", "2322d54b913a10bd130b39f04e25aa7a80904ae39be537575b7f2daf7d0e8502", []byte("abc")},
		{
			"fox", "3546732f31f7c906382f5dc564e9b73a5d599bd895e18d94b2ae236c1bb7f0ce",
			[]byte("The quick brown fox jumps over the lazy dog"),
		},
		{"1000 bytes", "60579383cfa0d18fa21c48df32963910b091a4b6a6c06f3775ef817fb4dd9ff4", seq},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mmo.Sum(tt.input)
			if s := hex.EncodeToString(got[:]); s != tt.want {
				t.Errorf("Sum(%q) = %s, want = %s", tt.input, s, tt.want)
			}
		})
	}
}

func TestSum_Empty(t *testing.T) {
	var pad [mmo.BlockSize]byte
	pad[0] = 0x80

	iv, _ := hex.DecodeString("6a09e667bb67ae853c6ef372a54ff53a510e527f9b05688c1f83d9ab5be0cd19")
	assert.Equal(t, md.IV[:], iv)
	h0, h1 := areion.MMO512(areion.Load(iv), areion.Load(iv[16:]), areion.Load(pad[:16]), areion.Load(pad[16:]))

	var want [mmo.Size]byte
	h0.Store(want[:16])
	h1.Store(want[16:])
	assert.Equal(t, mmo.Sum(nil), want)
}

func TestSum_DiffersFromMD(t *testing.T) {
	for _, msg := range []string{"", "abc", "The quick brown fox jumps over the lazy dog"} {
		assert.NotEqual(t, mmo.Sum([]byte(msg)), md.Sum([]byte(msg)))
	}
}

func TestHasher(t *testing.T) {
	hashtest.Run(t, func() hash.Hash { return mmo.New() }, mmo.Size)
}

func TestHasher_ZeroValue(t *testing.T) {
	var h mmo.Hasher
	h.Update([]byte("abc"))
	assert.Equal(t, h.Finalize(), mmo.Sum([]byte("abc")))

	var empty mmo.Hasher
	want := mmo.Sum(nil)
	assert.Equal(t, empty.Sum(nil), want[:])

	var fresh mmo.Hasher
	got, err := fresh.MarshalBinary()
	assert.NoError(t, err)
	state, err := mmo.New().MarshalBinary()
	assert.NoError(t, err)
	assert.Equal(t, got, state)
}

func TestHasher_Finalize(t *testing.T) {
	h := mmo.New()
	_, _ = h.Write([]byte("abc"))
	assert.Equal(t, h.FinalizeReset(), mmo.Sum([]byte("abc")))

	h.Update([]byte("abc"))
	h.Finalize()

	defer func() {
		err, ok := recover().(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, mmo.ErrFinalized))
	}()
	h.Update([]byte("more"))
	t.Fatal("should have panicked")
}

func TestHasher_Clone(t *testing.T) {
	h := mmo.New()
	h.Update([]byte("shared prefix that spans more than one block"))
	c := h.Clone()
	c.Update([]byte("!"))

	assert.Equal(t, h.Finalize(), mmo.Sum([]byte("shared prefix that spans more than one block")))
	assert.Equal(t, c.Finalize(), mmo.Sum([]byte("shared prefix that spans more than one block!")))
}

func TestHasher_MarshalBinary(t *testing.T) {
	msg := hashtest.Message(7, 77)

	h := mmo.New()
	h.Update(msg[:50])
	state, err := h.MarshalBinary()
	assert.NoError(t, err)

	r := mmo.New()
	assert.NoError(t, r.UnmarshalBinary(state))
	r.Update(msg[50:])
	assert.Equal(t, r.Finalize(), mmo.Sum(msg))

	mdState, err := md.New().MarshalBinary()
	assert.NoError(t, err)
	assert.Error(t, r.UnmarshalBinary(mdState))
	assert.Error(t, r.UnmarshalBinary(state[:len(state)-1]))
}

func BenchmarkSum(b *testing.B) {
	for _, n := range []int{16, 64, 1024, 16 * 1024} {
		input := make([]byte, n)
		b.Run(hashtest.SizeName(n), func(b *testing.B) {
			b.SetBytes(int64(n))
			b.ReportAllocs()
			for b.Loop() {
				mmo.Sum(input)
			}
		})
	}
}
