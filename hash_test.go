package outbreak

import (
	"encoding/hex"
	"testing"
)

func TestHashers(t *testing.T) {
	tests := []struct {
		name   string
		hasher Hasher
		length int
	}{
		{"blake2b", Blake2b(), 64},
		{"blake3", Blake3(), 64},
		{"sha256", SHA256Hasher(), 64},
		{"sha512", SHA512Hasher(), 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(`{"last_update":"2020/03/25 21:40"}`)

			first, err := tt.hasher.Hash(data)
			if err != nil {
				t.Fatalf("Hash() error: %v", err)
			}
			if len(first) != tt.length {
				t.Errorf("len(Hash()) = %d, want %d", len(first), tt.length)
			}
			if _, err := hex.DecodeString(first); err != nil {
				t.Errorf("Hash() = %q is not hex", first)
			}

			second, _ := tt.hasher.Hash(data)
			if first != second {
				t.Error("same input should produce the same hash")
			}

			other, _ := tt.hasher.Hash([]byte(`{"last_update":"2020/03/25 21:41"}`))
			if first == other {
				t.Error("different input should produce a different hash")
			}
		})
	}
}

func TestSHA256_KnownValue(t *testing.T) {
	got, _ := SHA256Hasher().Hash([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if got != want {
		t.Errorf("Hash(abc) = %q, want %q", got, want)
	}
}

func TestHashersDiffer(t *testing.T) {
	data := []byte("abc")
	b, _ := Blake2b().Hash(data)
	s, _ := SHA256Hasher().Hash(data)
	b3, _ := Blake3().Hash(data)
	if b == s || b == b3 {
		t.Error("hash algorithms should differ")
	}
}

func TestHasherFor(t *testing.T) {
	for _, algo := range []HashAlgo{HashBlake2b, HashBlake3, HashSHA256, HashSHA512} {
		h, err := HasherFor(algo)
		if err != nil {
			t.Errorf("HasherFor(%q) error: %v", algo, err)
			continue
		}
		if h == nil {
			t.Errorf("HasherFor(%q) returned nil", algo)
		}
	}

	if _, err := HasherFor("md5"); err == nil {
		t.Error("HasherFor(md5) should fail")
	}
}
