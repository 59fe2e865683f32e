package outbreak

// HashAlgo represents a supported fingerprint algorithm.
type HashAlgo string

const (
	// HashBlake2b uses BLAKE2b-256. This is the default.
	HashBlake2b HashAlgo = "blake2b"

	// HashBlake3 uses BLAKE3-256.
	HashBlake3 HashAlgo = "blake3"

	// HashSHA256 uses SHA-256.
	HashSHA256 HashAlgo = "sha256"

	// HashSHA512 uses SHA-512.
	HashSHA512 HashAlgo = "sha512"
)

// validHashAlgos contains all valid hash algorithms.
var validHashAlgos = map[HashAlgo]bool{
	HashBlake2b: true,
	HashBlake3:  true,
	HashSHA256:  true,
	HashSHA512:  true,
}

// IsValidHashAlgo returns true if the algorithm is a known hash algorithm.
func IsValidHashAlgo(algo HashAlgo) bool {
	return validHashAlgos[algo]
}
