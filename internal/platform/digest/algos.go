// internal/platform/digest/algos.go
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	sha256 "github.com/minio/sha256-simd"
	"github.com/zeebo/blake3"
	"github.com/zeebo/xxh3"
)

// Built-in algorithms. sha256 uses the SIMD implementation since it is the
// default and sits on the hot path of every candidate.
func init() {
	MustRegister("md5", func(m []byte) string {
		sum := md5.Sum(m)
		return hex.EncodeToString(sum[:])
	})
	MustRegister("sha1", func(m []byte) string {
		sum := sha1.Sum(m)
		return hex.EncodeToString(sum[:])
	})
	MustRegister("sha256", func(m []byte) string {
		sum := sha256.Sum256(m)
		return hex.EncodeToString(sum[:])
	})
	MustRegister("sha512", func(m []byte) string {
		sum := sha512.Sum512(m)
		return hex.EncodeToString(sum[:])
	})
	MustRegister("blake3", func(m []byte) string {
		sum := blake3.Sum256(m)
		return hex.EncodeToString(sum[:])
	})
	// Non-cryptographic, but cheap; useful for large synthetic target sets.
	MustRegister("xxh3", func(m []byte) string {
		return fmt.Sprintf("%016x", xxh3.Hash(m))
	})
}
