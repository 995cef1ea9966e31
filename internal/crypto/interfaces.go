// Package crypto provides the field-sealing primitives used by the record
// cache when projecting saved locations into remote records. Fields tagged
// as encrypted in the schema are sealed on the device and stored as opaque
// blobs; the transport never sees their plaintext.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer seals and opens individual record field values.
//
// Seal output is self-contained: everything needed to open the blob (except
// the key) is embedded in it, so sealed values can be stored and compared as
// opaque bytes.
type Sealer interface {
	// Seal encrypts plaintext and returns an opaque blob.
	Seal(plaintext []byte) ([]byte, error)

	// Open decrypts a blob produced by Seal. Returns an error if the blob
	// is malformed, the key is wrong, or the ciphertext was tampered with.
	Open(blob []byte) ([]byte, error)
}
