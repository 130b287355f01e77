package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// DefaultBlockSize is the padding granularity applied to every plaintext
// before encryption. With 4 KiB blocks a remote observer sees only object
// sizes that are multiples of the block size, regardless of logical content
// size.
const DefaultBlockSize = 4096

// lengthPrefixSize is the u32 big-endian prefix that records the true
// payload length inside a padded buffer.
const lengthPrefixSize = 4

// Pad frames data with a 4-byte big-endian length prefix and fills the
// remainder with random bytes up to the next multiple of blockSize. If
// prefix + data already lands exactly on a block boundary no extra block is
// added. blockSize values < 1 fall back to [DefaultBlockSize].
func Pad(data []byte, blockSize int) ([]byte, error) {
	if blockSize < 1 {
		blockSize = DefaultBlockSize
	}

	total := lengthPrefixSize + len(data)
	if rem := total % blockSize; rem != 0 {
		total += blockSize - rem
	}

	out := make([]byte, total)
	binary.BigEndian.PutUint32(out[:lengthPrefixSize], uint32(len(data)))
	copy(out[lengthPrefixSize:], data)

	// Random fill, not zeros: padding must be indistinguishable from
	// ciphertext noise. The bytes are never inspected on the way back.
	if _, err := io.ReadFull(rand.Reader, out[lengthPrefixSize+len(data):]); err != nil {
		return nil, fmt.Errorf("generate padding: %w", err)
	}

	return out, nil
}

// Unpad reads the length prefix and returns exactly that many subsequent
// bytes. Only the prefix is trusted; padding bytes are never interpreted.
// Returns [ErrMalformedPadding] if the buffer is shorter than the prefix or
// the declared length exceeds the remaining bytes.
func Unpad(padded []byte) ([]byte, error) {
	if len(padded) < lengthPrefixSize {
		return nil, fmt.Errorf("%w: missing length prefix", ErrMalformedPadding)
	}

	length := binary.BigEndian.Uint32(padded[:lengthPrefixSize])
	if uint64(length) > uint64(len(padded)-lengthPrefixSize) {
		return nil, fmt.Errorf("%w: declared length %d exceeds buffer", ErrMalformedPadding, length)
	}

	out := make([]byte, length)
	copy(out, padded[lengthPrefixSize:lengthPrefixSize+int(length)])
	return out, nil
}
