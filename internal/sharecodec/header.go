package sharecodec

import (
	"encoding/binary"

	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

// HeaderSize is the fixed on-disk width of a share file header: four
// 8-byte little-endian fields, no padding.
const HeaderSize = 32

// Header is the fixed-width metadata prefix of every share file.
type Header struct {
	// Length is the plaintext byte length recorded at encode time.
	Length uint64

	// NumShares is n, the total number of shares produced by the encode
	// that created this file.
	NumShares uint64

	// MinShares is k, the threshold required to reconstruct.
	MinShares uint64

	// EvaluationPoint is the field element x at which this share's
	// per-word polynomials were evaluated.
	EvaluationPoint uint64
}

// MarshalBinary renders the header as its fixed 32-byte wire form.
func (h Header) MarshalBinary() []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint64(buf[0:8], h.Length)
	binary.LittleEndian.PutUint64(buf[8:16], h.NumShares)
	binary.LittleEndian.PutUint64(buf[16:24], h.MinShares)
	binary.LittleEndian.PutUint64(buf[24:32], h.EvaluationPoint)
	return buf
}

// ParseHeader decodes a 32-byte buffer into a Header. It returns
// ErrHeaderTruncated if buf is shorter than HeaderSize.
func ParseHeader(buf []byte) (Header, error) {
	if len(buf) < HeaderSize {
		return Header{}, shardErr.ErrHeaderTruncated
	}

	return Header{
		Length:          binary.LittleEndian.Uint64(buf[0:8]),
		NumShares:       binary.LittleEndian.Uint64(buf[8:16]),
		MinShares:       binary.LittleEndian.Uint64(buf[16:24]),
		EvaluationPoint: binary.LittleEndian.Uint64(buf[24:32]),
	}, nil
}
