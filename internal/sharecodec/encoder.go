// Package sharecodec implements the streaming encoder and decoder that
// turn a plaintext file into n share files and back, per the share file
// format in header.go. It is the component that ties internal/field and
// internal/polynomial to the filesystem.
package sharecodec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/mrz1836/shardfile/internal/entropy"
	"github.com/mrz1836/shardfile/internal/polynomial"
	"github.com/mrz1836/shardfile/internal/secure"
	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

// SharePath returns the output path for share i of the given plaintext
// path: <path>_<i>, i in 1..=n. Exported so internal/discovery can build
// the same candidate names when scanning for shares on disk.
func SharePath(path string, i int) string {
	return fmt.Sprintf("%s_%d", path, i)
}

// Encode reads the plaintext file at inputPath and writes n share files
// alongside it (inputPath_1 .. inputPath_n), each reconstructible in any
// k-subset. Randomness for the per-word polynomials is drawn from src.
//
// Parameter errors (k < 1, n < k) are rejected before any file is
// created or opened, per the argument-error policy in the error design.
func Encode(inputPath string, n, k int, src entropy.Source) error {
	if k < 1 {
		return shardErr.ErrThresholdInvalid
	}
	if n < k {
		return shardErr.ErrSharesInsufficient
	}

	inputFile, err := os.Open(inputPath) //nolint:gosec // G304: path supplied directly by the CLI operator
	if err != nil {
		return shardErr.Wrap(shardErr.ErrInputNotFound, "opening %s", inputPath)
	}
	defer func() { _ = inputFile.Close() }()

	info, err := inputFile.Stat()
	if err != nil {
		return shardErr.Wrap(shardErr.ErrIO, "statting %s", inputPath)
	}
	length := uint64(info.Size())

	shares := make([]*os.File, n)
	writers := make([]*bufio.Writer, n)
	defer func() {
		for _, f := range shares {
			if f != nil {
				_ = f.Close()
			}
		}
	}()

	for i := 0; i < n; i++ {
		path := SharePath(inputPath, i+1)
		f, createErr := os.Create(path) //nolint:gosec // G304: path derived from the operator-supplied datafile path
		if createErr != nil {
			return shardErr.Wrap(shardErr.ErrIO, "creating %s", path)
		}
		shares[i] = f

		header := Header{
			Length:          length,
			NumShares:       uint64(n),
			MinShares:       uint64(k),
			EvaluationPoint: uint64(i + 1),
		}
		if _, writeErr := f.Write(header.MarshalBinary()); writeErr != nil {
			return shardErr.Wrap(shardErr.ErrIO, "writing header to %s", path)
		}
		writers[i] = bufio.NewWriter(f)
	}

	points := make([]uint64, n)
	for i := range points {
		points[i] = uint64(i + 1)
	}

	full := length / 8
	tail := length % 8

	reader := bufio.NewReader(inputFile)
	if err := streamWords(reader, full, tail, k, points, writers, src); err != nil {
		return err
	}

	for i, w := range writers {
		if err := w.Flush(); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "flushing %s", SharePath(inputPath, i+1))
		}
		if err := shares[i].Sync(); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "syncing %s", SharePath(inputPath, i+1))
		}
	}

	return nil
}

// streamWords reads full complete 8-byte words followed by at most one
// zero-padded tail word from reader, sharing each via a fresh random
// polynomial of length k and appending the evaluations to writers.
func streamWords(reader io.Reader, full, tail uint64, k int, points []uint64, writers []*bufio.Writer, src entropy.Source) error {
	plain := secure.New(8)
	defer plain.Destroy()
	buf := plain.Bytes()

	for j := uint64(0); j < full; j++ {
		if _, err := io.ReadFull(reader, buf); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "reading input word %d", j)
		}
		word := binary.LittleEndian.Uint64(buf)
		if err := shareWord(word, k, points, writers, src); err != nil {
			return err
		}
		plain.Wipe()
	}

	if tail > 0 {
		if _, err := io.ReadFull(reader, buf[:tail]); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "reading final partial word")
		}
		word := binary.LittleEndian.Uint64(buf)
		if err := shareWord(word, k, points, writers, src); err != nil {
			return err
		}
		plain.Wipe()
	}

	return nil
}

// shareWord draws a fresh random polynomial with constant term word,
// evaluates it at points, and appends the i-th evaluation to the i-th
// writer as 8 little-endian bytes.
func shareWord(word uint64, k int, points []uint64, writers []*bufio.Writer, src entropy.Source) error {
	poly, err := polynomial.Random(k, word, src)
	if err != nil {
		return shardErr.Wrap(shardErr.ErrIO, "drawing random polynomial")
	}
	defer poly.Destroy()

	evaluations := poly.EvaluateAt(points)

	var out [8]byte
	for i, y := range evaluations {
		binary.LittleEndian.PutUint64(out[:], y)
		if _, err := writers[i].Write(out[:]); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "writing share %d body", i+1)
		}
	}

	return nil
}
