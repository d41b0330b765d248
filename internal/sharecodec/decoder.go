package sharecodec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/mrz1836/shardfile/internal/polynomial"
	"github.com/mrz1836/shardfile/internal/secure"
	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

// Decode reconstructs the original plaintext from sharePaths and writes
// it to outputPath. Only the first k paths named by the shares' own
// min_shares header field are consulted; any extra paths are ignored.
func Decode(sharePaths []string, outputPath string) error {
	if len(sharePaths) == 0 {
		return shardErr.ErrTooFewShares
	}

	first, firstHeader, err := openShare(sharePaths[0])
	if err != nil {
		return err
	}
	defer func() { _ = first.Close() }()

	k := int(firstHeader.MinShares)
	if len(sharePaths) < k {
		return shardErr.WithDetails(shardErr.ErrTooFewShares, map[string]string{
			"have": strconv.Itoa(len(sharePaths)),
			"need": strconv.Itoa(k),
		})
	}

	files := make([]*os.File, k)
	readers := make([]*bufio.Reader, k)
	points := make([]uint64, k)

	files[0] = first
	readers[0] = bufio.NewReader(first)
	points[0] = firstHeader.EvaluationPoint

	defer func() {
		for _, f := range files[1:] {
			if f != nil {
				_ = f.Close()
			}
		}
	}()

	for i := 1; i < k; i++ {
		f, header, openErr := openShare(sharePaths[i])
		if openErr != nil {
			return openErr
		}
		files[i] = f

		if header.MinShares != firstHeader.MinShares || header.Length != firstHeader.Length {
			return shardErr.WithDetails(shardErr.ErrHeaderMismatch, map[string]string{
				"share": sharePaths[i],
			})
		}

		readers[i] = bufio.NewReader(f)
		points[i] = header.EvaluationPoint
	}

	basis, err := polynomial.ComputeLagrangeBasisForConstantTerm(points)
	if err != nil {
		if errors.Is(err, polynomial.ErrDuplicatePoint) {
			return shardErr.ErrDuplicateEvaluationPoint
		}
		return shardErr.Wrap(err, "computing lagrange basis")
	}

	outputFile, err := os.Create(outputPath) //nolint:gosec // G304: path supplied directly by the CLI operator
	if err != nil {
		return shardErr.Wrap(shardErr.ErrIO, "creating %s", outputPath)
	}
	defer func() { _ = outputFile.Close() }()

	writer := bufio.NewWriter(outputFile)

	length := firstHeader.Length
	full := length / 8
	tail := length % 8

	evaluations := make([]uint64, k)
	reconstructed := secure.New(8)
	defer reconstructed.Destroy()
	buf := reconstructed.Bytes()

	for j := uint64(0); j < full; j++ {
		if err := readWordFromEach(readers, evaluations, buf); err != nil {
			return err
		}
		value := polynomial.InterpolateFromLagrangeBasis(evaluations, basis)
		binary.LittleEndian.PutUint64(buf, value)
		if _, err := writer.Write(buf); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "writing output word %d", j)
		}
		reconstructed.Wipe()
	}

	if tail > 0 {
		if err := readWordFromEach(readers, evaluations, buf); err != nil {
			return err
		}
		value := polynomial.InterpolateFromLagrangeBasis(evaluations, basis)
		binary.LittleEndian.PutUint64(buf, value)
		if _, err := writer.Write(buf[:tail]); err != nil {
			return shardErr.Wrap(shardErr.ErrIO, "writing final partial word")
		}
		reconstructed.Wipe()
	}

	if err := writer.Flush(); err != nil {
		return shardErr.Wrap(shardErr.ErrIO, "flushing %s", outputPath)
	}
	if err := outputFile.Sync(); err != nil {
		return shardErr.Wrap(shardErr.ErrIO, "syncing %s", outputPath)
	}

	return nil
}

// openShare opens path and reads its fixed-width header.
func openShare(path string) (*os.File, Header, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path supplied directly by the CLI operator
	if err != nil {
		return nil, Header{}, shardErr.Wrap(shardErr.ErrInputNotFound, "opening %s", path)
	}

	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(f, buf); err != nil {
		_ = f.Close()
		return nil, Header{}, shardErr.Wrap(shardErr.ErrHeaderTruncated, "reading header of %s", path)
	}

	header, err := ParseHeader(buf)
	if err != nil {
		_ = f.Close()
		return nil, Header{}, err
	}

	return f, header, nil
}

// readWordFromEach reads one 8-byte word from each reader into evaluations,
// in reader order. A short read from any share is a truncated-share error.
func readWordFromEach(readers []*bufio.Reader, evaluations []uint64, scratch []byte) error {
	for i, r := range readers {
		if _, err := io.ReadFull(r, scratch); err != nil {
			return shardErr.Wrap(shardErr.ErrShareTruncated, "reading word from share %d", i+1)
		}
		evaluations[i] = binary.LittleEndian.Uint64(scratch)
	}
	return nil
}
