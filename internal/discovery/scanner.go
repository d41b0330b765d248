package discovery

import (
	"context"
	"os"
	"sort"
	"strconv"
	"sync"

	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

// DefaultScanWorkers is the default number of concurrent stat calls FindShares
// issues while probing candidate share paths.
const DefaultScanWorkers = 4

// FindShares probes the n candidate share paths for basePath concurrently
// and reports which exist. present is returned sorted by evaluation point
// (ascending); missing lists the evaluation points (1-indexed) with no file
// on disk. A worker pool bounds concurrent file descriptors the way
// ParallelScanner bounded concurrent chain requests in the teacher.
func FindShares(ctx context.Context, basePath string, n, maxWorkers int) (present []string, missing []int) {
	if maxWorkers <= 0 {
		maxWorkers = DefaultScanWorkers
	}
	if n < maxWorkers {
		maxWorkers = n
	}

	candidates := SharePaths(basePath, n)
	type probeResult struct {
		index  int
		path   string
		exists bool
	}

	jobs := make(chan int, n)
	results := make(chan probeResult, n)

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if ctx.Err() != nil {
					results <- probeResult{index: i, path: candidates[i]}
					continue
				}
				_, err := os.Stat(candidates[i])
				results <- probeResult{index: i, path: candidates[i], exists: err == nil}
			}
		}()
	}

	for i := range candidates {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	found := make([]probeResult, 0, n)
	for r := range results {
		found = append(found, r)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].index < found[j].index })

	for _, r := range found {
		if r.exists {
			present = append(present, r.path)
		} else {
			missing = append(missing, r.index+1)
		}
	}

	return present, missing
}

// ValidateShareList checks that paths is long enough to satisfy the
// threshold k and contains no duplicate entries before decode attempts to
// open any of them.
func ValidateShareList(paths []string, k int) error {
	if len(paths) < k {
		return shardErr.WithDetails(shardErr.ErrTooFewShares, map[string]string{
			"have": strconv.Itoa(len(paths)),
			"need": strconv.Itoa(k),
		})
	}

	seen := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			return shardErr.WithDetails(shardErr.ErrDuplicateEvaluationPoint, map[string]string{
				"path": p,
			})
		}
		seen[p] = struct{}{}
	}

	return nil
}
