// Package discovery locates share files belonging to a plaintext path on
// disk and validates that a candidate list is usable for decode.
package discovery

import (
	"github.com/mrz1836/shardfile/internal/sharecodec"
)

// SharePaths returns the n candidate share paths for basePath: basePath_1
// through basePath_n, in evaluation-point order.
func SharePaths(basePath string, n int) []string {
	paths := make([]string, n)
	for i := 0; i < n; i++ {
		paths[i] = sharecodec.SharePath(basePath, i+1)
	}
	return paths
}
