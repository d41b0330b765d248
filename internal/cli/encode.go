package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/shardfile/internal/discovery"
	"github.com/mrz1836/shardfile/internal/entropy"
	"github.com/mrz1836/shardfile/internal/metrics"
	"github.com/mrz1836/shardfile/internal/output"
	"github.com/mrz1836/shardfile/internal/sharecodec"
	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	encodeDatafile  string
	encodeShares    int
	encodeMinShares int
	encodeForce     bool
)

// encodeCmd splits a file into n share files, any k of which reconstruct it.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Split a file into share files",
	Long: `Split a file into n share files such that any k of them reconstruct
the original, and no fewer than k reveal anything about its contents.

Sharing is computed word-by-word over GF(2^64): each 8-byte word of the
input gets its own random degree-(k-1) polynomial, so reconstructing any
single word never requires touching the rest of the file.

Example:
  shardfile encode --datafile secret.txt --shares 5 --min-shares 3
  shardfile encode --datafile secret.txt -n 5 -k 3 --force`,
	Args: cobra.NoArgs,
	RunE: runEncode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeDatafile, "datafile", "", "path of the file to split into shares (required)")
	encodeCmd.Flags().IntVarP(&encodeShares, "shares", "n", 0, "total number of shares to produce (default: from config)")
	encodeCmd.Flags().IntVarP(&encodeMinShares, "min-shares", "k", 0, "minimum shares required to reconstruct (default: from config)")
	encodeCmd.Flags().BoolVar(&encodeForce, "force", false, "overwrite existing share files without prompting")
	_ = encodeCmd.MarkFlagRequired("datafile")
}

func runEncode(cmd *cobra.Command, _ []string) error {
	inputPath := encodeDatafile

	n := encodeShares
	if n == 0 {
		n = cfg.DefaultShares()
	}
	k := encodeMinShares
	if k == 0 {
		k = cfg.DefaultMinShares()
	}

	if k < 1 {
		return shardErr.ErrThresholdInvalid
	}
	if n < k {
		return shardErr.ErrSharesInsufficient
	}
	if k == 1 {
		output.Warn("min-shares=1 provides no secrecy: any single share reveals the entire file")
	}

	if !encodeForce {
		existing := discovery.SharePaths(inputPath, n)
		for _, p := range existing {
			if _, err := os.Stat(p); err == nil {
				if !promptConfirmation() {
					return shardErr.WithSuggestion(
						shardErr.ErrIO,
						"use --force to overwrite existing share files",
					)
				}
				break
			}
		}
	}

	start := time.Now()
	info, statErr := os.Stat(inputPath)
	var wordCount int
	if statErr == nil {
		wordCount = int((info.Size() + 7) / 8)
	}

	err := sharecodec.Encode(inputPath, n, k, entropy.New())
	metrics.Global.RecordEncode(wordCount, n, time.Since(start), err)
	if err != nil {
		return err
	}

	logger.Debug("encoded %s into %d shares (k=%d) in %s", inputPath, n, k, time.Since(start))

	w := cmd.OutOrStdout()
	out(w, "Wrote %d share files for %s (reconstructable from any %d)\n", n, inputPath, k)
	for i := 1; i <= n; i++ {
		outln(w, fmt.Sprintf("  %s", sharecodec.SharePath(inputPath, i)))
	}

	return nil
}
