package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrz1836/shardfile/internal/discovery"
	"github.com/mrz1836/shardfile/internal/metrics"
	"github.com/mrz1836/shardfile/internal/sharecodec"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var decodeDatafile string

// decodeCmd reconstructs a file from a set of its share files.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var decodeCmd = &cobra.Command{
	Use:   "decode <share_paths...>",
	Short: "Reconstruct a file from its share files",
	Long: `Reconstruct the original file from at least k of its share files.

share_paths names the share files to read, in any order; the list must
contain at least k of them, k being whatever min_shares value the first
listed share's own header records. If no share_paths are given, decode
discovers share files alongside --datafile by probing for
<datafile>_1, <datafile>_2, ... up to the configured default share
count (share.default_shares), and uses whichever ones are present.

Example:
  shardfile decode --datafile secret.txt
  shardfile decode --datafile secret.txt secret.txt_1 secret.txt_3 secret.txt_5`,
	Args: cobra.ArbitraryArgs,
	RunE: runDecode,
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVar(&decodeDatafile, "datafile", "", "output path for the reconstructed file (required)")
	_ = decodeCmd.MarkFlagRequired("datafile")
}

func runDecode(cmd *cobra.Command, args []string) error {
	outputPath := decodeDatafile

	sharePaths := args
	if len(sharePaths) == 0 {
		maxN := cfg.DefaultShares()
		present, _ := discovery.FindShares(cmd.Context(), outputPath, maxN, discovery.DefaultScanWorkers)
		sharePaths = present
	}

	start := time.Now()
	err := sharecodec.Decode(sharePaths, outputPath)
	var wordCount int
	if err == nil {
		if info, statErr := os.Stat(outputPath); statErr == nil {
			wordCount = int((info.Size() + 7) / 8)
		}
	}
	metrics.Global.RecordDecode(wordCount, len(sharePaths), time.Since(start), err)
	if err != nil {
		return err
	}

	logger.Debug("reconstructed %s from %d shares in %s", outputPath, len(sharePaths), time.Since(start))

	w := cmd.OutOrStdout()
	out(w, "Reconstructed %s from %d share files\n", outputPath, len(sharePaths))

	return nil
}
