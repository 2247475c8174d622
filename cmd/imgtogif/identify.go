package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OTKUSteyler/IMGTOGIF/internal/gifenc"
	"github.com/OTKUSteyler/IMGTOGIF/internal/imaging"
)

var identifyCmd = &cobra.Command{
	Use:   "identify [file]",
	Short: "Inspect an image and its palette footprint",
	Args:  cobra.ExactArgs(1),
	RunE:  runIdentify,
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	raw, format, err := imaging.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	_, _, stats := gifenc.Quantize(raw)

	fmt.Printf("File:       %s\n", path)
	fmt.Printf("Format:     %s\n", format)
	fmt.Printf("Dimensions: %d x %d\n", raw.Width, raw.Height)
	fmt.Printf("File size:  %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	fmt.Printf("Quantized colors: %d\n", stats.DistinctColors)
	if stats.OverflowPixels > 0 {
		fmt.Printf("Palette overflow: %d pixels would collapse to the first color\n", stats.OverflowPixels)
	}
	fmt.Printf("Supported formats: %s\n", strings.Join(imaging.Codecs().Formats, ", "))
	return nil
}
