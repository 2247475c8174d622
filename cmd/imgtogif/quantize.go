package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OTKUSteyler/IMGTOGIF/internal/gifenc"
	"github.com/OTKUSteyler/IMGTOGIF/internal/imaging"
)

var quantizeCmd = &cobra.Command{
	Use:   "quantize",
	Short: "Quantize to palette indices (raw output + JSON sidecar)",
	Long: `Runs only the quantization stage and writes the raw index buffer
plus a JSON sidecar describing the palette. Useful for debugging what the
GIF encoder will actually compress.`,
	RunE: runQuantize,
}

func init() {
	quantizeCmd.Flags().StringP("input", "i", "", "Input image file")
	quantizeCmd.Flags().StringP("output", "o", "", "Output raw index file")
	quantizeCmd.MarkFlagRequired("input")
	quantizeCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(quantizeCmd)
}

type quantizeMeta struct {
	Width          int        `json:"width"`
	Height         int        `json:"height"`
	Format         string     `json:"format"`
	DistinctColors int        `json:"distinct_colors"`
	OverflowPixels int        `json:"overflow_pixels"`
	Palette        [][3]uint8 `json:"palette"`
}

func runQuantize(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outputPath, _ := cmd.Flags().GetString("output")

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	raw, format, err := imaging.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", inputPath, err)
	}

	palette, indexed, stats := gifenc.Quantize(raw)
	if err := os.WriteFile(outputPath, indexed.Pix, 0644); err != nil {
		return fmt.Errorf("writing indices: %w", err)
	}

	meta := quantizeMeta{
		Width:          indexed.Width,
		Height:         indexed.Height,
		Format:         format,
		DistinctColors: stats.DistinctColors,
		OverflowPixels: stats.OverflowPixels,
		Palette:        make([][3]uint8, len(palette)),
	}
	for i, c := range palette {
		meta.Palette[i] = [3]uint8{c.R, c.G, c.B}
	}

	sidecarPath := strings.TrimSuffix(outputPath, ".raw") + ".json"
	sidecar, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding sidecar: %w", err)
	}
	if err := os.WriteFile(sidecarPath, sidecar, 0644); err != nil {
		return fmt.Errorf("writing sidecar: %w", err)
	}

	fmt.Printf("Quantized %dx%d: %d distinct colors → %s (+ %s)\n",
		indexed.Width, indexed.Height, stats.DistinctColors, outputPath, sidecarPath)
	return nil
}
