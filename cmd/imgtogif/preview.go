package main

import (
	"bytes"
	"fmt"
	"image/gif"
	"os"

	"github.com/kevin-cantwell/dotmatrix"
	"github.com/spf13/cobra"

	"github.com/OTKUSteyler/IMGTOGIF/internal/pipeline"
)

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Convert an image and render the resulting GIF in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Int("width", 0, "Target width (0 = keep)")
	previewCmd.Flags().Float32("luminosity", 0.45, "Braille rendering luminosity threshold")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	width, _ := cmd.Flags().GetInt("width")
	result, err := pipeline.Run(data, pipeline.Options{TargetWidth: width})
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	// Render the converted GIF, not the source: what you see is what a
	// GIF viewer would get.
	giff, err := gif.DecodeAll(bytes.NewReader(result.Data))
	if err != nil {
		return fmt.Errorf("decoding produced GIF: %w", err)
	}

	luminosity, _ := cmd.Flags().GetFloat32("luminosity")
	enc := dotmatrix.NewGIFEncoder(dotmatrix.Config{Luminosity: luminosity})
	if err := enc.Encode(os.Stdout, giff); err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	return nil
}
