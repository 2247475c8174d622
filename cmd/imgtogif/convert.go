package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/OTKUSteyler/IMGTOGIF/internal/config"
	"github.com/OTKUSteyler/IMGTOGIF/internal/pipeline"
	"github.com/OTKUSteyler/IMGTOGIF/internal/port"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an image file or URL to a GIF",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().StringP("input", "i", "", "Input image file")
	convertCmd.Flags().String("url", "", "Fetch the input image from a URL instead")
	convertCmd.Flags().StringP("output", "o", "", "Output GIF file")
	convertCmd.Flags().Int("width", 0, "Target width (0 = derive or keep)")
	convertCmd.Flags().Int("height", 0, "Target height (0 = derive or keep)")
	convertCmd.Flags().Float32("blur", 0, "Gaussian blur sigma applied before quantization")
	convertCmd.Flags().String("quantizer", "", "Quantizer (uniform, mediancut)")
	convertCmd.Flags().Bool("transparent", false, "Mark palette index 0 as transparent")
	convertCmd.Flags().String("config", "", "YAML config file with defaults")
	convertCmd.Flags().Duration("fetch-timeout", 30*time.Second, "Timeout for --url fetches")
	convertCmd.MarkFlagRequired("output")
	convertCmd.MarkFlagsMutuallyExclusive("input", "url")
	rootCmd.AddCommand(convertCmd)
}

// convertOptions resolves flag > config file > built-in for every option.
func convertOptions(cmd *cobra.Command) (pipeline.Options, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts := pipeline.Options{
		TargetWidth:  cfg.Defaults.Width,
		TargetHeight: cfg.Defaults.Height,
		BlurSigma:    cfg.Defaults.BlurSigma,
	}
	if cmd.Flags().Changed("width") {
		opts.TargetWidth, _ = cmd.Flags().GetInt("width")
	}
	if cmd.Flags().Changed("height") {
		opts.TargetHeight, _ = cmd.Flags().GetInt("height")
	}
	if cmd.Flags().Changed("blur") {
		opts.BlurSigma, _ = cmd.Flags().GetFloat32("blur")
	}

	quantizerStr := cfg.Defaults.Quantizer
	if cmd.Flags().Changed("quantizer") {
		quantizerStr, _ = cmd.Flags().GetString("quantizer")
	}
	opts.Quantizer, err = pipeline.ParseQuantizer(quantizerStr)
	if err != nil {
		return pipeline.Options{}, err
	}

	opts.Transparent, _ = cmd.Flags().GetBool("transparent")
	return opts, nil
}

// loadInput reads the source bytes from a file or over HTTP.
func loadInput(cmd *cobra.Command) ([]byte, string, error) {
	inputPath, _ := cmd.Flags().GetString("input")
	inputURL, _ := cmd.Flags().GetString("url")

	switch {
	case inputPath != "":
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return nil, "", fmt.Errorf("reading input: %w", err)
		}
		return data, inputPath, nil
	case inputURL != "":
		timeout, _ := cmd.Flags().GetDuration("fetch-timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		fetcher := &port.HTTPFetcher{}
		data, err := fetcher.Fetch(ctx, inputURL)
		if err != nil {
			return nil, "", err
		}
		return data, inputURL, nil
	default:
		return nil, "", fmt.Errorf("either --input or --url is required")
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	outputPath, _ := cmd.Flags().GetString("output")

	opts, err := convertOptions(cmd)
	if err != nil {
		return err
	}
	inputData, source, err := loadInput(cmd)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(inputData, opts)
	if err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	fmt.Printf("Converted %s %dx%d → GIF %dx%d\n",
		result.Format, result.SrcWidth, result.SrcHeight, result.Width, result.Height)
	fmt.Printf("Input:  %s (%d bytes)\n", source, len(inputData))
	fmt.Printf("Output: %s (%d bytes)\n", outputPath, len(result.Data))
	if result.OverflowPixels > 0 {
		fmt.Printf("Note: %d pixels exceeded the 256-color palette and were mapped to the first color\n",
			result.OverflowPixels)
	}
	return nil
}
