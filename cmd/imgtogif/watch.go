package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/OTKUSteyler/IMGTOGIF/internal/config"
	"github.com/OTKUSteyler/IMGTOGIF/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Convert every image dropped into a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().String("config", "", "YAML config file with defaults")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch target: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch target %s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Printf("Watching %s for %s", dir, strings.Join(cfg.Watch.Extensions, " "))

	opts := pipeline.Options{
		TargetWidth:  cfg.Defaults.Width,
		TargetHeight: cfg.Defaults.Height,
		BlurSigma:    cfg.Defaults.BlurSigma,
	}
	if opts.Quantizer, err = pipeline.ParseQuantizer(cfg.Defaults.Quantizer); err != nil {
		return err
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !cfg.Watched(event.Name) {
				continue
			}
			if err := convertFile(event.Name, opts); err != nil {
				log.Printf("convert %s: %v", event.Name, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func convertFile(path string, opts pipeline.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	result, err := pipeline.Run(data, opts)
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".gif"
	if err := os.WriteFile(outPath, result.Data, 0644); err != nil {
		return fmt.Errorf("writing: %w", err)
	}
	log.Printf("Converted %s → %s (%dx%d, %d bytes)",
		path, outPath, result.Width, result.Height, len(result.Data))
	return nil
}
