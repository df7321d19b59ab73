package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/wayfinder-nav/wayfinder/internal/ui"
)

// genCmd generates typed Go destination code from the manifest.
func genCmd() *cobra.Command {
	var (
		output string
		stdout bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate typed Go destination code",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if output == "" {
				output = cfg.Output
			}

			if err := generateOnce(output, stdout); err != nil {
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
				os.Exit(1)
			}

			if !watch {
				return nil
			}
			return watchManifest(cfg.Manifest, output)
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "", "Output file (default from config)")
	cmd.Flags().BoolVar(&stdout, "stdout", false, "Write generated code to stdout")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate when the manifest changes")
	return cmd
}

// generateOnce loads the manifest and writes the generated source.
// The client is rebuilt each call so watch mode always sees a fresh parse.
func generateOnce(output string, stdout bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	src, err := client.Generate()
	if err != nil {
		return err
	}

	if stdout {
		_, err = os.Stdout.Write(src)
		return err
	}

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return err
	}
	fmt.Println(ui.Success("generated " + output))
	return nil
}

// watchManifest regenerates output whenever the manifest file changes.
// Editors replace files on save, so the watch is on the directory and
// filtered by name; events are debounced briefly to coalesce write bursts.
func watchManifest(manifest, output string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(manifest)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	fmt.Println(ui.Info("watching " + manifest + " (ctrl-c to stop)"))

	var timer *time.Timer
	regen := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(manifest) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case regen <- struct{}{}:
				default:
				}
			})
		case <-regen:
			if err := generateOnce(output, false); err != nil {
				// Keep watching through bad intermediate saves.
				fmt.Fprintln(os.Stderr, ui.FormatError(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(os.Stderr, ui.Warning("watch error: "+err.Error()))
		}
	}
}
