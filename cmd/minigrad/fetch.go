package main

import (
	"flag"
	"fmt"
	"path"

	"github.com/born-ml/minigrad/internal/dataset"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

func runFetch(args []string) error {
	fs := flag.NewFlagSet("fetch", flag.ContinueOnError)
	dir := fs.String("dir", "~/.cache/minigrad", "Directory where dataset archives are cached.")
	url := fs.String("url", "", "URL of a gzip-compressed gob dataset archive.")
	checksum := fs.String("sha256", "", "If set, the expected SHA-256 checksum of the archive.")
	quiet := fs.Bool("quiet", false, "Disable the download progress bar.")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *url == "" {
		return errors.New("-url is required")
	}
	dataset.ShowProgressBar = !*quiet

	archive := dataset.MustPrepare[dataset.Archive](*dir, *url)
	if *checksum != "" {
		cached, err := dataset.CachePath(*dir, *url)
		if err != nil {
			return err
		}
		if err := dataset.ValidateChecksum(cached, *checksum); err != nil {
			return err
		}
	}

	table := newTable(lipgloss.Left, lipgloss.Right)
	table.Headers("Split", "Examples", "Features", "Classes")
	for _, s := range []struct {
		name  string
		split dataset.Split
	}{{"train", archive.Train}, {"valid", archive.Valid}, {"test", archive.Test}} {
		table.Row(s.name, humanize.Comma(int64(s.split.Len())), features(s.split), humanize.Comma(int64(classes(s.split))))
	}
	fmt.Println(titleStyle.Render(path.Base(*url)))
	fmt.Println(table.Render())
	return nil
}

func features(s dataset.Split) string {
	if s.Len() == 0 {
		return "-"
	}
	return humanize.Comma(int64(len(s.Inputs[0])))
}

func classes(s dataset.Split) int {
	seen := make(map[int]bool)
	for _, l := range s.Labels {
		seen[l] = true
	}
	return len(seen)
}
