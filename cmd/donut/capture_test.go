package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-donut/internal/capture"
	"github.com/vovakirdan/tui-donut/internal/core"
	"github.com/vovakirdan/tui-donut/internal/storage"
)

// useTempHome points HOME, the working directory and the history
// database at a fresh temp dir.
func useTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	prev := flagDBPath
	flagDBPath = filepath.Join(dir, ".donut", "history.db")
	t.Cleanup(func() { flagDBPath = prev })
	return dir
}

func TestCaptureDefaultRun(t *testing.T) {
	dir := useTempHome(t)

	cfg, preset, err := resolveConfig(configRequest{})
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}

	var out bytes.Buffer
	if err := captureToFile(context.Background(), cfg, preset, log.New(io.Discard), &out); err != nil {
		t.Fatalf("captureToFile() failed: %v", err)
	}
	if out.String() != "done\n" {
		t.Errorf("output = %q, expected %q", out.String(), "done\n")
	}

	frames, err := capture.ReadJSON(filepath.Join(dir, "donut.json"))
	if err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	if len(frames) != 1600 {
		t.Fatalf("got %d frames, expected 1600", len(frames))
	}
	for i, frame := range frames {
		rows := strings.Split(frame, "\n")
		if len(rows) != 40 {
			t.Fatalf("frame %d has %d rows, expected 40", i, len(rows))
		}
		for y, row := range rows {
			if len(row) != 40 {
				t.Fatalf("frame %d row %d has %d chars, expected 40", i, y, len(row))
			}
		}
	}
	if frames[0] == frames[1] {
		t.Error("consecutive frames should differ")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	captures, err := store.RecentCaptures(0)
	if err != nil {
		t.Fatalf("RecentCaptures() failed: %v", err)
	}
	if len(captures) != 1 {
		t.Fatalf("got %d recorded captures, expected 1", len(captures))
	}
	if c := captures[0]; c.Preset != "classic" || c.Frames != 1600 || c.ScreenSize != 40 || c.Path != "donut.json" {
		t.Errorf("recorded capture = %+v", c)
	}
}

func TestCaptureWriteFailure(t *testing.T) {
	dir := useTempHome(t)

	size := 8
	cfg, preset, err := resolveConfig(configRequest{Size: &size})
	if err != nil {
		t.Fatalf("resolveConfig() failed: %v", err)
	}
	// a directory in place of the output file
	cfg.Capture.Output = dir

	var out bytes.Buffer
	err = captureToFile(context.Background(), cfg, preset, log.New(io.Discard), &out)
	if !errors.Is(err, core.ErrIOFailure) {
		t.Fatalf("captureToFile() error = %v, expected ErrIOFailure", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be printed on failure, got %q", out.String())
	}
}
