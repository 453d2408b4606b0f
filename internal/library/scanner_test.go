package library

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o600); err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
}

func TestScan_FiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp3", "B.MP3", "c.Mp3", "cover.jpg", "notes.txt", "d.mp3.part", "flac.flac"} {
		touch(t, filepath.Join(dir, name))
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp3"), 0o755); err != nil {
		t.Fatal(err)
	}
	touch(t, filepath.Join(dir, "sub.mp3", "nested.mp3"))

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}

	want := []string{"B.MP3", "a.mp3", "c.Mp3"}
	if !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	got, err := Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Scan() = %v, want empty", got)
	}
}

func TestScan_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := Scan(dir)
	if err == nil {
		t.Fatal("Scan() expected error")
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("Scan() error = %T, want *ScanError", err)
	}
	if scanErr.Dir != dir {
		t.Errorf("ScanError.Dir = %q, want %q", scanErr.Dir, dir)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ScanError should wrap os.ErrNotExist, got %v", err)
	}
}

func TestScan_NamesAreRelative(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "song.mp3"))

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(got) != 1 || got[0] != "song.mp3" {
		t.Errorf("Scan() = %v, want [song.mp3]", got)
	}
}

func TestScan_SortedByFilename(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.mp3", "a.mp3", "b.mp3"} {
		touch(t, filepath.Join(dir, name))
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	want := []string{"a.mp3", "b.mp3", "c.mp3"}
	if !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}

func TestScan_Symlinks(t *testing.T) {
	dir := t.TempDir()
	outside := t.TempDir()
	touch(t, filepath.Join(outside, "target.mp3"))
	if err := os.Mkdir(filepath.Join(outside, "folder"), 0o755); err != nil {
		t.Fatal(err)
	}

	links := map[string]string{
		"file.mp3":   filepath.Join(outside, "target.mp3"),
		"folder.mp3": filepath.Join(outside, "folder"),
		"broken.mp3": filepath.Join(outside, "missing.mp3"),
	}
	for name, target := range links {
		if err := os.Symlink(target, filepath.Join(dir, name)); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}
	}

	got, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	want := []string{"file.mp3"}
	if !slices.Equal(got, want) {
		t.Errorf("Scan() = %v, want %v", got, want)
	}
}
