package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewRequiresCallback(t *testing.T) {
	if _, err := New("data.csv", nil); err == nil {
		t.Fatal("expected error for nil onChange")
	}
}

func TestWatcherFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.csv")
	if err := os.WriteFile(path, []byte("header\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := New(path, func() error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("header\nrow\n"), 0644); err != nil {
		t.Fatalf("failed to update dataset: %v", err)
	}

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after a write")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.csv")
	if err := os.WriteFile(path, []byte("header\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	fired := make(chan struct{}, 1)
	w, err := New(path, func() error {
		select {
		case fired <- struct{}{}:
		default:
		}
		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	sibling := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(sibling, []byte("unrelated\n"), 0644); err != nil {
		t.Fatalf("failed to write sibling: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("onChange fired for an unrelated file")
	case <-time.After(debounceInterval + 500*time.Millisecond):
	}
}

func TestStopIsIdempotentAfterStart(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "survey.csv")
	if err := os.WriteFile(path, []byte("header\n"), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	w, err := New(path, func() error { return nil })
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if err := w.Stop(); err != nil {
		t.Errorf("Stop failed: %v", err)
	}
	if err := w.Stop(); err != nil {
		t.Errorf("second Stop failed: %v", err)
	}
}
