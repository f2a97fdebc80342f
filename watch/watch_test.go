package watch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/richinsley/glreflect/logging"
)

func waitEvent(t *testing.T, w *Watcher) string {
	t.Helper()
	select {
	case name, ok := <-w.Events():
		if !ok {
			t.Fatal("events closed")
		}
		return name
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a change")
	}
	return ""
}

func TestWatchWrite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "a.frag")
	other := filepath.Join(dir, "b.frag")
	for _, f := range []string{target, other} {
		if err := os.WriteFile(f, []byte("// v1"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := New(20*time.Millisecond, target)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("// unwatched"), 0644); err != nil {
		t.Fatal(err)
	}
	// several writes in a burst report once
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("// v2"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if got := waitEvent(t, w); got != target {
		t.Errorf("event for %q, want %q", got, target)
	}

	select {
	case name := <-w.Events():
		t.Errorf("unexpected second event for %q", name)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchRenameOver(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "shader.vert")
	if err := os.WriteFile(target, []byte("// v1"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := New(10*time.Millisecond, target)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	tmp := filepath.Join(dir, ".shader.vert.swp")
	if err := os.WriteFile(tmp, []byte("// v2"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, target); err != nil {
		t.Fatal(err)
	}
	if got := waitEvent(t, w); got != target {
		t.Errorf("event for %q, want %q", got, target)
	}
}

func TestClose(t *testing.T) {
	f := filepath.Join(t.TempDir(), "x.comp")
	if err := os.WriteFile(f, nil, 0644); err != nil {
		t.Fatal(err)
	}
	w, err := New(DefaultSettle, f)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()
	w.Close()
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Error("event after close")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed")
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(DefaultSettle); err == nil {
		t.Error("expected an error with no files")
	}
	if _, err := New(DefaultSettle, filepath.Join(t.TempDir(), "nodir", "x.frag")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

func TestReportErrorLogsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(os.Stderr) })

	f := filepath.Join(t.TempDir(), "x.frag")
	if err := os.WriteFile(f, nil, 0644); err != nil {
		t.Fatal(err)
	}
	w, err := New(DefaultSettle, f)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	sent := errors.New("queue 100% full: %d events dropped")
	go w.reportError(sent)
	select {
	case got := <-w.Errors():
		if got != sent {
			t.Errorf("forwarded %v, want %v", got, sent)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("error not forwarded")
	}
	if !bytes.Contains(buf.Bytes(), []byte("watch: queue 100% full: %d events dropped")) {
		t.Errorf("log output = %q", buf.String())
	}
}
