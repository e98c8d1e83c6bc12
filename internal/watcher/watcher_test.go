package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/minatoaquaMK2/LightRAG/internal/multimodal"
	"github.com/rs/zerolog"
)

type capturingPublisher struct {
	mu   sync.Mutex
	jobs []multimodal.ProcessJob
}

func (p *capturingPublisher) Publish(_ context.Context, job multimodal.ProcessJob) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, job)
	return "1-0", nil
}

func (p *capturingPublisher) snapshot() []multimodal.ProcessJob {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]multimodal.ProcessJob(nil), p.jobs...)
}

func waitForJobs(t *testing.T, p *capturingPublisher, want int) []multimodal.ProcessJob {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		jobs := p.snapshot()
		if len(jobs) >= want {
			return jobs
		}
		time.Sleep(20 * time.Millisecond)
	}

	t.Fatalf("timed out waiting for %d jobs, got %d", want, len(p.snapshot()))
	return nil
}

func TestWatcher_PublishesJobForSupportedExtension(t *testing.T) {
	dir := t.TempDir()
	publisher := &capturingPublisher{}
	logger := zerolog.Nop()

	w, err := New(publisher, "./processed", []string{".pdf"}, &logger)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.Watch(ctx, dir)
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)

	path := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	jobs := waitForJobs(t, publisher, 1)

	if jobs[0].FilePath != path {
		t.Errorf("expected job for %s, got %s", path, jobs[0].FilePath)
	}
	if jobs[0].OutputDir != "./processed" {
		t.Errorf("expected output dir './processed', got %s", jobs[0].OutputDir)
	}
	if jobs[0].JobID == "" {
		t.Error("expected non-empty job ID")
	}

	cancel()
	<-done
}

func TestWatcher_IgnoresUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	publisher := &capturingPublisher{}
	logger := zerolog.Nop()

	w, err := New(publisher, "./output", []string{".pdf"}, &logger)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go w.Watch(ctx, dir)
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "notes.tmp"), []byte("scratch"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	// The unsupported file must not produce a job.
	time.Sleep(300 * time.Millisecond)
	if jobs := publisher.snapshot(); len(jobs) != 0 {
		t.Errorf("expected no jobs for unsupported extension, got %v", jobs)
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	publisher := &capturingPublisher{}
	logger := zerolog.Nop()

	w, err := New(publisher, "./output", []string{".pdf"}, &logger)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Stop()

	if err := w.Watch(context.Background(), "/does/not/exist"); err == nil {
		t.Error("expected error for missing directory")
	}
}
