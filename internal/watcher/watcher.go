// Package watcher turns files dropped into the input directory into
// document-processing jobs on the worker stream.
package watcher

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/minatoaquaMK2/LightRAG/internal/multimodal"
	"github.com/rs/zerolog"
)

// JobPublisher is the stream side of the watcher, satisfied by the
// redis stream publisher.
type JobPublisher interface {
	Publish(ctx context.Context, job multimodal.ProcessJob) (string, error)
}

type Watcher struct {
	watcher    *fsnotify.Watcher
	publisher  JobPublisher
	outputDir  string
	extensions []string
	logger     *zerolog.Logger
}

func New(publisher JobPublisher, outputDir string, extensions []string, logger *zerolog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if outputDir == "" {
		outputDir = "./output"
	}

	return &Watcher{
		watcher:    w,
		publisher:  publisher,
		outputDir:  outputDir,
		extensions: extensions,
		logger:     logger,
	}, nil
}

// Watch blocks until ctx is cancelled, publishing a job for every
// created or written file with a supported extension under dir.
func (w *Watcher) Watch(ctx context.Context, dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info().Str("dir", dir).Msg("Watching input directory")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}
			if !w.isSupportedExtension(event.Name) {
				continue
			}
			w.enqueue(ctx, event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error().Err(err).Msg("Watcher error")
		}
	}
}

func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) enqueue(ctx context.Context, path string) {
	job := multimodal.ProcessJob{
		JobID:     uuid.NewString(),
		FilePath:  path,
		OutputDir: w.outputDir,
	}

	id, err := w.publisher.Publish(ctx, job)
	if err != nil {
		w.logger.Error().Err(err).Str("file_path", path).Msg("Failed to publish job")
		return
	}

	w.logger.Info().
		Str("id", id).
		Str("job_id", job.JobID).
		Str("file_path", path).
		Msg("Job published")
}

func (w *Watcher) isSupportedExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range w.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
