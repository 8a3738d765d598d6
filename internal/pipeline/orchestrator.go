package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/docforge/outliner/internal/layout"
	"github.com/docforge/outliner/internal/outline"
	"github.com/docforge/outliner/internal/profile"
)

// Orchestrator runs outline extraction for uploaded documents behind a
// bounded queue of worker goroutines. Each job is local to one document;
// there is no shared state between documents beyond the job registry.
type Orchestrator struct {
	jobs        *JobStore
	queue       chan *Job
	log         *slog.Logger
	stats       *RunStats
	workers     int
	samplePages int

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// OrchestratorConfig holds the pipeline knobs the orchestrator needs.
type OrchestratorConfig struct {
	Workers      int
	MaxQueueSize int
	SamplePages  int
	JobTTL       time.Duration
}

// NewOrchestrator creates the pipeline; call Start to launch workers.
func NewOrchestrator(cfg OrchestratorConfig, log *slog.Logger, stats *RunStats) *Orchestrator {
	return &Orchestrator{
		jobs:        NewJobStore(cfg.JobTTL),
		queue:       make(chan *Job, cfg.MaxQueueSize),
		log:         log,
		stats:       stats,
		workers:     cfg.Workers,
		samplePages: cfg.SamplePages,
	}
}

// Start launches worker goroutines and the job store cleanup loop.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.workers; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					o.process(job)
				}
			}
		}()
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.Fail("job queue is full")
		return fmt.Errorf("job queue is full (%d)", cap(o.queue))
	}
}

// GetJob returns a job by ID, or nil.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns the current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Stats returns the shared latency tracker.
func (o *Orchestrator) Stats() *RunStats {
	return o.stats
}

// process runs the full extraction for one job: decode the layout, build
// the style profile, classify headings. A document that fails to decode
// fails the job and nothing else.
func (o *Orchestrator) process(job *Job) {
	log := o.log.With("job_id", job.ID, "file", job.Filename)

	job.SetStatus(StatusDecoding)
	doc, err := layout.OpenReader(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("decode failed", "error", err)
		job.Fail(fmt.Sprintf("decode: %s", err))
		return
	}

	job.SetStatus(StatusExtracting)
	start := time.Now()
	prof := profile.Build(doc.Pages, o.samplePages)
	res := outline.Extract(doc, prof)
	if o.stats != nil {
		o.stats.Record(time.Since(start).Milliseconds())
	}

	if err := outline.Validate(res, doc.PageCount()); err != nil {
		log.Error("invalid outline", "error", err)
		job.Fail(fmt.Sprintf("validate: %s", err))
		return
	}

	job.Complete(res, doc.PageCount())
	log.Info("outline extracted", "pages", doc.PageCount(), "headings", len(res.Outline))
}
