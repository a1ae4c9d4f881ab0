package queue

import (
	"context"
	"log"
	"sync"
	"time"

	"teamsync/internal/models"
	"teamsync/internal/repository"
)

const (
	// MaxRetries is the maximum number of automatic retries for failed writes.
	MaxRetries = 3
	// RetryDelay is the base delay between retries (exponential backoff).
	RetryDelay = 2 * time.Second
	// WriteTimeout bounds each persistence attempt.
	WriteTimeout = 5 * time.Second
)

// Processor drains activity jobs from the queue and persists them. Activity
// recording is best effort: exhausted retries are logged and dropped, never
// surfaced to the request that produced them.
type Processor struct {
	queue        *MemoryQueue
	activities   repository.ActivityRepository
	workerCount  int
	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

// NewProcessor creates a new activity job processor.
func NewProcessor(queue *MemoryQueue, activities repository.ActivityRepository, workerCount int) *Processor {
	return &Processor{
		queue:       queue,
		activities:  activities,
		workerCount: workerCount,
		shutdownCh:  make(chan struct{}),
	}
}

// Start begins processing jobs with the configured number of workers.
func (p *Processor) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
	log.Printf("Activity processor started with %d workers", p.workerCount)
}

// Stop gracefully stops the processor, waiting for workers to finish.
func (p *Processor) Stop() {
	p.shutdownOnce.Do(func() {
		close(p.shutdownCh)
		p.queue.Close()
	})
	p.wg.Wait()
	log.Println("Activity processor stopped")
}

func (p *Processor) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log.Printf("Worker %d started", id)

	for {
		job, err := p.queue.Dequeue(ctx)
		if err != nil {
			if err == ErrQueueClosed || err == context.Canceled {
				log.Printf("Worker %d shutting down", id)
				return
			}
			continue
		}
		p.processJob(job)
	}
}

func (p *Processor) processJob(job ActivityJob) {
	ctx, cancel := context.WithTimeout(context.Background(), WriteTimeout)
	defer cancel()

	activity := &models.Activity{
		TeamID:    job.TeamID,
		ActorID:   job.ActorID,
		Kind:      job.Kind,
		Detail:    job.Detail,
		CreatedAt: job.OccurredAt,
	}

	if err := p.activities.Create(ctx, activity); err != nil {
		log.Printf("Failed to record %s activity for team %s: %v", job.Kind, job.TeamID.Hex(), err)
		p.handleFailure(job)
	}
}

func (p *Processor) handleFailure(job ActivityJob) {
	job.RetryCount++

	if job.RetryCount >= MaxRetries {
		log.Printf("Dropping %s activity for team %s after %d attempts", job.Kind, job.TeamID.Hex(), job.RetryCount)
		return
	}

	delay := RetryDelay * time.Duration(1<<uint(job.RetryCount-1))

	// Retry waits on shutdownCh instead of the worker context so in-flight
	// retries resolve during graceful shutdown.
	go func() {
		select {
		case <-p.shutdownCh:
			log.Printf("Shutdown during retry delay, dropping %s activity for team %s", job.Kind, job.TeamID.Hex())
		case <-time.After(delay):
			if err := p.queue.Enqueue(job); err != nil {
				log.Printf("Failed to re-enqueue %s activity for team %s: %v", job.Kind, job.TeamID.Hex(), err)
			}
		}
	}()
}
