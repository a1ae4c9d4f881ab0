package queue

import (
	"log"
	"time"

	"teamsync/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recorder is the producer side of the activity pipeline. Record never
// blocks a request: a full or closed queue drops the record with a log line.
type Recorder struct {
	queue Queue
}

// NewRecorder creates a new Recorder.
func NewRecorder(queue Queue) *Recorder {
	return &Recorder{queue: queue}
}

// Record enqueues an audit record for asynchronous persistence.
func (r *Recorder) Record(teamID, actorID primitive.ObjectID, kind models.ActivityKind, detail string) {
	job := ActivityJob{
		TeamID:     teamID,
		ActorID:    actorID,
		Kind:       kind,
		Detail:     detail,
		OccurredAt: time.Now(),
	}

	if err := r.queue.Enqueue(job); err != nil {
		log.Printf("Dropping %s activity for team %s: %v", kind, teamID.Hex(), err)
	}
}
