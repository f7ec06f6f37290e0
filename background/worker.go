package background

import (
	"encoding/json"

	"github.com/RichardKnop/machinery/v1"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/store"
)

// Worker consumes the best-effort task queue.
type Worker struct {
	server *machinery.Server
	store  store.Locations
}

func NewWorker(server *machinery.Server, s store.Locations) *Worker {
	return &Worker{server: server, store: s}
}

// Register binds the task handlers onto the machinery server.
func (w *Worker) Register() error {
	return w.server.RegisterTasks(map[string]interface{}{
		TaskAuditEvent:         w.auditEvent,
		TaskClearForcePriority: w.clearForcePriority,
	})
}

// Run launches the consumer loop and blocks until it stops.
func (w *Worker) Run(tag string, concurrency int) error {
	worker := w.server.NewWorker(tag, concurrency)
	return worker.Launch()
}

// auditEvent emits the structured event record. Nothing awaits the
// result; a malformed payload is logged as-is rather than dropped.
func (w *Worker) auditEvent(event, payload string) error {
	var body map[string]interface{}
	if err := json.Unmarshal([]byte(payload), &body); err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"event":   event,
			"payload": payload,
		}).Info("audit event")
		return nil
	}

	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"event":  event,
		"body":   body,
	}).Info("audit event")
	return nil
}

func (w *Worker) clearForcePriority(locationID string) error {
	id, err := primitive.ObjectIDFromHex(locationID)
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warnf("bad location id %q", locationID)
		return nil
	}
	return w.store.ClearForcePriority(id)
}
