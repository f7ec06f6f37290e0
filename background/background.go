package background

import (
	"encoding/json"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	log "github.com/sirupsen/logrus"
)

const logPrefix = "background"

// Task names shared between the api server (enqueuer) and the worker.
const (
	TaskAuditEvent         = "audit_event"
	TaskClearForcePriority = "clear_force_priority"
)

// Enqueuer submits best-effort background work. Every method is
// fire-and-forget from the caller's point of view: a returned error is
// for logging only and must never gate the request that raised it.
type Enqueuer struct {
	server *machinery.Server
}

func NewEnqueuer(server *machinery.Server) *Enqueuer {
	return &Enqueuer{server: server}
}

// AuditEvent records a structured event on the audit channel.
func (e *Enqueuer) AuditEvent(event string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = e.server.SendTask(&tasks.Signature{
		Name: TaskAuditEvent,
		Args: []tasks.Arg{
			{Type: "string", Value: event},
			{Type: "string", Value: string(body)},
		},
	})
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("enqueue audit event")
	}
	return err
}

// ClearForcePriority asks the worker to drop the force-priority flag on
// a location that was just called.
func (e *Enqueuer) ClearForcePriority(locationID string) error {
	_, err := e.server.SendTask(&tasks.Signature{
		Name: TaskClearForcePriority,
		Args: []tasks.Arg{
			{Type: "string", Value: locationID},
		},
	})
	if err != nil {
		log.WithField("prefix", logPrefix).WithError(err).Warn("enqueue clear force priority")
	}
	return err
}
