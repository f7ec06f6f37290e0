package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalpoint/callhub-api/schema"
)

// MergeTasks - issuance and resolution of suspected-duplicate work
type MergeTasks interface {
	RequestMergeTask(query, region string) (*schema.Task, error)
	ResolveMergeTask(taskID primitive.ObjectID, resolution, reviewer string) error
}

// RequestMergeTask issues one unresolved potential-duplicate task,
// optionally narrowed by a free-text name query and a region. No claim is
// taken on the task: two reviewers racing for the same one is accepted,
// the second resolve just overwrites the first with the same outcome.
func (m *mongoDB) RequestMergeTask(query, region string) (*schema.Task, error) {
	c := m.client.Database(m.database).Collection(schema.MergeTaskCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	filter := bson.M{
		"type":     schema.TaskTypePotentialDuplicate,
		"resolved": false,
	}
	if region != "" {
		filter["region"] = region
	}
	if query != "" {
		filter["location.name"] = bson.M{"$regex": query, "$options": "i"}
	}

	params := map[string]interface{}{
		"query":  query,
		"region": region,
	}

	var task schema.Task
	if err := c.FindOne(ctx, filter).Decode(&task); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskQueueEmpty
		}
		log.WithField("prefix", mongoLogPrefix).Errorf("request merge task with error: %s", err)
		return nil, &LookupError{Op: "request merge task", Params: params, Err: err}
	}

	return &task, nil
}

// ResolveMergeTask marks a task consumed, recording the outcome and the
// acting reviewer.
func (m *mongoDB) ResolveMergeTask(taskID primitive.ObjectID, resolution, reviewer string) error {
	c := m.client.Database(m.database).Collection(schema.MergeTaskCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"resolved":    true,
		"resolution":  resolution,
		"resolved_by": reviewer,
	}}
	if _, err := c.UpdateOne(ctx, bson.M{"_id": taskID}, update); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("resolve merge task with error: %s", err)
		return &WriteError{Op: "resolve merge task", Params: map[string]interface{}{
			"task_id":    taskID.Hex(),
			"resolution": resolution,
		}, Err: err}
	}
	return nil
}
