package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vitalpoint/callhub-api/schema"
)

// Reports - call report persistence
type Reports interface {
	SaveReport(report *schema.Report) (primitive.ObjectID, error)
}

// SaveReport commits a triaged call report to the primary store and
// returns its id so best-effort mirrors can reference it.
func (m *mongoDB) SaveReport(report *schema.Report) (primitive.ObjectID, error) {
	c := m.client.Database(m.database).Collection(schema.ReportCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if report.Timestamp == 0 {
		report.Timestamp = time.Now().Unix()
	}

	result, err := c.InsertOne(ctx, report)
	if err != nil {
		return primitive.NilObjectID, &WriteError{Op: "save report", Params: map[string]interface{}{
			"location_id": report.LocationIDs,
			"reported_by": report.ReportedBy,
		}, Err: err}
	}

	return result.InsertedID.(primitive.ObjectID), nil
}
