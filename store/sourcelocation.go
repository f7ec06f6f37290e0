package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalpoint/callhub-api/schema"
)

// SourceLocations - operations on unreconciled imported records
type SourceLocations interface {
	GetSourceLocation(id primitive.ObjectID) (*schema.SourceLocation, error)
	RandomUnmatchedSourceLocation() (*schema.SourceLocation, error)
	MatchSourceLocation(sourceID, locationID primitive.ObjectID) error
	UnmatchSourceLocation(sourceID primitive.ObjectID) error
	DismissSourceLocation(sourceID primitive.ObjectID) error
	UndismissSourceLocation(sourceID primitive.ObjectID) error
}

func (m *mongoDB) GetSourceLocation(id primitive.ObjectID) (*schema.SourceLocation, error) {
	c := m.client.Database(m.database).Collection(schema.SourceLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var source schema.SourceLocation
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&source); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSourceLocationNotFound
		}
		return nil, &LookupError{Op: "get source location", Params: map[string]interface{}{"id": id.Hex()}, Err: err}
	}

	return &source, nil
}

// RandomUnmatchedSourceLocation picks one unmatched, undismissed source
// location at random via $sample. Two reviewers can draw the same record;
// that race is accepted, the second commit simply re-applies the match.
func (m *mongoDB) RandomUnmatchedSourceLocation() (*schema.SourceLocation, error) {
	c := m.client.Database(m.database).Collection(schema.SourceLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"matched": false, "rejected": false}},
		{"$sample": bson.M{"size": 1}},
	}

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("sample source location with error: %s", err)
		return nil, &LookupError{Op: "random source location", Params: nil, Err: err}
	}

	var results []schema.SourceLocation
	if err := cursor.All(ctx, &results); err != nil {
		return nil, &LookupError{Op: "random source location", Params: nil, Err: err}
	}
	if len(results) == 0 {
		return nil, ErrNoSourceLocation
	}

	return &results[0], nil
}

// MatchSourceLocation commits a reviewer's match decision, associating
// the source record with a canonical location.
func (m *mongoDB) MatchSourceLocation(sourceID, locationID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{
		"matched":    true,
		"matched_id": locationID.Hex(),
	}}
	return m.updateSourceLocation("match source location", sourceID, update)
}

// UnmatchSourceLocation is the compensating write for an undone match.
func (m *mongoDB) UnmatchSourceLocation(sourceID primitive.ObjectID) error {
	update := bson.M{
		"$set":   bson.M{"matched": false},
		"$unset": bson.M{"matched_id": ""},
	}
	return m.updateSourceLocation("unmatch source location", sourceID, update)
}

func (m *mongoDB) DismissSourceLocation(sourceID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"rejected": true}}
	return m.updateSourceLocation("dismiss source location", sourceID, update)
}

func (m *mongoDB) UndismissSourceLocation(sourceID primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"rejected": false}}
	return m.updateSourceLocation("undismiss source location", sourceID, update)
}

func (m *mongoDB) updateSourceLocation(op string, sourceID primitive.ObjectID, update bson.M) error {
	c := m.client.Database(m.database).Collection(schema.SourceLocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.UpdateOne(ctx, bson.M{"_id": sourceID}, update); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("%s with error: %s", op, err)
		return &WriteError{Op: op, Params: map[string]interface{}{"source_id": sourceID.Hex()}, Err: err}
	}
	return nil
}
