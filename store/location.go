package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalpoint/callhub-api/external/geoinfo"
	"github.com/vitalpoint/callhub-api/schema"
)

// Locations - operations on canonical location records
type Locations interface {
	NearbyLocations(center schema.Coordinates, radiusMeters int, limit int64) ([]schema.Location, error)
	GetLocation(id primitive.ObjectID) (*schema.Location, error)
	CreateLocation(loc *schema.Location) (primitive.ObjectID, error)
	DeleteLocation(id primitive.ObjectID) error
	MergeLocations(winnerID, loserID primitive.ObjectID) error
	ClearForcePriority(id primitive.ObjectID) error
}

// NearbyLocations runs a geo-radius search against the 2dsphere index and
// returns matching locations in the order mongo yields them (nearest
// first). The caller is responsible for any further ranking.
func (m *mongoDB) NearbyLocations(center schema.Coordinates, radiusMeters int, limit int64) ([]schema.Location, error) {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	params := map[string]interface{}{
		"latitude":  center.Latitude,
		"longitude": center.Longitude,
		"radius":    radiusMeters,
		"limit":     limit,
	}

	cur, err := c.Find(ctx, distanceQuery(radiusMeters, center))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby locations with error: %s", err)
		return nil, &LookupError{Op: "nearby locations", Params: params, Err: err}
	}

	locations := make([]schema.Location, 0)
	for cur.Next(ctx) {
		var loc schema.Location
		if err := cur.Decode(&loc); err != nil {
			return nil, &LookupError{Op: "nearby locations", Params: params, Err: err}
		}
		locations = append(locations, loc)
		if limit > 0 && int64(len(locations)) >= limit {
			break
		}
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby location query gets %d records near long:%v lat:%v",
		len(locations), center.Longitude, center.Latitude)

	return locations, nil
}

func (m *mongoDB) GetLocation(id primitive.ObjectID) (*schema.Location, error) {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var loc schema.Location
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&loc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, &LookupError{Op: "get location", Params: map[string]interface{}{"id": id.Hex()}, Err: err}
	}
	return &loc, nil
}

// CreateLocation inserts a new canonical location. When the record has
// coordinates but no county or state, the geo client fills them in; a
// geocoding failure only logs, it never blocks the create.
func (m *mongoDB) CreateLocation(loc *schema.Location) (primitive.ObjectID, error) {
	if m.geoClient != nil && loc.Position != nil && loc.County == "" && loc.State == "" {
		results, err := m.geoClient.Get(schema.Coordinates{
			Latitude:  loc.Latitude(),
			Longitude: loc.Longitude(),
		})
		if err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("geocode new location")
		} else {
			loc.County, loc.State = geoinfo.AdministrativeArea(results)
		}
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	result, err := c.InsertOne(ctx, loc)
	if err != nil {
		return primitive.NilObjectID, &WriteError{Op: "create location", Params: map[string]interface{}{"name": loc.Name}, Err: err}
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (m *mongoDB) DeleteLocation(id primitive.ObjectID) error {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if _, err := c.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return &WriteError{Op: "delete location", Params: map[string]interface{}{"id": id.Hex()}, Err: err}
	}
	return nil
}

// MergeLocations folds the loser record into the winner. The loser keeps
// its document but is tombstoned with a pointer to the winner so stale
// references keep resolving.
func (m *mongoDB) MergeLocations(winnerID, loserID primitive.ObjectID) error {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	params := map[string]interface{}{
		"winner": winnerID.Hex(),
		"loser":  loserID.Hex(),
	}

	update := bson.M{"$set": bson.M{
		"merged":      true,
		"merged_into": winnerID,
	}}
	if _, err := c.UpdateOne(ctx, bson.M{"_id": loserID}, update); err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("merge locations with error: %s", err)
		return &WriteError{Op: "merge locations", Params: params, Err: err}
	}

	return nil
}

// ClearForcePriority drops the force-priority flag so a just-reported
// location is not immediately handed back out for calling.
func (m *mongoDB) ClearForcePriority(id primitive.ObjectID) error {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"force_priority": false}}
	if _, err := c.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return &WriteError{Op: "clear force priority", Params: map[string]interface{}{"id": id.Hex()}, Err: err}
	}
	return nil
}

func distanceQuery(distance int, cords schema.Coordinates) bson.D {
	return bson.D{{
		Key: "location",
		Value: bson.D{{
			Key: "$nearSphere",
			Value: bson.D{{
				Key: "$geometry",
				Value: bson.D{{
					Key:   "type",
					Value: "Point",
				}, {
					Key:   "coordinates",
					Value: bson.A{cords.Longitude, cords.Latitude},
				}, {
					Key:   "$maxDistance",
					Value: distance,
				}},
			}},
		}},
	}}
}
