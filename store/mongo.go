package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vitalpoint/callhub-api/external/geoinfo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// CallhubStore - interface for mongodb operations
type CallhubStore interface {
	Locations
	SourceLocations
	MergeTasks
	Reports
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client    *mongo.Client
	database  string
	geoClient geoinfo.GeoInfo
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewCallhubStore - return mongo db operations
func NewCallhubStore(client *mongo.Client, database string, geoClient geoinfo.GeoInfo) CallhubStore {
	return &mongoDB{
		client:    client,
		database:  database,
		geoClient: geoClient,
	}
}
