package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexLocationCollection())
	panicIfError(m.IndexSourceLocationCollection())
	panicIfError(m.IndexMergeTaskCollection())
	panicIfError(m.IndexReportCollection())
}

func (m *MongoDBIndexer) IndexLocationCollection() error {
	return m.createIndex(LocationCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexSourceLocationCollection() error {
	if err := m.createIndex(SourceLocationCollection, mongo.IndexModel{
		Keys: bson.M{
			"source_id": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(SourceLocationCollection, mongo.IndexModel{
		Keys: bson.M{
			"matched":  1,
			"rejected": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexMergeTaskCollection() error {
	return m.createIndex(MergeTaskCollection, mongo.IndexModel{
		Keys: bson.M{
			"type":     1,
			"resolved": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexReportCollection() error {
	return m.createIndex(ReportCollection, mongo.IndexModel{
		Keys: bson.M{
			"location_id": 1,
			"ts":          -1,
		},
	})
}
