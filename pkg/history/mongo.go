package history

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	vio "github.com/venndial/venndial/pkg/io"
)

// Default MongoDB database and collection names.
const (
	DefaultDatabase   = "venndial"
	DefaultCollection = "runs"
)

// MongoStore persists records to a MongoDB collection, one document per
// run, keyed by run ID.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	// URI is the connection string, e.g. "mongodb://localhost:27017".
	URI string

	// Database and Collection override the defaults when non-empty.
	Database   string
	Collection string
}

// NewMongoStore connects to MongoDB and verifies the connection with a
// ping before returning.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.URI, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", cfg.URI, err)
	}

	db := cfg.Database
	if db == "" {
		db = DefaultDatabase
	}
	coll := cfg.Collection
	if coll == "" {
		coll = DefaultCollection
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(db).Collection(coll),
	}, nil
}

// Put upserts a record keyed by its run ID.
func (s *MongoStore) Put(ctx context.Context, rec vio.ResultRecord) error {
	_, err := s.coll.ReplaceOne(ctx,
		bson.M{"run_id": rec.RunID},
		rec,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store run %s: %w", rec.RunID, err)
	}
	return nil
}

// Get retrieves a record by run ID.
func (s *MongoStore) Get(ctx context.Context, runID string) (vio.ResultRecord, error) {
	var rec vio.ResultRecord
	err := s.coll.FindOne(ctx, bson.M{"run_id": runID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return vio.ResultRecord{}, ErrNotFound
	}
	if err != nil {
		return vio.ResultRecord{}, fmt.Errorf("load run %s: %w", runID, err)
	}
	return rec, nil
}

// List returns records ordered by ascending fitness.
func (s *MongoStore) List(ctx context.Context, limit int) ([]vio.ResultRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "fitness", Value: 1}})
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer cursor.Close(ctx)

	var recs []vio.ResultRecord
	if err := cursor.All(ctx, &recs); err != nil {
		return nil, fmt.Errorf("decode runs: %w", err)
	}
	return recs, nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Ensure MongoStore implements Store.
var _ Store = (*MongoStore)(nil)
