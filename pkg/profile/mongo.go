package profile

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matzehuels/graphloom/pkg/errors"
)

// Defaults for MongoStore.
const (
	DefaultMongoDatabase   = "graphloom"
	DefaultMongoCollection = "profiles"
)

// MongoOptions configures a MongoStore.
type MongoOptions struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// MongoStore keeps bundles as documents keyed by profileId and profileVersion.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects, pings and ensures the unique (id, version) index.
func NewMongoStore(ctx context.Context, opts MongoOptions) (*MongoStore, error) {
	if opts.URI == "" {
		return nil, fmt.Errorf("mongo URI is required")
	}
	if opts.Database == "" {
		opts.Database = DefaultMongoDatabase
	}
	if opts.Collection == "" {
		opts.Collection = DefaultMongoCollection
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, opts.ConnectTimeout)
	defer cancel()
	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(opts.ConnectTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	coll := client.Database(opts.Database).Collection(opts.Collection)
	_, err = coll.Indexes().CreateOne(connectCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: FieldID, Value: 1}, {Key: FieldVersion, Value: -1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("create profile index: %w", err)
	}
	return &MongoStore{client: client, coll: coll}, nil
}

// Get fetches one version, or the highest version when version is 0.
func (s *MongoStore) Get(ctx context.Context, id string, version int) (*Bundle, error) {
	if err := checkGet(id, version); err != nil {
		return nil, err
	}
	filter := bson.D{{Key: FieldID, Value: id}}
	opts := options.FindOne()
	if version > 0 {
		filter = append(filter, bson.E{Key: FieldVersion, Value: version})
	} else {
		opts.SetSort(bson.D{{Key: FieldVersion, Value: -1}})
	}

	var b Bundle
	err := s.coll.FindOne(ctx, filter, opts).Decode(&b)
	if stderrors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(id, version)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "read profile %q", id)
	}
	return &b, nil
}

// Put upserts the bundle for its (id, version).
func (s *MongoStore) Put(ctx context.Context, b *Bundle) error {
	if err := checkPut(b); err != nil {
		return err
	}
	doc := *b
	doc.ElkSettings = plain(b.ElkSettings).(map[string]any)
	filter := bson.D{{Key: FieldID, Value: b.ProfileID}, {Key: FieldVersion, Value: b.ProfileVersion}}
	_, err := s.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeNetwork, err, "store profile %q", b.ProfileID)
	}
	return nil
}

// List returns every stored version sorted by id and version.
func (s *MongoStore) List(ctx context.Context) ([]Summary, error) {
	opts := options.Find().
		SetProjection(bson.D{{Key: FieldID, Value: 1}, {Key: FieldVersion, Value: 1}, {Key: FieldChecksum, Value: 1}}).
		SetSort(bson.D{{Key: FieldID, Value: 1}, {Key: FieldVersion, Value: 1}})
	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list profiles")
	}
	var out []Summary
	if err := cur.All(ctx, &out); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "list profiles")
	}
	sortSummaries(out)
	return out, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)
