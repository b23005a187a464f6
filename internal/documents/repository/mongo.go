package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crestadmit/portal/internal/documents"
)

// MongoRepo implements a MongoDB-backed document repository. Documents are
// stored under a string "id" field with a unique index.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, d *documents.Document) (string, error) {
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	if _, err := m.col.InsertOne(ctx, d); err != nil {
		return "", err
	}
	return d.ID, nil
}

func (m *MongoRepo) Get(ctx context.Context, id string) (*documents.Document, error) {
	var d documents.Document
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&d)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (m *MongoRepo) ListByClient(ctx context.Context, clientID string) ([]*documents.Document, error) {
	return m.find(ctx, bson.M{"clientId": clientID})
}

func (m *MongoRepo) List(ctx context.Context) ([]*documents.Document, error) {
	return m.find(ctx, bson.M{})
}

func (m *MongoRepo) find(ctx context.Context, filter bson.M) ([]*documents.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*documents.Document{}
	for cur.Next(ctx) {
		var d documents.Document
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Update(ctx context.Context, id string, upd Update) error {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.Feedback != nil {
		set["feedback"] = *upd.Feedback
	}
	if upd.Version != nil {
		set["version"] = *upd.Version
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) AppendAttachment(ctx context.Context, id, key string) error {
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$push": bson.M{"attachments": key},
		"$set":  bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
