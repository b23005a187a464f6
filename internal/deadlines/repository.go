package deadlines

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository provides read access to the master deadline table. List returns
// the full table sorted ascending by deadline date.
type Repository interface {
	List(ctx context.Context) ([]Deadline, error)
}

// MongoRepository reads deadlines from a Mongo collection.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]Deadline, error) {
	opts := options.Find().SetSort(bson.D{{Key: "deadlineDate", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []Deadline{}
	for cur.Next(ctx) {
		var d Deadline
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, cur.Err()
}

// MemoryRepository holds a fixed deadline table in memory; used in tests and
// as a seedable fallback when Mongo is not configured.
type MemoryRepository struct {
	mu    sync.RWMutex
	table []Deadline
}

func NewMemoryRepository(table []Deadline) *MemoryRepository {
	cp := make([]Deadline, len(table))
	copy(cp, table)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Date.Before(cp[j].Date) })
	return &MemoryRepository{table: cp}
}

func (r *MemoryRepository) List(ctx context.Context) ([]Deadline, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Deadline, len(r.table))
	copy(out, r.table)
	return out, nil
}
