package clients

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository defines persistence operations for client profiles. Lookups by
// user return (nil, nil) when no profile exists — provisioning happens
// out-of-band, not here. List is ordered by createdAt descending.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Profile, error)
	GetByID(ctx context.Context, id string) (*Profile, error)
	List(ctx context.Context) ([]*Profile, error)
	UpdateTargets(ctx context.Context, id string, schools []string, round string) error
	UpdateReview(ctx context.Context, id string, status, notes string) error
}

// MongoRepository implements Repository using MongoDB.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepository{col: col}
}

func (r *MongoRepository) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	return r.findOne(ctx, bson.M{"userId": userID})
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*Profile, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*Profile, error) {
	var p Profile
	if err := r.col.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*Profile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*Profile{}
	for cur.Next(ctx) {
		var p Profile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (r *MongoRepository) UpdateTargets(ctx context.Context, id string, schools []string, round string) error {
	set := bson.M{
		"targetSchools":    schools,
		"applicationRound": round,
		"updatedAt":        time.Now().UTC(),
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRepository) UpdateReview(ctx context.Context, id string, status, notes string) error {
	set := bson.M{
		"status":    status,
		"notes":     notes,
		"updatedAt": time.Now().UTC(),
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// MemoryRepository is an in-memory Repository for tests and Mongo-less runs.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Profile
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]*Profile)}
}

// Put seeds a profile (test/provisioning helper).
func (r *MemoryRepository) Put(p *Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.Status == "" {
		p.Status = StatusActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	cp := *p
	r.store[p.ID] = &cp
}

func (r *MemoryRepository) GetByUserID(ctx context.Context, userID string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.store {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.store[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Profile, 0, len(r.store))
	for _, p := range r.store {
		cp := *p
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryRepository) UpdateTargets(ctx context.Context, id string, schools []string, round string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.store[id]
	if !ok {
		return errNotFound
	}
	p.TargetSchools = append([]string(nil), schools...)
	p.ApplicationRound = round
	p.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryRepository) UpdateReview(ctx context.Context, id string, status, notes string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.store[id]
	if !ok {
		return errNotFound
	}
	p.Status = status
	p.Notes = notes
	p.UpdatedAt = time.Now().UTC()
	return nil
}
