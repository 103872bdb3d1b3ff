package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mghazyfawazh/outlines/internal/models"
)

var ErrNotFound = errors.New("not found")

type MongoRepo struct {
	Coll *mongo.Collection
}

func NewMongoRepo(ctx context.Context, coll *mongo.Collection) (*MongoRepo, error) {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "uuid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "outline_path", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	return &MongoRepo{Coll: coll}, nil
}

func (r *MongoRepo) Insert(ctx context.Context, s *models.SavedOutline) error {
	_, err := r.Coll.InsertOne(ctx, s)
	return err
}

// FindAll returns saved outlines, newest first.
func (r *MongoRepo) FindAll(ctx context.Context) ([]models.SavedOutline, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SavedOutline{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepo) FindByUUID(ctx context.Context, uuid string) (*models.SavedOutline, error) {
	var s models.SavedOutline
	if err := r.Coll.FindOne(ctx, bson.M{"uuid": uuid}).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// UpdateByUUID sets the given fields on one saved outline.
func (r *MongoRepo) UpdateByUUID(ctx context.Context, uuid string, update bson.M) error {
	res, err := r.Coll.UpdateOne(ctx, bson.M{"uuid": uuid}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) DeleteByUUID(ctx context.Context, uuid string) error {
	res, err := r.Coll.DeleteOne(ctx, bson.M{"uuid": uuid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
