package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GenerationRepo interface {
	SaveRecord(ctx context.Context, record *GenerationRecord) error
	GetHistory(ctx context.Context, userID uint64, limit int) ([]*GenerationRecord, error)
}

type generationRepoImpl struct {
	col *mongo.Collection
}

func NewGenerationRepo(db *mongo.Database) GenerationRepo {
	return &generationRepoImpl{
		col: db.Collection("generation_records"),
	}
}

// SaveRecord 直接存储
func (s *generationRepoImpl) SaveRecord(ctx context.Context, record *GenerationRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	_, err := s.col.InsertOne(ctx, record)
	return err
}

// GetHistory 按时间线拉取用户最近的生成记录
func (s *generationRepoImpl) GetHistory(ctx context.Context, userID uint64, limit int) ([]*GenerationRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	filter := bson.M{"user_id": userID}

	findOptions := options.Find().
		SetSort(bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: -1},
		}).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	records := make([]*GenerationRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}
