package repository

import (
	"context"

	"supportpulse-be/internal/models"
	"supportpulse-be/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordSource supplies one IST calendar day of classified records. The
// records themselves are written by the external classification agent; this
// core only reads them.
type RecordSource interface {
	ListForDate(ctx context.Context, date string) ([]*models.ClassifiedRecord, error)
}

// RecordRepository reads classified records from MongoDB.
type RecordRepository struct {
	collection *mongo.Collection
}

func NewRecordRepository(db *mongo.Database) *RecordRepository {
	r := &RecordRepository{
		collection: db.Collection("classified_records"),
	}

	// Ensure indexes
	ctx := context.Background()
	idxView := r.collection.Indexes()
	_, _ = idxView.CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "timestamp", Value: 1}},
		Options: options.Index().SetName("idx_timestamp"),
	})

	return r
}

// ListForDate returns every record whose timestamp falls within the given
// IST calendar day, oldest first.
func (r *RecordRepository) ListForDate(ctx context.Context, date string) ([]*models.ClassifiedRecord, error) {
	start, end, err := utils.DayBoundsIST(date)
	if err != nil {
		return nil, err
	}

	filter := bson.M{
		"timestamp": bson.M{"$gte": start, "$lt": end},
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []*models.ClassifiedRecord
	if err = cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
