package repository

import (
	"context"
	"errors"
	"time"

	"supportpulse-be/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no report exists for a requested date.
var ErrNotFound = errors.New("report not found")

// ListFilter narrows and orders a report listing. Date strings are
// YYYY-MM-DD; empty means unbounded on that side.
type ListFilter struct {
	StartDate string
	EndDate   string
	Ascending bool
	Skip      int64
	Limit     int64
}

// RangeAggregate holds whole-range figures computed store-side, so list
// summaries reflect every report in the filter, not just the current page.
type RangeAggregate struct {
	TotalEmails     int     `bson:"total_emails"`
	QueriesCount    int     `bson:"queries_count"`
	AvgResponseRate float64 `bson:"avg_response_rate"`
	AvgToneScore    float64 `bson:"avg_tone_score"`
	AlertsCount     int     `bson:"alerts_count"`
	MinDate         string  `bson:"min_date"`
	MaxDate         string  `bson:"max_date"`
}

// ReportStore is the single source of truth for daily reports. Upsert is an
// atomic replace-or-insert keyed by report date: concurrent writers for the
// same date serialize on the document and the last committed write wins in
// full.
type ReportStore interface {
	Upsert(ctx context.Context, report *models.DailyReport) error
	Get(ctx context.Context, date string) (*models.DailyReport, error)
	List(ctx context.Context, f ListFilter) ([]*models.DailyReport, error)
	CountRange(ctx context.Context, startDate, endDate string) (int64, error)
	Summarize(ctx context.Context, startDate, endDate string) (*RangeAggregate, error)
	Latest(ctx context.Context) (*models.DailyReport, error)
	Count(ctx context.Context) (int64, error)
	Health(ctx context.Context) error
}

// ReportRepository is the MongoDB-backed ReportStore.
type ReportRepository struct {
	collection *mongo.Collection
	now        func() time.Time
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{
		collection: db.Collection("daily_reports"),
		now:        time.Now,
	}
}

// Upsert replaces or inserts the report for its date in one command.
// created_at is written only on first insert; updated_at on every write.
func (r *ReportRepository) Upsert(ctx context.Context, report *models.DailyReport) error {
	raw, err := bson.Marshal(report)
	if err != nil {
		return err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return err
	}
	delete(doc, "_id")
	delete(doc, "created_at")

	now := r.now().UTC()
	doc["updated_at"] = now

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.Update().SetUpsert(true)
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": report.ReportDate}, update, opts)
	return err
}

func (r *ReportRepository) Get(ctx context.Context, date string) (*models.DailyReport, error) {
	var report models.DailyReport
	err := r.collection.FindOne(ctx, bson.M{"_id": date}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) List(ctx context.Context, f ListFilter) ([]*models.DailyReport, error) {
	order := -1
	if f.Ascending {
		order = 1
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: order}})
	if f.Skip > 0 {
		findOptions.SetSkip(f.Skip)
	}
	if f.Limit > 0 {
		findOptions.SetLimit(f.Limit)
	}

	cursor, err := r.collection.Find(ctx, rangeFilter(f.StartDate, f.EndDate), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []*models.DailyReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *ReportRepository) CountRange(ctx context.Context, startDate, endDate string) (int64, error) {
	return r.collection.CountDocuments(ctx, rangeFilter(startDate, endDate))
}

// Summarize aggregates every report in the range. Returns nil when the
// range is empty.
func (r *ReportRepository) Summarize(ctx context.Context, startDate, endDate string) (*RangeAggregate, error) {
	pipeline := []bson.M{
		{"$match": rangeFilter(startDate, endDate)},
		{"$group": bson.M{
			"_id":               nil,
			"total_emails":      bson.M{"$sum": "$total_emails"},
			"queries_count":     bson.M{"$sum": "$queries_count"},
			"avg_response_rate": bson.M{"$avg": "$overall_response_rate"},
			"avg_tone_score":    bson.M{"$avg": "$tone_score_avg"},
			"alerts_count":      bson.M{"$sum": "$alerts_count"},
			"min_date":          bson.M{"$min": "$_id"},
			"max_date":          bson.M{"$max": "$_id"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []RangeAggregate
	if err = cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *ReportRepository) Latest(ctx context.Context) (*models.DailyReport, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	var report models.DailyReport
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// Health probes store connectivity.
func (r *ReportRepository) Health(ctx context.Context) error {
	return r.collection.Database().Client().Ping(ctx, nil)
}

func rangeFilter(startDate, endDate string) bson.M {
	dateFilter := bson.M{}
	if startDate != "" {
		dateFilter["$gte"] = startDate
	}
	if endDate != "" {
		dateFilter["$lte"] = endDate
	}
	if len(dateFilter) == 0 {
		return bson.M{}
	}
	return bson.M{"_id": dateFilter}
}
