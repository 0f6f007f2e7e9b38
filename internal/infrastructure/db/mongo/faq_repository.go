package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tipulim/directory-web/internal/core/domain"
	"github.com/tipulim/directory-web/internal/core/ports"
)

// FAQRepository implements ports.FAQRepository using MongoDB.
type FAQRepository struct {
	col *mongo.Collection
}

// NewFAQRepository creates a new FAQRepository.
func NewFAQRepository(db *mongo.Database) *FAQRepository {
	return &FAQRepository{col: db.Collection(faqCollection)}
}

var _ ports.FAQRepository = (*FAQRepository)(nil)

// List returns all entries ordered by their display order.
func (r *FAQRepository) List(ctx context.Context) ([]domain.FAQ, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find faqs: %w", err)
	}
	defer cursor.Close(ctx)

	var faqs []domain.FAQ
	if err := cursor.All(ctx, &faqs); err != nil {
		return nil, fmt.Errorf("decode faqs: %w", err)
	}
	return faqs, nil
}

func (r *FAQRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *FAQRepository) InsertMany(ctx context.Context, faqs []domain.FAQ) error {
	if len(faqs) == 0 {
		return nil
	}
	docs := make([]interface{}, len(faqs))
	for i, f := range faqs {
		docs[i] = f
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates the ordering index on the faqs collection.
func (r *FAQRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: bson.D{{Key: "order", Value: 1}}})
	return err
}
