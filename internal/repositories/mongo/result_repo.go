package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tailorhq/resume-tailor/internal/models"
)

// historyLimit bounds how much tailoring history one user can page back.
const historyLimit = 50

type ResultRepository interface {
	Insert(ctx context.Context, result *models.TailoringResult) error
	ListByUser(ctx context.Context, userID string) ([]models.TailoringResult, error)
}

type resultRepo struct {
	col *mongo.Collection
}

func NewResultRepo(db *mongo.Database) ResultRepository {
	return &resultRepo{col: db.Collection("tailored_resumes")}
}

func (r *resultRepo) Insert(ctx context.Context, result *models.TailoringResult) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}

	res, err := r.col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

func (r *resultRepo) ListByUser(ctx context.Context, userID string) ([]models.TailoringResult, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(historyLimit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TailoringResult
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
