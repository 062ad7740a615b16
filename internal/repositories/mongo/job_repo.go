package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tailorhq/resume-tailor/internal/models"
	"github.com/tailorhq/resume-tailor/internal/utils"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.JobDescription) error
	GetByID(ctx context.Context, userID, id string) (*models.JobDescription, error)
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.JobDescription, error)
}

type jobRepo struct {
	col *mongo.Collection
}

func NewJobRepo(db *mongo.Database) JobRepository {
	return &jobRepo{col: db.Collection("job_descriptions")}
}

func (r *jobRepo) Create(ctx context.Context, job *models.JobDescription) error {
	now := time.Now().UTC()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	job.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, job)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, userID, id string) (*models.JobDescription, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, utils.ErrNotFound
	}

	var job models.JobDescription
	err = r.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&job)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.ErrNotFound
	}
	return &job, err
}

func (r *jobRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.JobDescription, error) {
	if limit <= 0 {
		limit = 50
	}

	cur, err := r.col.Find(ctx,
		bson.M{"user_id": userID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: -1}}).
			SetLimit(limit),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.JobDescription
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
