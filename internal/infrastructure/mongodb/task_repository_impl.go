package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adityarmn/go-todo-app/internal/domain/entity"
	"github.com/adityarmn/go-todo-app/internal/domain/repository"
)

type TaskRepository struct {
	coll *mongo.Collection
}

func NewTaskRepository(db *mongo.Database, collName string) *TaskRepository {
	return &TaskRepository{coll: db.Collection(collName)}
}

func (r *TaskRepository) Insert(ctx context.Context, t *entity.Task) error {
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid
	}
	return nil
}

// ListByOwner returns the owner's tasks in creation order. The slice is never
// nil so an empty list serializes as [].
func (r *TaskRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cur.Close(ctx) }()

	tasks := make([]entity.Task, 0)
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	t := &entity.Task{}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid, "userId": ownerID}).Decode(t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateFields overwrites title and description on the matching owned task.
// Matching no document is not an error; the caller reads back to see the
// outcome.
func (r *TaskRepository) UpdateFields(ctx context.Context, id, ownerID, title, description string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "userId": ownerID},
		bson.M{"$set": bson.M{"title": title, "description": description}},
	)
	return err
}

func (r *TaskRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "userId": ownerID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
