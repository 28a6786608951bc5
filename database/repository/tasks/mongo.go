package taskRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jalusi/models"
	"jalusi/utils"
)

const countersCollection = "counters"

// taskDocument adds the insertion sequence used for ordering.
type taskDocument struct {
	models.Task `bson:",inline"`
	Seq         int64 `bson:"seq"`
}

type mongoTaskRepo struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

// NewMongoTaskRepo constructs a TaskRepository on the "tasks" collection.
func NewMongoTaskRepo(db *mongo.Database) TaskRepository {
	return &mongoTaskRepo{
		coll:     db.Collection("tasks"),
		counters: db.Collection(countersCollection),
	}
}

func (r *mongoTaskRepo) nextSeq(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "tasks"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to allocate task sequence: %w", err)
	}
	return counter.Seq, nil
}

func (r *mongoTaskRepo) Insert(ctx context.Context, task models.Task) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	seq, err := r.nextSeq(ctx)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, taskDocument{Task: task, Seq: seq}); err != nil {
		return fmt.Errorf("failed to insert task %s: %w", task.ID, err)
	}
	return nil
}

func (r *mongoTaskRepo) GetByID(ctx context.Context, id string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc taskDocument
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, utils.NewNotFoundError("task %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch task %s: %w", id, err)
	}
	return &doc.Task, nil
}

func (r *mongoTaskRepo) UpdateStatus(ctx context.Context, id string, expected, next models.TaskStatus, at time.Time) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	if expected != "" {
		filter["status"] = expected
	}
	update := bson.M{"$set": bson.M{"status": next, "updatedAt": at}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return &doc.Task, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}

	// Nothing matched: either the id is unknown or the status moved on.
	current, getErr := r.GetByID(ctx, id)
	if getErr != nil {
		return nil, getErr
	}
	return nil, utils.NewIllegalTransitionError(string(current.Status), string(next))
}

func (r *mongoTaskRepo) List(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	out := make([]models.Task, len(docs))
	for i, d := range docs {
		out[i] = d.Task
	}
	return out, nil
}

func (r *mongoTaskRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count tasks: %w", err)
	}
	return n, nil
}
