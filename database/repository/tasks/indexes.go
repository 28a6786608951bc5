// FILE: database/repository/tasks/indexes.go
package taskRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureTaskIndexes creates the indexes the tasks collection is queried by.
func EnsureTaskIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Insertion order for List.
		{
			Keys:    bson.D{{Key: "seq", Value: 1}},
			Options: options.Index().SetName("seq_idx"),
		},
		// "Today's Schedule" lookups.
		{
			Keys:    bson.D{{Key: "type", Value: 1}, {Key: "dueDate", Value: 1}},
			Options: options.Index().SetName("type_due_idx"),
		},
	}

	if _, err := db.Collection("tasks").Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}
	return nil
}
