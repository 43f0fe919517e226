package repository

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/krishnavamsip/pdf-assistant/types"
)

type DocumentRepo interface {
	Create(ctx context.Context, doc *types.StoredDocument) error
	Get(ctx context.Context, id string) (*types.StoredDocument, error)
	ListByUser(ctx context.Context, userID string) ([]*types.StoredDocument, error)
	Delete(ctx context.Context, id string) error
}

type documentRepo struct {
	collection *mongo.Collection
}

func NewDocumentRepo(db *mongo.Database) DocumentRepo {
	collection := db.Collection("documents")

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	if _, err := collection.Indexes().CreateMany(context.Background(), indexes); err != nil {
		log.Printf("Error creating document indexes: %v", err)
	}

	return &documentRepo{collection: collection}
}

func (r *documentRepo) Create(ctx context.Context, doc *types.StoredDocument) error {
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func (r *documentRepo) Get(ctx context.Context, id string) (*types.StoredDocument, error) {
	var doc types.StoredDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) ListByUser(ctx context.Context, userID string) ([]*types.StoredDocument, error) {
	// An empty id must never widen the filter to every user's documents.
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []*types.StoredDocument
	for cursor.Next(ctx) {
		var doc types.StoredDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		// The stored text can be large; listings only carry metadata.
		doc.Text = ""
		docs = append(docs, &doc)
	}
	return docs, cursor.Err()
}

func (r *documentRepo) Delete(ctx context.Context, id string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
