package repository

import (
	"context"
	"fmt"

	"github.com/gostore/order-service/internal/adapters/mongo/document"
	"github.com/gostore/order-service/internal/core/domain"
	"github.com/gostore/order-service/internal/core/port"
	"github.com/gostore/order-service/internal/core/serviceerrors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ProductRepository struct {
	*BaseRepository[document.ProductDocument]
	db         *mongo.Database
	collection *mongo.Collection
}

func NewProductRepository(db *mongo.Database) port.ProductPort {
	return &ProductRepository{
		BaseRepository: NewBaseRepository[document.ProductDocument](db, "products"),
		db:             db,
		collection:     db.Collection("products"),
	}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) error {
	doc := document.ToProductDocument(product)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	product.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}

// FindAllByID returns the subset of products that exist. Ids that do not
// parse as ObjectIDs cannot exist, so they are skipped rather than rejected;
// the caller detects absence by the shorter result.
func (r *ProductRepository) FindAllByID(ctx context.Context, ids []domain.ID) ([]*domain.Product, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(string(id))
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}

	docs, err := r.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}

// DecrementStock applies the whole batch in one session transaction. Each
// update is guarded by stock >= quantity, so a concurrent order that drained
// the stock after the caller's sufficiency check aborts the batch here.
func (r *ProductRepository) DecrementStock(ctx context.Context, items []domain.StockDecrement) error {
	session, err := r.db.Client().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		for _, item := range items {
			objectID, err := primitive.ObjectIDFromHex(string(item.ProductID))
			if err != nil {
				return nil, parseError(err)
			}

			result := r.collection.FindOneAndUpdate(sessCtx,
				bson.M{"_id": objectID, "stock": bson.M{"$gte": item.Quantity}},
				bson.M{"$inc": bson.M{"stock": -item.Quantity}},
			)
			if result.Err() != nil {
				if result.Err() == mongo.ErrNoDocuments {
					return nil, serviceerrors.NewUnprocessableEntityError(
						fmt.Sprintf("insufficient stock for product %s", item.ProductID))
				}
				return nil, result.Err()
			}
		}
		return nil, nil
	})

	return err
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*domain.Product, error) {
	docs, err := r.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, len(docs))
	for i, doc := range docs {
		products[i] = doc.ToDomain()
	}

	return products, nil
}
