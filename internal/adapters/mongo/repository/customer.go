package repository

import (
	"context"

	"github.com/gostore/order-service/internal/adapters/mongo/document"
	"github.com/gostore/order-service/internal/core/domain"
	"github.com/gostore/order-service/internal/core/port"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CustomerRepository struct {
	*BaseRepository[document.CustomerDocument]
	collection *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) port.CustomerPort {
	return &CustomerRepository{
		BaseRepository: NewBaseRepository[document.CustomerDocument](db, "customers"),
		collection:     db.Collection("customers"),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	doc := document.ToCustomerDocument(customer)

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return parseError(err)
	}

	customer.ID = domain.ID(result.InsertedID.(primitive.ObjectID).Hex())
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id domain.ID) (*domain.Customer, error) {
	doc, err := r.FindByID(ctx, string(id))
	if err != nil {
		return nil, err
	}

	return doc.ToDomain(), nil
}
