package memory

import (
	"context"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type cartRepository struct {
	items *collection[entity.CartItem]
}

func NewCartRepository() repository.CartRepository {
	return &cartRepository{items: newCollection[entity.CartItem]()}
}

func (r *cartRepository) FindByEmail(_ context.Context, email string) ([]*entity.CartItem, error) {
	r.items.mu.RLock()
	defer r.items.mu.RUnlock()

	items := []*entity.CartItem{}
	r.items.each(func(c entity.CartItem) bool {
		if c.Email == email {
			items = append(items, &c)
		}
		return true
	})
	return items, nil
}

func (r *cartRepository) Create(_ context.Context, item *entity.CartItem) (*mongo.InsertOneResult, error) {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	doc := *item
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.items.insert(doc.ID, doc)

	return &mongo.InsertOneResult{InsertedID: doc.ID}, nil
}

func (r *cartRepository) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	return &mongo.DeleteResult{DeletedCount: r.items.remove(id)}, nil
}
