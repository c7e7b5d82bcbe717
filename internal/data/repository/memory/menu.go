package memory

import (
	"context"
	"reflect"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type menuRepository struct {
	items *collection[entity.MenuItem]
}

func NewMenuRepository() repository.MenuRepository {
	return &menuRepository{items: newCollection[entity.MenuItem]()}
}

func (r *menuRepository) FindAll(_ context.Context, filter repository.MenuFilter) ([]*entity.MenuItem, error) {
	r.items.mu.RLock()
	defer r.items.mu.RUnlock()

	items := []*entity.MenuItem{}
	r.items.each(func(m entity.MenuItem) bool {
		if filter.Category == "" || m.Category == filter.Category {
			items = append(items, &m)
		}
		return true
	})
	return items, nil
}

func (r *menuRepository) FindByID(_ context.Context, id primitive.ObjectID) (*entity.MenuItem, error) {
	r.items.mu.RLock()
	defer r.items.mu.RUnlock()

	m, ok := r.items.docs[id]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (r *menuRepository) Create(_ context.Context, item *entity.MenuItem) (*mongo.InsertOneResult, error) {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	doc := *item
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.items.insert(doc.ID, doc)

	return &mongo.InsertOneResult{InsertedID: doc.ID}, nil
}

func (r *menuRepository) Update(_ context.Context, id primitive.ObjectID, patch entity.MenuItemPatch) (*mongo.UpdateResult, error) {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	m, ok := r.items.docs[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}

	res := &mongo.UpdateResult{MatchedCount: 1}
	updated := m
	patch.Apply(&updated)
	if !reflect.DeepEqual(updated, m) {
		r.items.docs[id] = updated
		res.ModifiedCount = 1
	}
	return res, nil
}

func (r *menuRepository) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.items.mu.Lock()
	defer r.items.mu.Unlock()

	return &mongo.DeleteResult{DeletedCount: r.items.remove(id)}, nil
}
