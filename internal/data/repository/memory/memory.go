// Package memory is an in-process implementation of the repository
// interfaces, selected with DB_DRIVER=memory for local runs and used by tests.
// It mirrors the store semantics the service relies on: store-assigned ids,
// a unique email constraint on users and exact-match filters.
package memory

import (
	"sync"

	"bistro-boss/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func NewRepository() *repository.Repository {
	return &repository.Repository{
		User:   NewUserRepository(),
		Menu:   NewMenuRepository(),
		Review: NewReviewRepository(),
		Cart:   NewCartRepository(),
	}
}

// collection keeps documents in insertion order.
type collection[T any] struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]T
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{docs: make(map[primitive.ObjectID]T)}
}

func (c *collection[T]) insert(id primitive.ObjectID, doc T) {
	c.order = append(c.order, id)
	c.docs[id] = doc
}

func (c *collection[T]) remove(id primitive.ObjectID) int64 {
	if _, ok := c.docs[id]; !ok {
		return 0
	}
	delete(c.docs, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return 1
}

// each visits documents in insertion order until fn returns false.
func (c *collection[T]) each(fn func(T) bool) {
	for _, id := range c.order {
		if !fn(c.docs[id]) {
			return
		}
	}
}
