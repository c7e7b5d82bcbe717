package memory

import (
	"context"
	"fmt"

	"bistro-boss/internal/data/entity"
	"bistro-boss/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type userRepository struct {
	users *collection[entity.User]
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{users: newCollection[entity.User]()}
}

func (r *userRepository) Create(_ context.Context, user *entity.User) (*mongo.InsertOneResult, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	duplicate := false
	r.users.each(func(u entity.User) bool {
		duplicate = u.Email == user.Email
		return !duplicate
	})
	if duplicate {
		return nil, fmt.Errorf("create user %s: %w", user.Email, repository.ErrDuplicateKey)
	}

	doc := *user
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	r.users.insert(doc.ID, doc)

	return &mongo.InsertOneResult{InsertedID: doc.ID}, nil
}

func (r *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	r.users.mu.RLock()
	defer r.users.mu.RUnlock()

	users := []*entity.User{}
	r.users.each(func(u entity.User) bool {
		users = append(users, &u)
		return true
	})
	return users, nil
}

func (r *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.users.mu.RLock()
	defer r.users.mu.RUnlock()

	var found *entity.User
	r.users.each(func(u entity.User) bool {
		if u.Email == email {
			found = &u
			return false
		}
		return true
	})
	return found, nil
}

func (r *userRepository) UpdateRole(_ context.Context, id primitive.ObjectID, role entity.UserRole) (*mongo.UpdateResult, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	u, ok := r.users.docs[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}

	res := &mongo.UpdateResult{MatchedCount: 1}
	if u.Role != role {
		u.Role = role
		r.users.docs[id] = u
		res.ModifiedCount = 1
	}
	return res, nil
}

func (r *userRepository) Delete(_ context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	r.users.mu.Lock()
	defer r.users.mu.Unlock()

	return &mongo.DeleteResult{DeletedCount: r.users.remove(id)}, nil
}
