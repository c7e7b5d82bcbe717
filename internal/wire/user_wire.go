package wire

import (
	"bistro-boss/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g gates, policy Policy) {
	// POST /users - register; repeated emails are a no-op
	r.Post("/users", userHandler.CreateUser)

	r.With(g.require(policy.UserList)...).Get("/users", userHandler.GetUsers)
	r.With(g.require(policy.UserCheck)...).Get("/users/admin/{email}", userHandler.CheckAdmin)
	r.With(g.require(policy.UserPromote)...).Patch("/users/admin/{id}", userHandler.PromoteUser)
	r.With(g.require(policy.UserDelete)...).Delete("/users/{id}", userHandler.DeleteUser)
}
