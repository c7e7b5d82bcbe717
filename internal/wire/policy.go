package wire

import (
	"net/http"

	"bistro-boss/pkg/middleware"

	"go.uber.org/zap"
)

// Access is the precondition chain a route runs behind.
type Access int

const (
	AccessOpen          Access = iota // no checks
	AccessAuthenticated               // valid token
	AccessAdmin                       // valid token and admin role
)

func (a Access) String() string {
	switch a {
	case AccessAuthenticated:
		return "authenticated"
	case AccessAdmin:
		return "admin"
	default:
		return "open"
	}
}

// Policy decides which routes are gated. Every gated route is listed here so
// the whole authorization surface can be read in one place.
type Policy struct {
	MenuCreate  Access
	MenuUpdate  Access
	MenuDelete  Access
	UserList    Access
	UserCheck   Access
	UserPromote Access
	UserDelete  Access
}

// DefaultPolicy gates only menu deletion and the user listing behind admin,
// leaving the other catalog and user writes open.
func DefaultPolicy() Policy {
	return Policy{
		MenuCreate:  AccessOpen,
		MenuUpdate:  AccessOpen,
		MenuDelete:  AccessAdmin,
		UserList:    AccessAdmin,
		UserCheck:   AccessAuthenticated,
		UserPromote: AccessOpen,
		UserDelete:  AccessOpen,
	}
}

// StrictPolicy puts every menu and user mutation behind the admin check.
func StrictPolicy() Policy {
	p := DefaultPolicy()
	p.MenuCreate = AccessAdmin
	p.MenuUpdate = AccessAdmin
	p.UserPromote = AccessAdmin
	p.UserDelete = AccessAdmin
	return p
}

func PolicyFromConfig(strictWrites bool) Policy {
	if strictWrites {
		return StrictPolicy()
	}
	return DefaultPolicy()
}

// gates builds the middleware for each Access level.
type gates struct {
	verifier middleware.TokenVerifier
	checker  middleware.AdminChecker
	log      *zap.Logger
}

func (g gates) require(a Access) []func(http.Handler) http.Handler {
	switch a {
	case AccessAuthenticated:
		return []func(http.Handler) http.Handler{
			middleware.Guard(g.log, middleware.Authenticate(g.verifier)),
		}
	case AccessAdmin:
		return []func(http.Handler) http.Handler{
			middleware.Guard(g.log,
				middleware.Authenticate(g.verifier),
				middleware.RequireAdmin(g.checker),
			),
		}
	default:
		return nil
	}
}

// Routes lists the policy-controlled routes as "METHOD /pattern". Routes not
// listed are open.
func (p Policy) Routes() map[string]Access {
	return map[string]Access{
		"POST /add-menu":           p.MenuCreate,
		"PATCH /menu":              p.MenuUpdate,
		"DELETE /menu/{id}":        p.MenuDelete,
		"GET /users":               p.UserList,
		"GET /users/admin/{email}": p.UserCheck,
		"PATCH /users/admin/{id}":  p.UserPromote,
		"DELETE /users/{id}":       p.UserDelete,
	}
}
