package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// Access classifies a route for the guard.
type Access int

const (
	// Public routes render for everyone.
	Public Access = iota
	// AnonymousOnly routes (login, registration, password reset) redirect
	// authenticated visitors away.
	AnonymousOnly
	// Protected routes require an authenticated session.
	Protected
)

// Route is one entry of the storefront's navigation table. Modal routes
// render as an overlay above a remembered background location rather than as
// a standalone page.
type Route struct {
	Name       string
	Path       string
	Access     Access
	Modal      bool
	Background string
}

// NotFound is the catch-all route.
var NotFound = Route{Name: "not-found", Access: Public}

var table = []Route{
	{Name: "home", Path: "/"},
	{Name: "feed", Path: "/feed"},
	{
		Name:       "feed-order",
		Path:       "/feed/{number:[0-9]+}",
		Modal:      true,
		Background: "/feed",
	},
	{Name: "login", Path: "/login", Access: AnonymousOnly},
	{Name: "register", Path: "/register", Access: AnonymousOnly},
	{Name: "forgot-password", Path: "/forgot-password", Access: AnonymousOnly},
	{Name: "reset-password", Path: "/reset-password", Access: AnonymousOnly},
	{Name: "profile", Path: "/profile", Access: Protected},
	{Name: "profile-orders", Path: "/profile/orders", Access: Protected},
	{
		Name:       "profile-order",
		Path:       "/profile/orders/{number:[0-9]+}",
		Access:     Protected,
		Modal:      true,
		Background: "/profile/orders",
	},
	{
		Name:       "ingredient",
		Path:       "/ingredients/{id}",
		Modal:      true,
		Background: "/",
	},
}

// Match is a resolved location: the route it names plus any path variables.
type Match struct {
	Route Route
	Vars  map[string]string
}

// Resolver maps concrete paths onto the navigation table.
type Resolver struct {
	router *mux.Router
	byName map[string]Route
}

func NewResolver() *Resolver {
	router := mux.NewRouter()
	byName := map[string]Route{}
	for _, route := range table {
		router.NewRoute().Name(route.Name).Path(route.Path)
		byName[route.Name] = route
	}
	return &Resolver{
		router: router,
		byName: byName,
	}
}

// Resolve matches a path against the navigation table. Unmatched paths
// resolve to the catch-all NotFound route.
func (r *Resolver) Resolve(path string) (Match, error) {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return Match{Route: NotFound}, errors.Wrapf(
			err,
			"error resolving path %q",
			path,
		)
	}
	routeMatch := mux.RouteMatch{}
	if !r.router.Match(req, &routeMatch) || routeMatch.Route == nil {
		return Match{Route: NotFound}, nil
	}
	return Match{
		Route: r.byName[routeMatch.Route.GetName()],
		Vars:  routeMatch.Vars,
	}, nil
}
