package nav

import "strings"

// RouteKind identifies an addressable location in the app.
type RouteKind int

const (
	RouteRoot RouteKind = iota
	RouteShow
	RouteFavorites
)

// Route is an addressable location: the root listing, a show detail, or
// the favorites listing. It round-trips through its path form so deep
// links can be passed on the command line.
type Route struct {
	Kind   RouteKind
	ShowID string // set for RouteShow only
}

// ParseRoute parses a path into a Route. Unknown paths fall back to root.
func ParseRoute(path string) Route {
	path = strings.Trim(strings.TrimSpace(path), "/")
	switch {
	case path == "":
		return Route{Kind: RouteRoot}
	case path == "favorites":
		return Route{Kind: RouteFavorites}
	case strings.HasPrefix(path, "podcast/"):
		id := strings.TrimPrefix(path, "podcast/")
		if id == "" {
			return Route{Kind: RouteRoot}
		}
		return Route{Kind: RouteShow, ShowID: id}
	default:
		return Route{Kind: RouteRoot}
	}
}

// String returns the path form of the route.
func (r Route) String() string {
	switch r.Kind {
	case RouteShow:
		return "/podcast/" + r.ShowID
	case RouteFavorites:
		return "/favorites"
	default:
		return "/"
	}
}
