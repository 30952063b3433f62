package nav

import "log/slog"

// Bridge keeps the addressable route and the selected show consistent in
// both directions. Forward: selecting a show moves the route to
// /podcast/<id>. Backward: an initial deep link (or history navigation)
// carrying a show id opens that show's detail once the catalog can resolve
// it; an id the catalog does not know is silently dropped.
type Bridge struct {
	logger *slog.Logger

	route   Route
	history []Route

	// pendingShowID holds a deep-linked id until the catalog has loaded.
	pendingShowID string
}

// NewBridge starts at the root route.
func NewBridge(logger *slog.Logger) *Bridge {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{logger: logger, route: Route{Kind: RouteRoot}}
}

// Route returns the current route.
func (b *Bridge) Route() Route {
	return b.route
}

// SetInitial applies a startup path. A show route is not applied
// immediately: its id is parked until the catalog loads and Resolve runs.
func (b *Bridge) SetInitial(path string) {
	r := ParseRoute(path)
	if r.Kind == RouteShow {
		b.pendingShowID = r.ShowID
		return
	}
	b.route = r
}

// Resolve answers the parked deep link against the loaded catalog. The
// exists check runs against catalog identity; an unresolvable id clears
// silently and no view opens. Returns the show id to open, if any.
func (b *Bridge) Resolve(exists func(showID string) bool) (string, bool) {
	if b.pendingShowID == "" {
		return "", false
	}
	id := b.pendingShowID
	b.pendingShowID = ""

	if !exists(id) {
		b.logger.Debug("deep link did not resolve against catalog", "showID", id)
		return "", false
	}

	b.push(Route{Kind: RouteShow, ShowID: id})
	return id, true
}

// SelectShow records a show selection, updating the route to carry its id.
func (b *Bridge) SelectShow(showID string) {
	b.push(Route{Kind: RouteShow, ShowID: showID})
}

// OpenFavorites moves to the favorites listing.
func (b *Bridge) OpenFavorites() {
	b.push(Route{Kind: RouteFavorites})
}

// CloseDetail clears any open view back to the root listing.
func (b *Bridge) CloseDetail() {
	b.push(Route{Kind: RouteRoot})
}

// Back pops to the previous route, staying at root when the history is
// exhausted. The returned route drives selection: a show route re-opens
// that show's detail.
func (b *Bridge) Back() Route {
	if len(b.history) == 0 {
		b.route = Route{Kind: RouteRoot}
		return b.route
	}
	b.route = b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	return b.route
}

func (b *Bridge) push(r Route) {
	if r == b.route {
		return
	}
	b.history = append(b.history, b.route)
	b.route = r
}
