package nav

import "testing"

func TestParseRoute(t *testing.T) {
	tests := []struct {
		path string
		want Route
	}{
		{"", Route{Kind: RouteRoot}},
		{"/", Route{Kind: RouteRoot}},
		{"favorites", Route{Kind: RouteFavorites}},
		{"/favorites/", Route{Kind: RouteFavorites}},
		{"podcast/10716", Route{Kind: RouteShow, ShowID: "10716"}},
		{"/podcast/10716/", Route{Kind: RouteShow, ShowID: "10716"}},
		{"podcast/", Route{Kind: RouteRoot}},
		{"settings", Route{Kind: RouteRoot}},
		{"  /favorites  ", Route{Kind: RouteFavorites}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := ParseRoute(tt.path); got != tt.want {
				t.Errorf("ParseRoute(%q) = %+v, want %+v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRouteRoundTrip(t *testing.T) {
	routes := []Route{
		{Kind: RouteRoot},
		{Kind: RouteFavorites},
		{Kind: RouteShow, ShowID: "10716"},
	}

	for _, r := range routes {
		if got := ParseRoute(r.String()); got != r {
			t.Errorf("ParseRoute(%q) = %+v, want %+v", r.String(), got, r)
		}
	}
}
