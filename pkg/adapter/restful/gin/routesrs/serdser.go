package routesrs

import "github.com/mova-mz/mova-core/pkg/core/model"

type routesResp struct {
	Routes []model.Route `json:"routes"`
}

// SerRoutes serializes the distance-table entries, replacing a nil
// slice with an empty one, so the JSON body always carries an array.
func SerRoutes(routes []model.Route) routesResp {
	if routes == nil {
		routes = []model.Route{}
	}
	return routesResp{Routes: routes}
}
