package database

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// GetActiveRoutesWithStops retrieves active routes with their stops
// nested, in two queries rather than one per route.
func GetActiveRoutesWithStops(db *sql.DB) ([]models.TransportRoute, error) {
	rows, err := db.Query(
		`SELECT id, code, name, is_active, created_at, updated_at
		 FROM transport_routes WHERE is_active = true ORDER BY code ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []models.TransportRoute
	byID := make(map[string]*models.TransportRoute)
	for rows.Next() {
		var r models.TransportRoute
		if err := rows.Scan(&r.ID, &r.Code, &r.Name, &r.IsActive, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range routes {
		byID[routes[i].ID] = &routes[i]
	}

	stopRows, err := db.Query(`SELECT id, route_id, name, fare, created_at FROM route_stops ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer stopRows.Close()

	for stopRows.Next() {
		var s models.RouteStop
		if err := stopRows.Scan(&s.ID, &s.RouteID, &s.Name, &s.Fare, &s.CreatedAt); err != nil {
			return nil, err
		}
		if route, ok := byID[s.RouteID]; ok {
			stop := s
			route.Stops = append(route.Stops, &stop)
		}
	}
	return routes, stopRows.Err()
}

// CreateRoute inserts a transport route.
func CreateRoute(db *sql.DB, r *models.TransportRoute) error {
	r.ID = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO transport_routes (id, code, name, is_active) VALUES ($1,$2,$3,$4)`,
		r.ID, r.Code, r.Name, r.IsActive,
	)
	return err
}

// CreateRouteStop inserts a stop on an existing route.
func CreateRouteStop(db *sql.DB, s *models.RouteStop) error {
	s.ID = uuid.NewString()
	_, err := db.Exec(
		`INSERT INTO route_stops (id, route_id, name, fare) VALUES ($1,$2,$3,$4)`,
		s.ID, s.RouteID, s.Name, s.Fare,
	)
	return err
}
