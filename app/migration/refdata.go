package migration

import (
	"fmt"
	"strings"

	"github.com/Sumit21adm/School-Management-System-sub003/app/models"
)

// RefData is one snapshot of the reference tables, loaded once per
// pipeline run. Lookups are case-insensitive map accesses so a large
// sheet costs rows+reference-tables, not rows*reference-tables.
type RefData struct {
	Classes  map[string]*models.Class
	FeeTypes map[string]*models.FeeType
	Routes   map[string]*models.TransportRoute
	Stops    map[string]*models.RouteStop // keyed routeCode|stopName
	Sessions map[string]*models.AcademicSession
	Active   *models.AcademicSession
}

// FeeTypeResolution tags the outcome of a fee-type lookup so callers can
// decide uniformly whether to warn, error, or proceed.
type FeeTypeResolution int

const (
	FeeTypeResolved FeeTypeResolution = iota
	FeeTypeAutoCreated
	FeeTypeNotFound
)

func refKey(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// LoadRefData takes the per-run snapshot. A missing active session is
// reported by ResolveSession, not here, so validation can still run.
func LoadRefData(store Store) (*RefData, error) {
	ref := &RefData{
		Classes:  make(map[string]*models.Class),
		FeeTypes: make(map[string]*models.FeeType),
		Routes:   make(map[string]*models.TransportRoute),
		Stops:    make(map[string]*models.RouteStop),
		Sessions: make(map[string]*models.AcademicSession),
	}

	classes, err := store.ActiveClasses()
	if err != nil {
		return nil, fmt.Errorf("load classes: %w", err)
	}
	for i := range classes {
		ref.Classes[refKey(classes[i].Name)] = &classes[i]
	}

	feeTypes, err := store.FeeTypes()
	if err != nil {
		return nil, fmt.Errorf("load fee types: %w", err)
	}
	for i := range feeTypes {
		ref.FeeTypes[refKey(feeTypes[i].Name)] = &feeTypes[i]
	}

	routes, err := store.ActiveRoutes()
	if err != nil {
		return nil, fmt.Errorf("load transport routes: %w", err)
	}
	for i := range routes {
		ref.Routes[refKey(routes[i].Code)] = &routes[i]
		for _, stop := range routes[i].Stops {
			ref.Stops[refKey(routes[i].Code)+"|"+refKey(stop.Name)] = stop
		}
	}

	sessions, err := store.Sessions()
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	for i := range sessions {
		ref.Sessions[refKey(sessions[i].Name)] = &sessions[i]
		if sessions[i].IsCurrent {
			ref.Active = &sessions[i]
		}
	}

	return ref, nil
}

// HasClass reports whether a class name exists in the snapshot. The
// sentinel "PASS OUT" is accepted for students who have left.
func (r *RefData) HasClass(name string) bool {
	if strings.EqualFold(strings.TrimSpace(name), "PASS OUT") {
		return true
	}
	_, ok := r.Classes[refKey(name)]
	return ok
}

// ResolveSession applies the uniform session policy: an explicit row
// session name wins when it resolves, otherwise the active session.
func (r *RefData) ResolveSession(rowSessionName string) *models.AcademicSession {
	if rowSessionName != "" {
		if s, ok := r.Sessions[refKey(rowSessionName)]; ok {
			return s
		}
	}
	return r.Active
}

// ResolveFeeType looks up a fee type by name, creating it when absent.
// The auto-created entry joins the snapshot so later rows resolve
// against it instead of re-creating.
func (r *RefData) ResolveFeeType(store Store, name string) (*models.FeeType, FeeTypeResolution, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, FeeTypeNotFound, nil
	}
	if ft, ok := r.FeeTypes[refKey(name)]; ok {
		return ft, FeeTypeResolved, nil
	}
	ft := &models.FeeType{Name: name, IsActive: true}
	if err := store.CreateFeeType(ft); err != nil {
		return nil, FeeTypeNotFound, fmt.Errorf("auto-create fee type %q: %w", name, err)
	}
	r.FeeTypes[refKey(name)] = ft
	return ft, FeeTypeAutoCreated, nil
}
