package app

import (
	"errors"
	"fmt"
	"strings"
)

// Route paths understood by the navigator.
const (
	RouteHome              = "/"
	RouteDashboard         = "/dashboard"
	RoutePrograms          = "/programs"
	RouteProfile           = "/profile"
	RouteAssessment        = "/assessment"
	RouteAssessmentResults = "/assessment-results"
)

// ErrRouteUnavailable is returned for destinations this client does not ship.
var ErrRouteUnavailable = errors.New("route unavailable")

// Destination is a resolved navigation target.
type Destination int

const (
	// DestUnknown is the zero value, returned alongside every Resolve error.
	DestUnknown Destination = iota
	DestExit
	DestDashboard
	DestPrograms
	DestProfile
	DestAssessment
	DestAssessmentResults
)

// externalRoutes are linked from the dashboard but live outside this client.
var externalRoutes = map[string]string{
	"/ai-chat":         "AI Chat",
	"/ai-call":         "AI Call",
	"/exercises":       "Exercises",
	"/brain-training":  "Brain Training",
	"/sleep-stories":   "Sleep Stories",
	"/audiobooks":      "Audiobooks",
	"/manage-payments": "Billing",
}

// Resolve maps a path to a destination. Known but unshipped paths wrap
// ErrRouteUnavailable; anything else is an unknown route error.
func Resolve(path string) (Destination, error) {
	p := strings.TrimSpace(path)
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
	}
	switch p {
	case RouteHome:
		return DestExit, nil
	case RouteDashboard:
		return DestDashboard, nil
	case RoutePrograms:
		return DestPrograms, nil
	case RouteProfile:
		return DestProfile, nil
	case RouteAssessment:
		return DestAssessment, nil
	case RouteAssessmentResults:
		return DestAssessmentResults, nil
	}
	if name, ok := externalRoutes[p]; ok {
		return DestUnknown, fmt.Errorf("%s (%s): %w", name, p, ErrRouteUnavailable)
	}
	return DestUnknown, fmt.Errorf("unknown route %q", path)
}
