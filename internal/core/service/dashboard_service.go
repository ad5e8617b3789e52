package service

import (
	"context"
	"encoding/json"

	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const (
	dashboardStatsPath = "/api/v1/dashboard/stats"
	mePath             = "/users/me/personal-details"
	profilePicPath     = "/users/me/profile-pic-details"
)

type DashboardService struct {
	api ports.API
}

func NewDashboardService(api ports.API) *DashboardService {
	return &DashboardService{api: api}
}

func (s *DashboardService) Stats(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "dashboard stats", dashboardStatsPath)
}

// UserService reads the signed-in operator's profile.
type UserService struct {
	api ports.API
}

func NewUserService(api ports.API) *UserService {
	return &UserService{api: api}
}

func (s *UserService) Me(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "personal details", mePath)
}

func (s *UserService) ProfilePicture(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "profile picture", profilePicPath)
}
