package service

import (
	"context"
	"encoding/json"
	"net/url"
	"sort"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const (
	animalsPath      = "/api/v1/track/animals"
	animalEventsPath = "/api/v1/track/animal_events"
	trackedStockPath = "/api/v1/track/inventory_animals"

	// Event listings page in tens.
	eventPageLimit = 10
)

// AnimalService covers tracked animals and their events.
type AnimalService struct {
	api ports.API
}

func NewAnimalService(api ports.API) *AnimalService {
	return &AnimalService{api: api}
}

func (s *AnimalService) List(ctx context.Context, page domain.Page) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "list animals", withQuery(animalsPath+"/list", page.Values()))
}

func (s *AnimalService) Count(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "count animals", animalsPath+"/count")
}

func (s *AnimalService) ByTagID(ctx context.Context, tagID string) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get animal by tag", path(animalsPath+"/tag-id", tagID))
}

func (s *AnimalService) ByID(ctx context.Context, id int) (json.RawMessage, error) {
	return getRaw(ctx, s.api, "get animal", path(animalsPath+"/id", itoa(id)))
}

func (s *AnimalService) Create(ctx context.Context, in domain.AnimalInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create animal", animalsPath+"/create", in)
}

func (s *AnimalService) CreateInventoryMovement(ctx context.Context, in domain.InventoryMovementInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create inventory movement", trackedStockPath+"/create", in)
}

func (s *AnimalService) CreateEvent(ctx context.Context, in domain.AnimalEventInput) (json.RawMessage, error) {
	return postRaw(ctx, s.api, "create animal event", animalEventsPath+"/create", in)
}

// Lookup searches animals for pickers. Empty extra values are dropped.
func (s *AnimalService) Lookup(ctx context.Context, search string, extra map[string]string) (json.RawMessage, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if extra[k] != "" {
			q.Add(k, extra[k])
		}
	}
	// The endpoint is always called with a query string, even an empty one.
	return getRaw(ctx, s.api, "lookup animals", animalsPath+"/lookup?"+q.Encode())
}

func (s *AnimalService) Events(ctx context.Context, animalID int, page domain.Page) (json.RawMessage, error) {
	if page.Limit <= 0 {
		page.Limit = eventPageLimit
	}
	p := path(animalEventsPath+"/list/animal", itoa(animalID))
	return getRaw(ctx, s.api, "list animal events", withQuery(p, page.Values()))
}

// MilkEvents lists milk production events, for one animal when animalID > 0.
func (s *AnimalService) MilkEvents(ctx context.Context, animalID int, page domain.Page) (json.RawMessage, error) {
	if page.Limit <= 0 {
		page.Limit = eventPageLimit
	}
	q := page.Values()
	if animalID > 0 {
		q.Set("animal_id", itoa(animalID))
	}
	return getRaw(ctx, s.api, "list milk events", withQuery(animalEventsPath+"/list/milk", q))
}
