package service

import (
	"context"
	"time"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/event"
	"github.com/stayloop/stayloop/internal/types"
)

const entityEvent = "event"

type EventService interface {
	Create(ctx context.Context, req *dto.CreateEventRequest) (*event.Event, error)
	Get(ctx context.Context, id string) (*event.Event, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*event.Event], error)
	ListUpcoming(ctx context.Context, destinationID string) ([]*event.Event, error)
	Delete(ctx context.Context, id string) (int, error)
}

type eventService struct {
	ServiceParams
}

func NewEventService(params ServiceParams) EventService {
	return &eventService{ServiceParams: params}
}

func (s *eventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*event.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityEvent, ActionCreate, ""); err != nil {
		return nil, err
	}

	dest, err := s.DestinationRepo.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil || dest.IsDeleted() {
		return nil, notFound("destination", req.DestinationID)
	}
	return s.EventRepo.Create(ctx, req.ToEvent(ctx))
}

func (s *eventService) Get(ctx context.Context, id string) (*event.Event, error) {
	e, err := s.EventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, notFound(entityEvent, id)
	}
	return e, nil
}

func (s *eventService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*event.Event], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.EventRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

func (s *eventService) ListUpcoming(ctx context.Context, destinationID string) ([]*event.Event, error) {
	dest, err := s.DestinationRepo.GetByID(ctx, destinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil {
		return nil, notFound("destination", destinationID)
	}
	return s.EventRepo.ListUpcoming(ctx, destinationID, time.Now().UTC())
}

func (s *eventService) Delete(ctx context.Context, id string) (int, error) {
	e, err := s.EventRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if e == nil {
		return 0, notFound(entityEvent, id)
	}
	if err := s.authorize(ctx, entityEvent, ActionDelete, e.CreatedBy); err != nil {
		return 0, err
	}
	if e.IsDeleted() {
		return 0, nil
	}
	return s.EventRepo.SoftDelete(ctx, types.ByID(id))
}
