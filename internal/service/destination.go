package service

import (
	"context"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/destination"
	"github.com/stayloop/stayloop/internal/types"
)

const entityDestination = "destination"

type DestinationService interface {
	Create(ctx context.Context, req *dto.CreateDestinationRequest) (*destination.Destination, error)
	Get(ctx context.Context, id string) (*destination.Destination, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*destination.Destination], error)
	Update(ctx context.Context, id string, req *dto.UpdateDestinationRequest) (*destination.Destination, error)
	Delete(ctx context.Context, id string) (int, error)
	Restore(ctx context.Context, id string) (int, error)
}

type destinationService struct {
	ServiceParams
}

func NewDestinationService(params ServiceParams) DestinationService {
	return &destinationService{ServiceParams: params}
}

func (s *destinationService) Create(ctx context.Context, req *dto.CreateDestinationRequest) (*destination.Destination, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityDestination, ActionCreate, ""); err != nil {
		return nil, err
	}
	return s.DestinationRepo.Create(ctx, req.ToDestination(ctx))
}

func (s *destinationService) Get(ctx context.Context, id string) (*destination.Destination, error) {
	d, err := s.DestinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, notFound(entityDestination, id)
	}
	return d, nil
}

func (s *destinationService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*destination.Destination], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.DestinationRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

func (s *destinationService) Update(ctx context.Context, id string, req *dto.UpdateDestinationRequest) (*destination.Destination, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	d, err := s.DestinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, notFound(entityDestination, id)
	}
	if err := s.authorize(ctx, entityDestination, ActionUpdate, d.CreatedBy); err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return d, nil
	}
	return s.DestinationRepo.Update(ctx, types.ByID(id), changes)
}

func (s *destinationService) Delete(ctx context.Context, id string) (int, error) {
	d, err := s.DestinationRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, notFound(entityDestination, id)
	}
	if err := s.authorize(ctx, entityDestination, ActionDelete, d.CreatedBy); err != nil {
		return 0, err
	}
	if d.IsDeleted() {
		return 0, nil
	}
	return s.DestinationRepo.SoftDelete(ctx, types.ByID(id))
}

func (s *destinationService) Restore(ctx context.Context, id string) (int, error) {
	d, err := s.DestinationRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if d == nil {
		return 0, notFound(entityDestination, id)
	}
	if err := s.authorize(ctx, entityDestination, ActionUpdate, d.CreatedBy); err != nil {
		return 0, err
	}
	if !d.IsDeleted() {
		return 0, nil
	}
	return s.DestinationRepo.Restore(ctx, types.ByID(id))
}
