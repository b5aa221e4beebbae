package service

import (
	"context"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/accommodation"
	"github.com/stayloop/stayloop/internal/types"
)

const entityAccommodation = "accommodation"

// AccommodationService manages listings: validation, authorization,
// lifecycle hooks, search and tag assignment.
type AccommodationService interface {
	Create(ctx context.Context, req *dto.CreateAccommodationRequest) (*accommodation.Accommodation, error)
	Get(ctx context.Context, id string) (*accommodation.Accommodation, error)
	GetWithRelations(ctx context.Context, id string, relations []string) (*accommodation.Accommodation, error)
	List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*accommodation.Accommodation], error)
	Search(ctx context.Context, req *dto.SearchAccommodationsRequest) (*types.ListResult[*accommodation.Accommodation], error)
	Update(ctx context.Context, id string, req *dto.UpdateAccommodationRequest) (*accommodation.Accommodation, error)
	Delete(ctx context.Context, id string) (int, error)
	Restore(ctx context.Context, id string) (int, error)
	ReplaceTags(ctx context.Context, id string, tagIDs []string) error
}

type accommodationService struct {
	ServiceParams
	hooks Hooks[accommodation.Accommodation]
}

func NewAccommodationService(params ServiceParams) AccommodationService {
	return &accommodationService{ServiceParams: params}
}

// NewAccommodationServiceWithHooks wires lifecycle callbacks around every
// mutation. Used by callers that maintain derived state (search indexes,
// notifications).
func NewAccommodationServiceWithHooks(params ServiceParams, hooks Hooks[accommodation.Accommodation]) AccommodationService {
	return &accommodationService{ServiceParams: params, hooks: hooks}
}

func (s *accommodationService) Create(ctx context.Context, req *dto.CreateAccommodationRequest) (*accommodation.Accommodation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityAccommodation, ActionCreate, ""); err != nil {
		return nil, err
	}

	dest, err := s.DestinationRepo.GetByID(ctx, req.DestinationID)
	if err != nil {
		return nil, err
	}
	if dest == nil || dest.IsDeleted() {
		return nil, notFound("destination", req.DestinationID)
	}

	a := req.ToAccommodation(ctx)
	if err := runBefore(ctx, s.hooks.BeforeCreate, a); err != nil {
		return nil, err
	}

	created, err := s.AccommodationRepo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	if len(req.TagIDs) > 0 {
		if err := s.AccommodationRepo.ReplaceTags(ctx, created.ID, req.TagIDs); err != nil {
			return nil, err
		}
	}

	if err := runAfter(ctx, s.hooks.AfterCreate, created); err != nil {
		return created, err
	}
	return created, nil
}

func (s *accommodationService) Get(ctx context.Context, id string) (*accommodation.Accommodation, error) {
	a, err := s.AccommodationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound(entityAccommodation, id)
	}
	if err := s.authorize(ctx, entityAccommodation, ActionRead, a.HostID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *accommodationService) GetWithRelations(ctx context.Context, id string, relations []string) (*accommodation.Accommodation, error) {
	a, err := s.AccommodationRepo.GetWithRelations(ctx, id, relations)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound(entityAccommodation, id)
	}
	if err := s.authorize(ctx, entityAccommodation, ActionRead, a.HostID); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *accommodationService) List(ctx context.Context, filter *types.QueryFilter) (*types.ListResult[*accommodation.Accommodation], error) {
	if filter == nil {
		filter = types.NewDefaultQueryFilter()
	}
	eq := map[string]any{}
	if filter.Status != nil {
		eq["status"] = *filter.Status
	}
	return s.AccommodationRepo.ListPage(ctx, types.NewFilter(eq), filter.Pagination())
}

func (s *accommodationService) Search(ctx context.Context, req *dto.SearchAccommodationsRequest) (*types.ListResult[*accommodation.Accommodation], error) {
	if req.Visibility != "" {
		if err := req.Visibility.Validate(); err != nil {
			return nil, err
		}
	}
	return s.AccommodationRepo.Search(ctx, accommodation.SearchQuery{
		DestinationID: req.DestinationID,
		HostID:        req.HostID,
		Visibility:    req.Visibility,
		MaxGuests:     req.MaxGuests,
		Pagination:    req.QueryFilter.Pagination(),
	})
}

func (s *accommodationService) Update(ctx context.Context, id string, req *dto.UpdateAccommodationRequest) (*accommodation.Accommodation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	a, err := s.AccommodationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound(entityAccommodation, id)
	}
	if err := s.authorize(ctx, entityAccommodation, ActionUpdate, a.HostID); err != nil {
		return nil, err
	}

	changes := req.Changes()
	if len(changes) == 0 {
		return a, nil
	}

	if err := runBefore(ctx, s.hooks.BeforeUpdate, a); err != nil {
		return nil, err
	}
	updated, err := s.AccommodationRepo.Update(ctx, types.ByID(id), changes)
	if err != nil {
		return nil, err
	}
	if err := runAfter(ctx, s.hooks.AfterUpdate, updated); err != nil {
		return updated, err
	}
	return updated, nil
}

// Delete soft-deletes the listing. Deleting an already-deleted listing is a
// no-op returning count 0; the repository is not called again.
func (s *accommodationService) Delete(ctx context.Context, id string) (int, error) {
	a, err := s.AccommodationRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, notFound(entityAccommodation, id)
	}
	if err := s.authorize(ctx, entityAccommodation, ActionDelete, a.HostID); err != nil {
		return 0, err
	}
	if a.IsDeleted() {
		return 0, nil
	}

	if err := runBefore(ctx, s.hooks.BeforeDelete, a); err != nil {
		return 0, err
	}
	n, err := s.AccommodationRepo.SoftDelete(ctx, types.ByID(id))
	if err != nil {
		return 0, err
	}
	if err := runAfter(ctx, s.hooks.AfterDelete, a); err != nil {
		return n, err
	}
	return n, nil
}

func (s *accommodationService) Restore(ctx context.Context, id string) (int, error) {
	a, err := s.AccommodationRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if a == nil {
		return 0, notFound(entityAccommodation, id)
	}
	if err := s.authorize(ctx, entityAccommodation, ActionUpdate, a.HostID); err != nil {
		return 0, err
	}
	if !a.IsDeleted() {
		return 0, nil
	}
	return s.AccommodationRepo.Restore(ctx, types.ByID(id))
}

func (s *accommodationService) ReplaceTags(ctx context.Context, id string, tagIDs []string) error {
	a, err := s.AccommodationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a == nil {
		return notFound(entityAccommodation, id)
	}
	if err := s.authorize(ctx, entityAccommodation, ActionUpdate, a.HostID); err != nil {
		return err
	}

	for _, tagID := range tagIDs {
		t, err := s.TagRepo.GetByID(ctx, tagID)
		if err != nil {
			return err
		}
		if t == nil || t.IsDeleted() {
			return notFound("tag", tagID)
		}
	}
	return s.AccommodationRepo.ReplaceTags(ctx, id, tagIDs)
}
