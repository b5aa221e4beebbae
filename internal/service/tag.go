package service

import (
	"context"

	"github.com/stayloop/stayloop/internal/api/dto"
	"github.com/stayloop/stayloop/internal/domain/tag"
	ierr "github.com/stayloop/stayloop/internal/errors"
	"github.com/stayloop/stayloop/internal/types"
)

const entityTag = "tag"

type TagService interface {
	Create(ctx context.Context, req *dto.CreateTagRequest) (*tag.Tag, error)
	Get(ctx context.Context, id string) (*tag.Tag, error)
	List(ctx context.Context) ([]*tag.Tag, error)
	Delete(ctx context.Context, id string) (int, error)
}

type tagService struct {
	ServiceParams
}

func NewTagService(params ServiceParams) TagService {
	return &tagService{ServiceParams: params}
}

func (s *tagService) Create(ctx context.Context, req *dto.CreateTagRequest) (*tag.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, entityTag, ActionCreate, ""); err != nil {
		return nil, err
	}

	existing, err := s.TagRepo.FindOne(ctx, types.NewFilter(map[string]any{"slug": req.Slug}))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ierr.NewError("tag already exists").
			WithHintf("A tag with slug %q already exists", req.Slug).
			Mark(ierr.ErrAlreadyExists)
	}
	return s.TagRepo.Create(ctx, req.ToTag(ctx))
}

func (s *tagService) Get(ctx context.Context, id string) (*tag.Tag, error) {
	t, err := s.TagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound(entityTag, id)
	}
	return t, nil
}

func (s *tagService) List(ctx context.Context) ([]*tag.Tag, error) {
	return s.TagRepo.List(ctx, types.Filter{})
}

func (s *tagService) Delete(ctx context.Context, id string) (int, error) {
	t, err := s.TagRepo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if t == nil {
		return 0, notFound(entityTag, id)
	}
	if err := s.authorize(ctx, entityTag, ActionDelete, t.CreatedBy); err != nil {
		return 0, err
	}
	if t.IsDeleted() {
		return 0, nil
	}
	return s.TagRepo.SoftDelete(ctx, types.ByID(id))
}
