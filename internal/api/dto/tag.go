package dto

import (
	"context"

	"github.com/stayloop/stayloop/internal/domain/tag"
	"github.com/stayloop/stayloop/internal/types"
	"github.com/stayloop/stayloop/internal/validator"
)

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=100"`
}

func (r *CreateTagRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *CreateTagRequest) ToTag(ctx context.Context) *tag.Tag {
	return &tag.Tag{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TAG),
		Name:      r.Name,
		Slug:      r.Slug,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
}

type ReplaceAccommodationTagsRequest struct {
	TagIDs []string `json:"tag_ids" validate:"required"`
}

func (r *ReplaceAccommodationTagsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type TagResponse struct {
	*tag.Tag
}
