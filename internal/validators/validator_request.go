package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maxazure/home/models"
)

const (
	FieldUsername       = "username"
	FieldPassword       = "password"
	FieldTitle          = "title"
	FieldSectionName    = "section_name"
	FieldOldSectionName = "old_section_name"
	FieldName           = "name"
	FieldURL            = "url"
	FieldSlug           = "slug"
	FieldCategoryID     = "category_id"
	FieldSourceID       = "source_id"
	FieldTargetID       = "target_id"
	FieldDirection      = "direction"
	// FieldAny requires at least one non-nil field on partial updates.
	FieldAny = "any"
)

// RequestValidator validates the admin API request payloads.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.UserRequest:
		return v.validateUser(value, fields...)
	case *models.UserRequest:
		return v.validateUser(*value, fields...)

	case models.CategoryRequest:
		return v.validateCategory(value, fields...)
	case *models.CategoryRequest:
		return v.validateCategory(*value, fields...)

	case models.LinkRequest:
		return v.validateLink(value, fields...)
	case *models.LinkRequest:
		return v.validateLink(*value, fields...)

	case models.PageRequest:
		return v.validatePage(value, fields...)
	case *models.PageRequest:
		return v.validatePage(*value, fields...)

	case models.RegionRequest:
		return v.validateRegion(value, fields...)
	case *models.RegionRequest:
		return v.validateRegion(*value, fields...)

	case models.MoveCategoryRequest:
		return v.validateMove(value, fields...)
	case models.ReorderCategoryRequest:
		return v.validateReorder(value, fields...)
	case models.ReorderSectionRequest:
		return v.validateSectionReorder(value, fields...)
	case models.SectionRequest:
		return v.validateSection(value, fields...)
	case models.RenameSectionRequest:
		return v.validateRenameSection(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func blankPtr(s *string) bool {
	return s == nil || blank(*s)
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateUser(req models.UserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if blank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		case FieldAny:
			if blank(req.Username) && req.Password == "" {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateCategory(req models.CategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldSectionName}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if blankPtr(req.Title) {
				return ErrEmptyTitle
			}
		case FieldSectionName:
			if blankPtr(req.SectionName) {
				return ErrEmptySectionName
			}
		case FieldAny:
			if req.Title == nil && req.SectionName == nil && req.RegionID == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateLink(req models.LinkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldURL, FieldCategoryID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blankPtr(req.Name) {
				return ErrEmptyName
			}
		case FieldURL:
			if blankPtr(req.URL) {
				return ErrEmptyURL
			}
			if !isAbsoluteURL(*req.URL) {
				return ErrInvalidURL
			}
		case FieldCategoryID:
			if req.CategoryID == nil || *req.CategoryID <= 0 {
				return ErrInvalidID
			}
		case FieldAny:
			if req.Name == nil && req.URL == nil && req.CategoryID == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

func (v *RequestValidator) validatePage(req models.PageRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blankPtr(req.Name) {
				return ErrEmptyName
			}
		case FieldSlug:
			if req.Slug != nil && !slug.IsSlug(*req.Slug) {
				return ErrInvalidSlug
			}
		case FieldAny:
			if req.Name == nil && req.Slug == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateRegion(req models.RegionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if blankPtr(req.Name) {
				return ErrEmptyName
			}
		case FieldAny:
			if req.Name == nil && req.PageID == nil {
				return ErrNoFieldsToUpdate
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateMove(req models.MoveCategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryID, FieldDirection}
	}

	for _, f := range fields {
		switch f {
		case FieldCategoryID:
			if req.CategoryID <= 0 {
				return ErrInvalidID
			}
		case FieldDirection:
			if _, err := models.ParseDirection(req.Direction); err != nil {
				return ErrInvalidDirection
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateReorder(req models.ReorderCategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSourceID, FieldTargetID}
	}

	for _, f := range fields {
		switch f {
		case FieldSourceID:
			if req.SourceID <= 0 {
				return ErrInvalidID
			}
		case FieldTargetID:
			if req.TargetID <= 0 {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateSectionReorder(req models.ReorderSectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSectionName, FieldDirection}
	}

	for _, f := range fields {
		switch f {
		case FieldSectionName:
			if blank(req.SectionName) {
				return ErrEmptySectionName
			}
		case FieldDirection:
			if _, err := models.ParseDirection(req.Direction); err != nil {
				return ErrInvalidDirection
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateSection(req models.SectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSectionName}
	}

	for _, f := range fields {
		switch f {
		case FieldSectionName:
			if blank(req.SectionName) {
				return ErrEmptySectionName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *RequestValidator) validateRenameSection(req models.RenameSectionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldSectionName, FieldSectionName}
	}

	for _, f := range fields {
		switch f {
		case FieldOldSectionName:
			if blank(req.OldSectionName) {
				return ErrEmptySectionName
			}
		case FieldSectionName:
			if blank(req.SectionName) {
				return ErrEmptySectionName
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}
