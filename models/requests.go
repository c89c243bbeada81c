// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember *bool  `json:"remember,omitempty"`
}

// ReorderCategoryRequest moves the source category to the target position.
type ReorderCategoryRequest struct {
	SourceID int64 `json:"source_id"`
	TargetID int64 `json:"target_id"`
}

// MoveCategoryRequest swaps a category with its neighbour.
type MoveCategoryRequest struct {
	CategoryID int64  `json:"category_id"`
	Direction  string `json:"direction"`
}

// ReorderSectionRequest swaps a section with its neighbour.
type ReorderSectionRequest struct {
	SectionName string `json:"section_name"`
	Direction   string `json:"direction"`
}

// SectionRequest names a section to create or delete.
type SectionRequest struct {
	SectionName string `json:"section_name"`
}

// RenameSectionRequest renames every category row of a section.
type RenameSectionRequest struct {
	OldSectionName string `json:"old_section_name"`
	SectionName    string `json:"section_name"`
}

// UserRequest creates or updates an administrator. On update empty fields
// are left unchanged.
type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CategoryRequest creates or updates a category. On update nil fields are
// left unchanged.
type CategoryRequest struct {
	Title       *string `json:"title,omitempty"`
	SectionName *string `json:"section_name,omitempty"`
	RegionID    *int64  `json:"region_id,omitempty"`
}

// LinkRequest creates or updates a link. On update nil fields are left
// unchanged.
type LinkRequest struct {
	Name       *string `json:"name,omitempty"`
	URL        *string `json:"url,omitempty"`
	CategoryID *int64  `json:"category_id,omitempty"`
}

// PageRequest creates or updates a page.
type PageRequest struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

// RegionRequest creates or updates a region.
type RegionRequest struct {
	Name   *string `json:"name,omitempty"`
	PageID *int64  `json:"page_id,omitempty"`
}
