package models

import "time"

// MessageResponse is the body of every plain acknowledgement and every
// error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned on a successful login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// SuccessResponse is returned by logout.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// StatusResponse reports whether the caller holds a valid session.
type StatusResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// VersionResponse carries build metadata.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

type UserResponse struct {
	ID                  int64      `json:"id"`
	Username            string     `json:"username"`
	CreatedAt           time.Time  `json:"created_at"`
	IsLocked            bool       `json:"is_locked"`
	FailedLoginAttempts int        `json:"failed_login_attempts"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	State               GuardState `json:"state"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:                  u.ID,
		Username:            u.Username,
		CreatedAt:           u.CreatedAt,
		IsLocked:            u.IsLocked,
		FailedLoginAttempts: u.FailedLoginAttempts,
		LastFailedLogin:     u.LastFailedLogin,
		State:               u.GuardState(),
	}
}

func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

type IPBlockResponse struct {
	ID             int64      `json:"id"`
	IPAddress      string     `json:"ip_address"`
	FailedAttempts int        `json:"failed_attempts"`
	IsBlocked      bool       `json:"is_blocked"`
	LastAttempt    *time.Time `json:"last_attempt"`
	CreatedAt      time.Time  `json:"created_at"`
	State          GuardState `json:"state"`
}

func NewIPBlockResponses(blocks []IPBlock) []IPBlockResponse {
	out := make([]IPBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, IPBlockResponse{
			ID:             b.ID,
			IPAddress:      b.IPAddress,
			FailedAttempts: b.FailedAttempts,
			IsBlocked:      b.IsBlocked,
			LastAttempt:    b.LastAttempt,
			CreatedAt:      b.CreatedAt,
			State:          b.GuardState(),
		})
	}
	return out
}

// CategoryRef is the short form of a category nested into a link.
type CategoryRef struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type LinkResponse struct {
	ID         int64        `json:"id"`
	Name       string       `json:"name"`
	URL        string       `json:"url"`
	CategoryID int64        `json:"category_id"`
	Category   *CategoryRef `json:"category,omitempty"`
}

func NewLinkResponse(l Link) LinkResponse {
	return LinkResponse{
		ID:         l.ID,
		Name:       l.Name,
		URL:        l.URL,
		CategoryID: l.CategoryID,
	}
}

func NewLinkResponses(links []Link) []LinkResponse {
	out := make([]LinkResponse, 0, len(links))
	for _, l := range links {
		out = append(out, NewLinkResponse(l))
	}
	return out
}

type CategoryResponse struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	SectionName   string         `json:"section_name"`
	SectionOrder  int            `json:"section_order"`
	CategoryOrder int            `json:"category_order"`
	RegionID      *int64         `json:"region_id"`
	Links         []LinkResponse `json:"links"`
}

func NewCategoryResponse(c Category) CategoryResponse {
	links := make([]LinkResponse, 0, len(c.Links))
	for _, l := range c.Links {
		lr := NewLinkResponse(l)
		lr.Category = &CategoryRef{ID: c.ID, Title: c.Title}
		links = append(links, lr)
	}

	return CategoryResponse{
		ID:            c.ID,
		Title:         c.Title,
		SectionName:   c.SectionName,
		SectionOrder:  c.SectionOrder,
		CategoryOrder: c.CategoryOrder,
		RegionID:      c.RegionID,
		Links:         links,
	}
}

func NewCategoryResponses(categories []Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, NewCategoryResponse(c))
	}
	return out
}

// RegionRef is the short form of a region nested into a page.
type RegionRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type PageResponse struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Slug    string      `json:"slug"`
	Regions []RegionRef `json:"regions"`
}

func NewPageResponse(p Page) PageResponse {
	regions := make([]RegionRef, 0, len(p.Regions))
	for _, r := range p.Regions {
		regions = append(regions, RegionRef{ID: r.ID, Name: r.Name})
	}
	return PageResponse{ID: p.ID, Name: p.Name, Slug: p.Slug, Regions: regions}
}

func NewPageResponses(pages []Page) []PageResponse {
	out := make([]PageResponse, 0, len(pages))
	for _, p := range pages {
		out = append(out, NewPageResponse(p))
	}
	return out
}

type RegionResponse struct {
	ID         int64              `json:"id"`
	Name       string             `json:"name"`
	PageID     *int64             `json:"page_id"`
	Categories []CategoryResponse `json:"categories"`
}

func NewRegionResponse(r Region) RegionResponse {
	return RegionResponse{
		ID:         r.ID,
		Name:       r.Name,
		PageID:     r.PageID,
		Categories: NewCategoryResponses(r.Categories),
	}
}

func NewRegionResponses(regions []Region) []RegionResponse {
	out := make([]RegionResponse, 0, len(regions))
	for _, r := range regions {
		out = append(out, NewRegionResponse(r))
	}
	return out
}
