package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.security.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json"), h.withPrincipal)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/admin/login", h.login)
		r.Post("/login", h.login)
		r.Get("/api/auth/status", h.status)
		r.Get("/api/version", h.getServerVersion)

		r.Get("/api/categories", h.listCategories)
		r.Get("/api/categories/{id}", h.getCategory)
		r.Get("/api/categories/{id}/links", h.listCategoryLinks)
		r.Get("/api/links", h.listLinks)
		r.Get("/api/links/{id}", h.getLink)
		r.Get("/api/pages", h.listPages)
		r.Get("/api/pages/{id}", h.getPage)
		r.Get("/api/regions", h.listRegions)
		r.Get("/api/regions/{id}", h.getRegion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/api/auth/logout", h.logout)
		r.Post("/logout", h.logout)

		r.Get("/api/admin/users", h.listUsers)
		r.Post("/api/admin/users", h.createUser)
		r.Put("/api/admin/users/{id}", h.updateUser)
		r.Delete("/api/admin/users/{id}", h.deleteUser)
		r.Post("/api/admin/users/{id}/unlock", h.unlockUser)

		r.Get("/api/admin/ip-blocks", h.listIPBlocks)
		r.Post("/api/admin/ip-blocks/{id}/unblock", h.unblockIP)

		r.Post("/api/admin/categories", h.createCategory)
		r.Put("/api/admin/categories/{id}", h.updateCategory)
		r.Delete("/api/admin/categories/{id}", h.deleteCategory)
		r.Post("/api/admin/categories/reorder", h.reorderCategory)
		r.Post("/api/admin/categories/move", h.moveCategory)

		r.Post("/api/admin/sections", h.createSection)
		r.Post("/api/admin/sections/update", h.renameSection)
		r.Post("/api/admin/sections/delete", h.deleteSection)
		r.Post("/api/admin/sections/reorder", h.reorderSection)

		r.Post("/api/admin/links", h.createLink)
		r.Put("/api/admin/links/{id}", h.updateLink)
		r.Delete("/api/admin/links/{id}", h.deleteLink)

		r.Post("/api/admin/pages", h.createPage)
		r.Put("/api/admin/pages/{id}", h.updatePage)
		r.Delete("/api/admin/pages/{id}", h.deletePage)

		r.Post("/api/admin/regions", h.createRegion)
		r.Put("/api/admin/regions/{id}", h.updateRegion)
		r.Delete("/api/admin/regions/{id}", h.deleteRegion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
