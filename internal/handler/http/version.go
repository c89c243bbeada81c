package http

import "net/http"

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	writeOK(w, h.services.AppInfoService.GetBuildInfo(r.Context()).VersionResponse())
}
