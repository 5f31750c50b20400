package adaptor

import (
	"net/http"

	"tour-booking/internal/dto/request"
	"tour-booking/internal/usecase"
	"tour-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// ListPackages handles GET /api/packages (public)
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.ListPackages(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetPackage handles GET /api/packages/{slug} (public)
func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeServiceError(w, h.log, err, "get package")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// CreatePackage handles POST /api/packages (operator)
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePackageRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create package")
		return
	}

	utils.ResponseCreated(w, "Package created", pkg)
}

// UpdatePackage handles PATCH /api/packages/{slug} (operator)
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePackageRequest
	if err := decodeBody(r, &req, false); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "slug"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update package")
		return
	}

	utils.ResponseSuccess(w, "Package updated", pkg)
}

// DeletePackage handles DELETE /api/packages/{slug} (operator)
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeServiceError(w, h.log, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}
