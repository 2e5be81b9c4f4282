package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/okoval/calyna/internal/platform/constants"
	"github.com/okoval/calyna/internal/platform/middleware"
	"github.com/okoval/calyna/internal/platform/respond"
	"github.com/okoval/calyna/internal/platform/validate"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/", handler.submit)
}

// submit handles POST /api/v1/contact.
//
// The response shape is fixed: {"success":true} on relay, or the standard
// error envelope (which always carries "success":false) on failure.
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var submission Submission
	if err := json.NewDecoder(request.Body).Decode(&submission); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	if err := handler.service.Submit(request.Context(), submission, middleware.RealIP(request)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.JSON(writer, http.StatusOK, map[string]bool{constants.FieldSuccess: true})
}
