package content

import (
	"net/http"

	"github.com/go-chi/chi/v5"

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
	router.Get("/static-params", handler.staticParams)
	router.Route("/{lang}", func(r chi.Router) {
		r.Get("/pages/{slug}", handler.getPage)
		r.Get("/posts", handler.listPosts)
		r.Get("/posts/{slug}", handler.getPost)
		r.Get("/settings", handler.getSettings)
	})
}

// langParam extracts and validates the {lang} path segment. The resolver's
// behavior for unsupported languages is undefined, so they are rejected here.
func langParam(request *http.Request) (Lang, error) {
	lang := Lang(chi.URLParam(request, "lang"))
	if !lang.Supported() {
		return "", validate.RequiredError("lang", "Unsupported language")
	}
	return lang, nil
}

func (handler *Handler) getPage(writer http.ResponseWriter, request *http.Request) {
	lang, err := langParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := handler.service.ResolvePage(request.Context(), chi.URLParam(request, "slug"), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

func (handler *Handler) getPost(writer http.ResponseWriter, request *http.Request) {
	lang, err := langParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	post, err := handler.service.ResolvePost(request.Context(), chi.URLParam(request, "slug"), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, post)
}

func (handler *Handler) listPosts(writer http.ResponseWriter, request *http.Request) {
	lang, err := langParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	posts, err := handler.service.ListPosts(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, posts)
}

func (handler *Handler) getSettings(writer http.ResponseWriter, request *http.Request) {
	lang, err := langParam(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	settings, err := handler.service.Settings(request.Context(), lang)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, settings)
}

func (handler *Handler) staticParams(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, StaticParams())
}
