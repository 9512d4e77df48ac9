package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/taskhive/taskhive/internal/application/ports"
	"github.com/taskhive/taskhive/internal/application/project"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/infrastructure/http/middleware"
)

// ProjectsHandler handles /projects/*. Requires auth middleware.
type ProjectsHandler struct {
	create   *project.CreateProject
	get      *project.GetProject
	list     *project.ListProjects
	update   *project.UpdateProject
	delete   *project.DeleteProject
	validate *validator.Validate
	log      zerolog.Logger
}

func NewProjectsHandler(create *project.CreateProject, get *project.GetProject, list *project.ListProjects, update *project.UpdateProject, del *project.DeleteProject, log zerolog.Logger) *ProjectsHandler {
	return &ProjectsHandler{
		create:   create,
		get:      get,
		list:     list,
		update:   update,
		delete:   del,
		validate: validator.New(),
		log:      log,
	}
}

// ProjectResponse is the JSON shape for a project.
type ProjectResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID.String(),
		Title:       p.Title,
		Description: p.Description,
		Owner:       p.OwnerID.String(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *ProjectsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	projects, err := h.list.Execute(r.Context(), userID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	items := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, toProjectResponse(p))
	}
	writeList(w, http.StatusOK, items, len(items))
}

func (h *ProjectsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid project id")
		return
	}
	p, err := h.get.Execute(r.Context(), domain.NewProjectID(id), userID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toProjectResponse(p))
}

func (h *ProjectsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		Title       string `json:"title" validate:"required,min=1,max=100"`
		Description string `json:"description" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeValidationErr(w, fieldErrors(err))
		return
	}
	p, err := h.create.Execute(r.Context(), project.CreateProjectInput{
		OwnerID:     userID,
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toProjectResponse(p))
}

func (h *ProjectsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid project id")
		return
	}
	var body struct {
		Title       *string `json:"title" validate:"omitempty,min=1,max=100"`
		Description *string `json:"description" validate:"omitempty,min=1"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeValidationErr(w, fieldErrors(err))
		return
	}
	p, err := h.update.Execute(r.Context(), domain.NewProjectID(id), userID, ports.ProjectPatch{
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toProjectResponse(p))
}

func (h *ProjectsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid project id")
		return
	}
	if err := h.delete.Execute(r.Context(), domain.NewProjectID(id), userID); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, struct{}{})
}
