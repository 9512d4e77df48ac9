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
	"github.com/taskhive/taskhive/internal/application/task"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/infrastructure/http/middleware"
)

// TasksHandler handles /tasks/*. Requires auth middleware.
type TasksHandler struct {
	create      *task.CreateTask
	get         *task.GetTask
	list        *task.ListTasks
	listProject *task.ListProjectTasks
	update      *task.UpdateTask
	delete      *task.DeleteTask
	validate    *validator.Validate
	log         zerolog.Logger
}

func NewTasksHandler(create *task.CreateTask, get *task.GetTask, list *task.ListTasks, listProject *task.ListProjectTasks, update *task.UpdateTask, del *task.DeleteTask, log zerolog.Logger) *TasksHandler {
	return &TasksHandler{
		create:      create,
		get:         get,
		list:        list,
		listProject: listProject,
		update:      update,
		delete:      del,
		validate:    validator.New(),
		log:         log,
	}
}

// TaskOwner is the joined owner display block on task reads.
type TaskOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// TaskResponse is the JSON shape for a task. ProjectTitle is null for tasks
// whose project has been deleted.
type TaskResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	DueDate      time.Time `json:"dueDate"`
	ProjectID    string    `json:"projectId"`
	ProjectTitle *string   `json:"projectTitle"`
	Owner        TaskOwner `json:"owner"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		ProjectID:   t.ProjectID.String(),
		Owner:       TaskOwner{ID: t.OwnerID.String()},
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTaskRefResponse(t *domain.TaskWithRefs) TaskResponse {
	resp := toTaskResponse(&t.Task)
	resp.ProjectTitle = t.ProjectTitle
	resp.Owner.Name = t.OwnerName
	resp.Owner.Email = t.OwnerEmail
	return resp
}

// List handles GET /tasks with the optional status, priority, project,
// dueBefore, dueAfter and search query parameters.
func (h *TasksHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	filter, err := parseTaskFilter(r)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}
	tasks, err := h.list.Execute(r.Context(), userID, filter)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeList(w, http.StatusOK, toTaskRefResponses(tasks), len(tasks))
}

// ListByProject handles GET /tasks/project/{projectId}.
func (h *TasksHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	projectID, err := uuid.Parse(chi.URLParam(r, "projectId"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid project id")
		return
	}
	tasks, err := h.listProject.Execute(r.Context(), domain.NewProjectID(projectID), userID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeList(w, http.StatusOK, toTaskRefResponses(tasks), len(tasks))
}

func (h *TasksHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	t, err := h.get.Execute(r.Context(), domain.NewTaskID(id), userID)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTaskRefResponse(t))
}

func (h *TasksHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		Title       string `json:"title" validate:"required,min=1,max=200"`
		Description string `json:"description" validate:"required"`
		Status      string `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
		Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
		DueDate     string `json:"dueDate" validate:"required"`
		Project     string `json:"project" validate:"required,uuid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeValidationErr(w, fieldErrors(err))
		return
	}
	dueDate, err := parseDate(body.DueDate)
	if err != nil {
		writeValidationErr(w, map[string]string{"dueDate": "Invalid date format. Use ISO 8601 format (YYYY-MM-DD)"})
		return
	}
	if dueDate.Before(time.Now()) {
		writeValidationErr(w, map[string]string{"dueDate": "Due date must be in the future"})
		return
	}
	projectID, _ := uuid.Parse(body.Project)
	t, err := h.create.Execute(r.Context(), task.CreateTaskInput{
		OwnerID:     userID,
		ProjectID:   domain.NewProjectID(projectID),
		Title:       body.Title,
		Description: body.Description,
		Status:      domain.Status(body.Status),
		Priority:    domain.Priority(body.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusCreated, toTaskResponse(t))
}

func (h *TasksHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	var body struct {
		Title       *string `json:"title" validate:"omitempty,min=1,max=200"`
		Description *string `json:"description" validate:"omitempty,min=1"`
		Status      *string `json:"status" validate:"omitempty,oneof=todo in-progress completed"`
		Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high"`
		DueDate     *string `json:"dueDate"`
		Project     *string `json:"project" validate:"omitempty,uuid"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeValidationErr(w, fieldErrors(err))
		return
	}
	patch := ports.TaskPatch{
		Title:       body.Title,
		Description: body.Description,
	}
	if body.Status != nil {
		s := domain.Status(*body.Status)
		patch.Status = &s
	}
	if body.Priority != nil {
		p := domain.Priority(*body.Priority)
		patch.Priority = &p
	}
	if body.DueDate != nil {
		dueDate, err := parseDate(*body.DueDate)
		if err != nil {
			writeValidationErr(w, map[string]string{"dueDate": "Invalid date format. Use ISO 8601 format (YYYY-MM-DD)"})
			return
		}
		if dueDate.Before(time.Now()) {
			writeValidationErr(w, map[string]string{"dueDate": "Due date must be in the future"})
			return
		}
		patch.DueDate = &dueDate
	}
	if body.Project != nil {
		projectID, _ := uuid.Parse(*body.Project)
		p := domain.NewProjectID(projectID)
		patch.ProjectID = &p
	}
	t, err := h.update.Execute(r.Context(), domain.NewTaskID(id), userID, patch)
	if err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, toTaskResponse(t))
}

func (h *TasksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeErr(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid task id")
		return
	}
	if err := h.delete.Execute(r.Context(), domain.NewTaskID(id), userID); err != nil {
		writeDomainErr(w, h.log, err)
		return
	}
	writeData(w, http.StatusOK, struct{}{})
}

func toTaskRefResponses(tasks []*domain.TaskWithRefs) []TaskResponse {
	items := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, toTaskRefResponse(t))
	}
	return items
}
