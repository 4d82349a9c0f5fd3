package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/azmath1924/go-rest-starter/internal/api/shared"
	"github.com/azmath1924/go-rest-starter/internal/apperr"
	"github.com/azmath1924/go-rest-starter/internal/service"
	"github.com/azmath1924/go-rest-starter/internal/validation"
)

// createUserSchema validates the POST body: all three fields are required.
var createUserSchema = validation.Schema{
	{Name: "firstName", Rules: validation.Rules{
		Required:  true,
		Type:      validation.TypeString,
		MinLength: validation.IntRule(2),
		MaxLength: validation.IntRule(50),
	}},
	{Name: "lastName", Rules: validation.Rules{
		Required:  true,
		Type:      validation.TypeString,
		MinLength: validation.IntRule(2),
		MaxLength: validation.IntRule(50),
	}},
	{Name: "email", Rules: validation.Rules{
		Required: true,
		Type:     validation.TypeEmail,
	}},
}

// updateUserSchema validates the PUT body: any subset of the fields, each
// constrained the same way as on create when present.
var updateUserSchema = validation.Schema{
	{Name: "firstName", Rules: validation.Rules{
		Type:      validation.TypeString,
		MinLength: validation.IntRule(2),
		MaxLength: validation.IntRule(50),
	}},
	{Name: "lastName", Rules: validation.Rules{
		Type:      validation.TypeString,
		MinLength: validation.IntRule(2),
		MaxLength: validation.IntRule(50),
	}},
	{Name: "email", Rules: validation.Rules{
		Type: validation.TypeEmail,
	}},
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type updateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// UserHandler handles the /api/users CRUD endpoints. It is plain glue:
// decode and validate the request, call the service, and hand results or
// errors to the response helpers.
type UserHandler struct {
	users     service.UserService
	responder *ErrorResponder
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users service.UserService, responder *ErrorResponder) *UserHandler {
	return &UserHandler{
		users:     users,
		responder: responder,
	}
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	shared.Success(w, r, users, "Users retrieved successfully")
}

// GetUser handles GET /api/users/{id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	shared.Success(w, r, user, "User retrieved successfully")
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeAndValidate(r, createUserSchema, &req); err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	user, err := h.users.CreateUser(r.Context(), service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	shared.Created(w, r, user)
}

// UpdateUser handles PUT /api/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	var req updateUserRequest
	if err := decodeAndValidate(r, updateUserSchema, &req); err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	user, err := h.users.UpdateUser(r.Context(), id, service.UpdateUserInput{
		FirstName: normalize(req.FirstName),
		LastName:  normalize(req.LastName),
		Email:     normalize(req.Email),
	})
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	shared.Success(w, r, user, "User updated successfully")
}

// DeleteUser handles DELETE /api/users/{id}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := userIDParam(r)
	if err != nil {
		h.responder.Respond(w, r, err)
		return
	}

	if err := h.users.DeleteUser(r.Context(), id); err != nil {
		h.responder.Respond(w, r, err)
		return
	}
	shared.NoContent(w, r)
}

// userIDParam extracts and parses the numeric {id} path parameter.
func userIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.BadRequest("Invalid user ID")
	}
	return id, nil
}

// decodeAndValidate reads the request body once, validates the decoded
// record against the schema, and unmarshals the same bytes into the typed
// request. Malformed JSON is a 400; rule violations become a validation
// error carrying the full field list.
func decodeAndValidate(r *http.Request, schema validation.Schema, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return apperr.BadRequest("Invalid request format")
	}

	var record map[string]any
	if err := json.Unmarshal(body, &record); err != nil {
		return apperr.BadRequest("Invalid request format")
	}
	if errs := schema.Validate(record); len(errs) > 0 {
		return apperr.Validation(errs)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return apperr.BadRequest("Invalid request format")
	}
	return nil
}

// normalize converts an empty string into an absent field, matching the
// validator's absence rule so a skipped check can never smuggle an empty
// value into a merge.
func normalize(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
