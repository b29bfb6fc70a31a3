package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jsd6-group5/project-backend/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Activity handles GET /user/activity/{userId}
func (h *HTTPHandler) Activity(w http.ResponseWriter, r *http.Request) {
	userID, err := ParseUserID(r.PathValue("userId"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_USER_ID", "User id is not a valid identifier", nil)
		return
	}

	activity, err := h.svc.Activity(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if activity == nil {
		activity = []Activity{}
	}
	httpx.JSONSuccess(w, r, activity, map[string]any{"count": len(activity)})
}

// Info handles GET /user/info/{userId}
func (h *HTTPHandler) Info(w http.ResponseWriter, r *http.Request) {
	userID, err := ParseUserID(r.PathValue("userId"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_USER_ID", "User id is not a valid identifier", nil)
		return
	}

	profiles, err := h.svc.Profile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if profiles == nil {
		profiles = []Profile{}
	}
	httpx.JSONSuccess(w, r, profiles, nil)
}

type changePasswordReq struct {
	NewPassword string `json:"newPassword" validate:"required"`
}

// ChangePassword handles POST /user/changePassword/{userId}
func (h *HTTPHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := ParseUserID(r.PathValue("userId"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_USER_ID", "User id is not a valid identifier", nil)
		return
	}

	var req changePasswordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}

	if validationErrors := httpx.ValidateStruct(req); len(validationErrors) > 0 {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrors)
		return
	}

	if err := h.svc.ChangePassword(r.Context(), userID, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{"updated": true}, nil)
}

// EditProfile handles PATCH /user/editProfile/{userId} (multipart form:
// name, email, phoneNumber, image).
func (h *HTTPHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := ParseUserID(r.PathValue("userId"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_USER_ID", "User id is not a valid identifier", nil)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Image file is required", []httpx.ErrorDetail{
			{Field: "image", Message: "image is required"},
		})
		return
	}
	defer file.Close()

	cmd := EditProfileCommand{
		FullName: formValue(r, "name"),
		Email:    formValue(r, "email"),
		Phone:    formValue(r, "phoneNumber"),
	}
	upload := &Upload{
		Reader:      file,
		ContentType: header.Header.Get("Content-Type"),
	}

	if err := h.svc.EditProfile(r.Context(), userID, cmd, upload); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{"updated": true}, nil)
}

// formValue distinguishes an absent field from an empty one so omitted
// fields stay out of the partial update.
func formValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	values, ok := r.MultipartForm.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	v := strings.TrimSpace(values[0])
	return &v
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrEmptyPassword):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "New password is required", []httpx.ErrorDetail{
			{Field: "newPassword", Message: "newPassword is required"},
		})
	case errors.Is(err, ErrMissingImage):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Image file is required", []httpx.ErrorDetail{
			{Field: "image", Message: "image is required"},
		})
	default:
		// Storage failures leave no partial writes behind, so the whole
		// request is safe to retry.
		httpx.JSONError(w, r, http.StatusBadGateway, "STORAGE_ERROR", "Storage operation failed", nil)
	}
}
