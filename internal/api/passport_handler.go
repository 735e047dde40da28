package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/passport-api/internal/api/shared"
	"github.com/phrazzld/passport-api/internal/domain"
	"github.com/phrazzld/passport-api/internal/platform/logger"
	"github.com/phrazzld/passport-api/internal/service"
)

// DefaultMaxBodyBytes bounds request bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 10 << 20

// PassportHandler handles passport-related HTTP requests
type PassportHandler struct {
	passportService service.PassportService
	maxBodyBytes    int64
	logger          *slog.Logger
}

// NewPassportHandler creates a new PassportHandler. A non-positive
// maxBodyBytes selects DefaultMaxBodyBytes.
func NewPassportHandler(
	passportService service.PassportService,
	maxBodyBytes int64,
	logger *slog.Logger,
) *PassportHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PassportHandler{
		passportService: passportService,
		maxBodyBytes:    maxBodyBytes,
		logger:          logger.With("component", "passport_handler"),
	}
}

// CreatePassport handles POST /api/passport requests
func (h *PassportHandler) CreatePassport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	var req domain.PassportRequest
	if !h.decode(w, r, &req) {
		return
	}

	// Validate request before any provider is involved
	if err := shared.ValidateRequest(&req); err != nil {
		respondValidationError(w, r, err)
		return
	}

	passport, err := h.passportService.Generate(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to generate Intergalactic Passport")
		return
	}

	log.Debug("passport served",
		"theme", passport.Theme.Name,
		"has_portrait", passport.ImageURL != "")
	shared.RespondWithJSON(w, r, http.StatusOK, passport)
}

// SaveImage handles POST /api/save-image requests
func (h *PassportHandler) SaveImage(w http.ResponseWriter, r *http.Request) {
	var req SaveImageRequest
	if !h.decode(w, r, &req) {
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "No image data provided", err)
		return
	}

	stored, err := h.passportService.SaveSnapshot(r.Context(), req.ImageData)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to save image")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SaveImageResponse{
		Success:  true,
		URL:      stored.URL,
		PublicID: stored.PublicID,
	})
}

// decode reads a size-limited JSON body into v, writing the error response
// itself when that fails.
func (h *PassportHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	if err := shared.DecodeJSON(r, v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithErrorAndLog(w, r, http.StatusRequestEntityTooLarge, "Request body too large", err,
				shared.WithElevatedLogLevel())
			return false
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	return true
}

// respondValidationError writes a 400 for either struct-tag or domain
// validation failures.
func respondValidationError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}
	HandleAPIError(w, r, err, "Validation error")
}
