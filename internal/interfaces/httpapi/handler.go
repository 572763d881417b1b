package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fishing-league/internal/platform/logging"
	"github.com/riskibarqy/fishing-league/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	eventService     *usecase.EventService
	folderService    *usecase.FolderService
	standingsService *usecase.StandingsService
	weighingService  *usecase.WeighingAccessService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	eventService *usecase.EventService,
	folderService *usecase.FolderService,
	standingsService *usecase.StandingsService,
	weighingService *usecase.WeighingAccessService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		eventService:     eventService,
		folderService:    folderService,
		standingsService: standingsService,
		weighingService:  weighingService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads a single JSON object and rejects unknown fields.
func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, payload any) error {
	_, span := startSpan(ctx, "httpapi.Handler.decodeJSON")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate is the common prologue of every write endpoint.
func (h *Handler) decodeAndValidate(ctx context.Context, r *http.Request, payload any) error {
	if err := h.decodeJSON(ctx, r, payload); err != nil {
		return err
	}
	return h.validateRequest(ctx, payload)
}

// optionalIntQuery returns nil when the parameter is absent.
func optionalIntQuery(r *http.Request, key string) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, key)
	}
	return &v, nil
}
