package handlers

import (
	"CheckNotes/internal/config"
	"CheckNotes/internal/middleware"
	"CheckNotes/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StorageHandler отдаёт и принимает значения синхронизируемого хранилища.
type StorageHandler struct {
	StorageService *service.StorageService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewStorageHandler(storageService *service.StorageService, logger *zap.SugaredLogger, cfg *config.Config) *StorageHandler {
	return &StorageHandler{StorageService: storageService, Logger: logger, Config: cfg}
}

func (h *StorageHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	key := chi.URLParam(r, "key")

	value, ok, err := h.StorageService.Get(r.Context(), userID, key)
	if err != nil {
		h.writeError(w, "Get", userID, key, err)
		return
	}
	if !ok {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(value)
}

func (h *StorageHandler) Put(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	key := chi.URLParam(r, "key")

	// читаем на байт больше квоты, чтобы отличить «ровно квота» от «больше»
	var rd io.Reader = r.Body
	if q := h.Config.QuotaBytes; q > 0 {
		rd = io.LimitReader(r.Body, int64(q)+1)
	}
	body, err := io.ReadAll(rd)
	if err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.StorageService.Put(r.Context(), userID, key, body); err != nil {
		h.writeError(w, "Put", userID, key, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	key := chi.URLParam(r, "key")

	if err := h.StorageService.Delete(r.Context(), userID, key); err != nil {
		h.writeError(w, "Delete", userID, key, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StorageHandler) writeError(w http.ResponseWriter, op string, userID int64, key string, err error) {
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, service.ErrInvalidValue), errors.Is(err, service.ErrInvalidKey):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Logger.Errorw(op+": service error", "user_id", userID, "key", key, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
