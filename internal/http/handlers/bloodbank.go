package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hemolink/api/internal/domain/bloodbank"
)

type BloodBankReader interface {
	ListInventory(ctx context.Context) ([]bloodbank.Unit, error)
	ListHospitals(ctx context.Context) ([]bloodbank.Hospital, error)
	Stats(ctx context.Context) (bloodbank.DashboardStats, error)
}

type BloodBankHandler struct {
	data BloodBankReader
	log  *slog.Logger
}

func NewBloodBankHandler(data BloodBankReader, log *slog.Logger) *BloodBankHandler {
	return &BloodBankHandler{data: data, log: log}
}

// GET /api/dashboard/stats
func (h *BloodBankHandler) Stats(ctx *gin.Context) {
	stats, err := h.data.Stats(ctx.Request.Context())
	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "dashboard stats failed", "err", err)
		RespondInternal(ctx, "Could not load dashboard stats")
		return
	}

	ctx.JSON(http.StatusOK, stats)
}

// GET /api/inventory
func (h *BloodBankHandler) Inventory(ctx *gin.Context) {
	units, err := h.data.ListInventory(ctx.Request.Context())
	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list inventory failed", "err", err)
		RespondInternal(ctx, "Could not load inventory")
		return
	}

	ctx.JSON(http.StatusOK, units)
}

// GET /api/hospitals
func (h *BloodBankHandler) Hospitals(ctx *gin.Context) {
	hospitals, err := h.data.ListHospitals(ctx.Request.Context())
	if err != nil {
		h.log.ErrorContext(ctx.Request.Context(), "list hospitals failed", "err", err)
		RespondInternal(ctx, "Could not load hospitals")
		return
	}

	ctx.JSON(http.StatusOK, hospitals)
}
