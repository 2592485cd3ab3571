package handlers

import (
	"coal-erp/internal/models"
	"coal-erp/internal/services"

	"github.com/gin-gonic/gin"
)

type TransportHandler struct {
	transport services.TransportService
}

func NewTransportHandler(transport services.TransportService) *TransportHandler {
	return &TransportHandler{transport: transport}
}

func (h *TransportHandler) ListVehicles(c *gin.Context) {
	vehicles, err := h.transport.ListVehicles()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, vehicles)
}

type createVehicleRequest struct {
	VehicleNo   string  `json:"vehicle_no"`
	Capacity    float64 `json:"capacity"`
	DriverName  string  `json:"driver_name"`
	DriverPhone string  `json:"driver_phone"`
}

func (h *TransportHandler) CreateVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	id, err := h.transport.CreateVehicle(req.VehicleNo, req.Capacity, req.DriverName, req.DriverPhone)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *TransportHandler) ListTrips(c *gin.Context) {
	trips, err := h.transport.ListTrips()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, trips)
}

type createTripRequest struct {
	VehicleID              uint    `json:"vehicle_id"`
	SourceWarehouseID      uint    `json:"source_warehouse_id"`
	DestinationWarehouseID uint    `json:"destination_warehouse_id"`
	CoalGradeID            uint    `json:"coal_grade_id"`
	Quantity               float64 `json:"quantity"`
	TripDate               string  `json:"trip_date" binding:"required"`
}

func (h *TransportHandler) CreateTrip(c *gin.Context) {
	var req createTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	tripDate, err := parseDate(req.TripDate)
	if err != nil {
		respondBadRequest(c, "invalid trip_date")
		return
	}

	id, err := h.transport.CreateTrip(
		req.VehicleID,
		req.SourceWarehouseID,
		req.DestinationWarehouseID,
		req.CoalGradeID,
		req.Quantity,
		tripDate,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, gin.H{"id": id})
}

func (h *TransportHandler) UpdateTripStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "status is required")
		return
	}

	if err := h.transport.UpdateTripStatus(id, models.TripStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "trip status updated")
}
