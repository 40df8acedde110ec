package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/barkbook/barkbook/internal/app/models/dto"
	"github.com/barkbook/barkbook/internal/app/services"
	"github.com/barkbook/barkbook/internal/middleware"
)

// LocationController handles location related operations
type LocationController struct {
	locationService services.LocationService
}

// NewLocationController creates a new LocationController
func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// GetAllLocations handles retrieving all locations with optional filtering
// @Summary Get all locations
// @Description Retrieves a list of places with optional filtering and pagination
// @Tags locations
// @Accept json
// @Produce json
// @Param location_type query string false "Filter by category (Park, Restaurant, Veterinarian, Trail, House)"
// @Param search query string false "Search by name or description"
// @Param page query int false "Page number (1-based)" default(1) minimum(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} dto.APIResponse{data=dto.LocationListResponse} "Locations retrieved successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request parameters"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /locations [get]
func (c *LocationController) GetAllLocations(ctx *gin.Context) {
	var filter dto.LocationFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid filter parameters"),
		})
		return
	}

	response, err := c.locationService.GetAllLocations(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: response})
}

// GetLocationByID handles retrieving a location by ID
// @Summary Get location by ID
// @Description Retrieves a place with its meetups
// @Tags locations
// @Produce json
// @Param id path int true "Location ID"
// @Success 200 {object} dto.APIResponse{data=dto.LocationResponse} "Location retrieved successfully"
// @Failure 404 {object} dto.APIResponse "Location not found"
// @Router /locations/{id} [get]
func (c *LocationController) GetLocationByID(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid location ID").WithField("id"),
		})
		return
	}

	response, err := c.locationService.GetLocationByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: response})
}

// CreateLocation handles registering a new place
// @Summary Create location
// @Description Registers a place. The postal address is derived from the coordinates.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body dto.CreateLocationRequest true "Location data"
// @Success 201 {object} dto.APIResponse{data=dto.LocationResponse} "Location created successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 401 {object} dto.APIResponse "Unauthorized"
// @Router /locations [post]
func (c *LocationController) CreateLocation(ctx *gin.Context) {
	var req dto.CreateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
		return
	}

	response, err := c.locationService.CreateLocation(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: response})
}

// UpdateLocation handles editing a place
// @Summary Update location
// @Description Edits a place. Changing the coordinates re-derives the address.
// @Tags locations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Param location body dto.UpdateLocationRequest true "Location data"
// @Success 200 {object} dto.APIResponse{data=dto.LocationResponse} "Location updated successfully"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 404 {object} dto.APIResponse "Location not found"
// @Router /locations/{id} [put]
func (c *LocationController) UpdateLocation(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid location ID").WithField("id"),
		})
		return
	}

	var req dto.UpdateLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
		return
	}

	response, err := c.locationService.UpdateLocation(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: response})
}

// DeleteLocation handles removing a place
// @Summary Delete location
// @Description Removes a place
// @Tags locations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Location ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Location deleted successfully"
// @Failure 404 {object} dto.APIResponse "Location not found"
// @Router /locations/{id} [delete]
func (c *LocationController) DeleteLocation(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid location ID").WithField("id"),
		})
		return
	}

	if err := c.locationService.DeleteLocation(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SuccessResponse{Message: "Location deleted successfully"}})
}
