package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/SscSPs/fin_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/fin_tracker_app/internal/dto"
)

// subscriptionHandler handles the subscription lifecycle routes.
type subscriptionHandler struct {
	subscriptionService portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(subscriptionService portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{subscriptionService: subscriptionService}
}

// registerSubscriptionRoutes sets up the /subscriptions routes.
func registerSubscriptionRoutes(rg *gin.RouterGroup, subscriptionService portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(subscriptionService)
	subscriptions := rg.Group("/subscriptions")
	{
		subscriptions.POST("", h.create)
		subscriptions.GET("", h.list)
		subscriptions.GET("/:id", h.get)
		subscriptions.PUT("/:id", h.update)
		subscriptions.DELETE("/:id", h.delete)
		subscriptions.POST("/toggle/:id", h.toggle)
	}
}

// create godoc
// @Summary Create a subscription
// @Description Creates a recurring subscription. Status defaults to ACTIVE, start date to now.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body dto.CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} dto.SubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions [post]
func (h *subscriptionHandler) create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	subscription, err := h.subscriptionService.CreateSubscription(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create subscription")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSubscriptionResponse(subscription))
}

// list godoc
// @Summary List the caller's subscriptions
// @Tags subscriptions
// @Produce json
// @Success 200 {array} dto.SubscriptionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions [get]
func (h *subscriptionHandler) list(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	subscriptions, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to list subscriptions")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponses(subscriptions))
}

// get godoc
// @Summary Get a subscription by ID
// @Tags subscriptions
// @Produce json
// @Param id path string true "Subscription ID"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{id} [get]
func (h *subscriptionHandler) get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	subscription, err := h.subscriptionService.GetSubscriptionByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondWithError(c, err, "Failed to fetch subscription")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription))
}

// update godoc
// @Summary Update a subscription
// @Description Applies a partial update. Status changes go through the toggle endpoint.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param subscription body dto.UpdateSubscriptionRequest true "Fields to update"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{id} [put]
func (h *subscriptionHandler) update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	subscription, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), c.Param("id"), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to update subscription")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription))
}

// delete godoc
// @Summary Delete a subscription
// @Tags subscriptions
// @Param id path string true "Subscription ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/{id} [delete]
func (h *subscriptionHandler) delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.subscriptionService.DeleteSubscription(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondWithError(c, err, "Failed to delete subscription")
		return
	}

	c.Status(http.StatusNoContent)
}

// toggle godoc
// @Summary Change a subscription's status
// @Description Sets the subscription status. Values other than ACTIVE, INACTIVE and CANCELLED resolve to ACTIVE.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param id path string true "Subscription ID"
// @Param status body dto.ToggleSubscriptionRequest true "Requested status"
// @Success 200 {object} dto.SubscriptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscriptions/toggle/{id} [post]
func (h *subscriptionHandler) toggle(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ToggleSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	subscription, err := h.subscriptionService.ToggleSubscription(c.Request.Context(), c.Param("id"), userID, req.Status)
	if err != nil {
		respondWithError(c, err, "Failed to toggle subscription")
		return
	}

	c.JSON(http.StatusOK, dto.ToSubscriptionResponse(subscription))
}
