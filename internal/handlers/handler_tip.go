package handlers

import (
	"net/http"

	"github.com/duasfl8r/vestat/internal/core/domain"
	portssvc "github.com/duasfl8r/vestat/internal/core/ports/services"
	"github.com/duasfl8r/vestat/internal/dto"
	"github.com/gin-gonic/gin"
)

// tipHandler handles sales lifecycle transitions, payouts and the amount owed to staff.
type tipHandler struct {
	tipService portssvc.TipSvcFacade
}

func registerTipRoutes(rg *gin.RouterGroup, tipService portssvc.TipSvcFacade) {
	h := &tipHandler{tipService: tipService}

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createSale)
		sales.GET("/:saleID", h.getSale)
		sales.POST("/:saleID/close", h.closeSale)
		sales.POST("/:saleID/reopen", h.reopenSale)
		sales.DELETE("/:saleID", h.deleteSale)
	}

	tips := rg.Group("/tips")
	{
		tips.POST("/payouts", h.recordPayout)
		tips.GET("/payouts", h.listPayouts)
		tips.GET("/owed", h.getOwed)
	}
}

// createSale godoc
// @Summary Register a day's sale
// @Tags sales
// @Accept json
// @Produce json
// @Param sale body dto.CreateSaleRequest true "Sale"
// @Success 201 {object} dto.SaleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales [post]
func (h *tipHandler) createSale(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	sale, err := h.tipService.CreateSale(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create sale")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSaleResponse(sale))
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [get]
func (h *tipHandler) getSale(c *gin.Context) {
	sale, err := h.tipService.GetSale(c.Request.Context(), c.Param("saleID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// closeSale godoc
// @Summary Close a sale
// @Description Closes the sale and records the staff share of its tip as a liability. Closing a closed sale changes nothing.
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Tip split not configured"
// @Security BearerAuth
// @Router /sales/{saleID}/close [post]
func (h *tipHandler) closeSale(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sale, err := h.tipService.CloseSale(c.Request.Context(), c.Param("saleID"), userID)
	if err != nil {
		respondError(c, err, "Failed to close sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// reopenSale godoc
// @Summary Reopen a sale
// @Description Reopens the sale and removes its tip liability transaction.
// @Tags sales
// @Produce json
// @Param saleID path string true "Sale ID"
// @Success 200 {object} dto.SaleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID}/reopen [post]
func (h *tipHandler) reopenSale(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	sale, err := h.tipService.ReopenSale(c.Request.Context(), c.Param("saleID"), userID)
	if err != nil {
		respondError(c, err, "Failed to reopen sale")
		return
	}
	c.JSON(http.StatusOK, dto.ToSaleResponse(sale))
}

// deleteSale godoc
// @Summary Delete a sale
// @Description Deletes the sale together with its tip liability transaction.
// @Tags sales
// @Param saleID path string true "Sale ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sales/{saleID} [delete]
func (h *tipHandler) deleteSale(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.tipService.DeleteSale(c.Request.Context(), c.Param("saleID"), userID); err != nil {
		respondError(c, err, "Failed to delete sale")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordPayout godoc
// @Summary Record a payout
// @Description Records a cash expense or bank movement. Cash amounts are stored negative. An empty category means a tip payout.
// @Tags tips
// @Accept json
// @Produce json
// @Param payout body dto.CreatePayoutRequest true "Payout"
// @Success 201 {object} dto.PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tips/payouts [post]
func (h *tipHandler) recordPayout(c *gin.Context) {
	var req dto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payout, err := h.tipService.RecordPayout(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record payout")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPayoutResponse(payout))
}

// listPayouts godoc
// @Summary List tip payouts
// @Tags tips
// @Produce json
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {array} dto.PayoutResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tips/payouts [get]
func (h *tipHandler) listPayouts(c *gin.Context) {
	r, err := dto.ParseDateRange(c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err, "Failed to list payouts")
		return
	}
	payouts, err := h.tipService.ListPayouts(c.Request.Context(), r)
	if err != nil {
		respondError(c, err, "Failed to list payouts")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayoutResponses(payouts))
}

// getOwed godoc
// @Summary Amount owed to staff
// @Description Tip payouts up to the day minus the tip liability balance up to the day.
// @Tags tips
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} dto.OwedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /tips/owed [get]
func (h *tipHandler) getOwed(c *gin.Context) {
	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		respondError(c, err, "Failed to compute amount owed")
		return
	}
	owed, err := h.tipService.OwedAsOf(c.Request.Context(), date)
	if err != nil {
		respondError(c, err, "Failed to compute amount owed")
		return
	}
	c.JSON(http.StatusOK, dto.OwedResponse{Date: date.Format(domain.DateLayout), Owed: owed})
}
