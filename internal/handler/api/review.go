package api

import (
	"net/http"

	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewUseCase usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{reviewUseCase: reviewUseCase}
}

// @Summary Create review
// @Description Post a review for a product
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /products/{id}/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := productIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rev, err := h.reviewUseCase.AddReview(productID, req.DisplayName(), req.Rating, req.Comment)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReview(rev))
}

// @Summary List product reviews
// @Description Reviews of one product, newest first
// @Tags reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {array} resdto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := productIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviews(h.reviewUseCase.ProductReviews(productID)))
}

// @Summary Product rating
// @Description Review count, average (0 without reviews) and per-star histogram
// @Tags reviews
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 400 {object} map[string]string
// @Router /products/{id}/rating [get]
func (h *ReviewHandler) ProductRating(c *gin.Context) {
	productID, ok := productIDParam(c, "id")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, resdto.FromSummary(h.reviewUseCase.RatingSummary(productID)))
}
