package api

import (
	"net/http"

	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	loyaltyUseCase usecase.LoyaltyUseCase
}

func NewLoyaltyHandler(loyaltyUseCase usecase.LoyaltyUseCase) *LoyaltyHandler {
	return &LoyaltyHandler{loyaltyUseCase: loyaltyUseCase}
}

// @Summary Loyalty status
// @Description Points, tier, discount and distance to the next tier
// @Tags loyalty
// @Produce json
// @Success 200 {object} resdto.LoyaltyResponse
// @Router /loyalty [get]
func (h *LoyaltyHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromLoyaltyStatus(h.loyaltyUseCase.Status()))
}

// @Summary Redeem points
// @Description Spend points; success is false when the balance is too low
// @Tags loyalty
// @Accept json
// @Produce json
// @Param request body reqdto.RedeemPointsRequest true "Points to redeem"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Router /loyalty/redeem [post]
func (h *LoyaltyHandler) Redeem(c *gin.Context) {
	var req reqdto.RedeemPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	ok, err := h.loyaltyUseCase.RedeemPoints(req.Points)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RedeemResponse{
		Success: ok,
		Balance: h.loyaltyUseCase.Points(),
	})
}

// @Summary List rewards
// @Tags loyalty
// @Produce json
// @Success 200 {array} resdto.RewardResponse
// @Router /loyalty/rewards [get]
func (h *LoyaltyHandler) Rewards(c *gin.Context) {
	balance := h.loyaltyUseCase.Points()
	c.JSON(http.StatusOK, resdto.FromRewards(h.loyaltyUseCase.Rewards(), balance))
}

// @Summary Redeem reward
// @Description Spend the reward's points; success is false when the balance is too low
// @Tags loyalty
// @Produce json
// @Param code path string true "Reward code"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 404 {object} map[string]string
// @Router /loyalty/rewards/{code}/redeem [post]
func (h *LoyaltyHandler) RedeemReward(c *gin.Context) {
	rw, ok, err := h.loyaltyUseCase.RedeemReward(c.Param("code"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	balance := h.loyaltyUseCase.Points()
	c.JSON(http.StatusOK, resdto.RedeemResponse{
		Success: ok,
		Reward:  resdto.FromReward(rw, balance),
		Balance: balance,
	})
}
