package request

type RedeemPointsRequest struct {
	Points int `json:"points" binding:"required,min=1"`
}
