package request

type AddToCartRequest struct {
	ProductID int `json:"productId" binding:"required,min=1"`
}

// Quantity 0 or below removes the line. The upper bound mirrors
// cart.MaxQuantity.
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,max=999"`
}
