package request

import "storefront-engine/internal/pkg/patch"

type CreateReviewRequest struct {
	UserName string `json:"userName" binding:"required,max=100"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=1000"`
}

// DisplayName falls back to "Anonymous" for a blank name.
func (r CreateReviewRequest) DisplayName() string {
	return patch.TrimOr(&r.UserName, "Anonymous")
}
