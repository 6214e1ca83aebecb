package api

import (
	"net/http"
	"strconv"

	"storefront-engine/internal/domain/notification"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type NotificationFeed interface {
	Since(seq int64) []notification.Record
	LastSeq() int64
}

type NotificationHandler struct {
	feed NotificationFeed
}

func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// @Summary Poll notifications
// @Description Events newer than the given sequence number, oldest first
// @Tags notifications
// @Produce json
// @Param since query int false "Last sequence number seen"
// @Success 200 {object} resdto.NotificationFeedResponse
// @Failure 400 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	var since int64
	if raw := c.Query("since"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, ErrInvalidQuery, "Invalid since", nil)
			return
		}
		since = v
	}
	c.JSON(http.StatusOK, resdto.FromNotificationRecords(h.feed.Since(since), h.feed.LastSeq()))
}
