package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"calendar-pro/internal/notify"
	"calendar-pro/pkg/response"
)

type notificationResp struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func newListResp(ns []notify.Notification) listResp {
	out := listResp{Notifications: make([]notificationResp, 0, len(ns))}
	for _, n := range ns {
		out.Notifications = append(out.Notifications, notificationResp{
			ID:        n.ID,
			Kind:      string(n.Kind),
			Message:   n.Message,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// List godoc
// @Summary     Live notifications
// @Description Messages pushed by recent operations that have not expired yet, oldest first.
// @Tags        Notifications
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListResp(h.notifier.Recent(ctx)))
}
