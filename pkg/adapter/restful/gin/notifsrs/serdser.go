package notifsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/serdser"
	"github.com/mova-mz/mova-core/pkg/core/model"
)

// The URI and form params are bound separately since each binding
// step validates its whole target struct.
type rawNotifUpdateURI struct {
	NID string `uri:"nid" binding:"required,uuid4"`
}

type rawNotifUpdateForm struct {
	Op string `form:"op" binding:"required,oneof=read"`
}

type notifUpdateReq struct {
	NID uuid.UUID
	Op  string
}

func (rs *resource) DserUpdateNotificationReq(
	c *gin.Context,
) *notifUpdateReq {
	uriReq := &rawNotifUpdateURI{}
	if ok := serdser.BindURI(c, uriReq); !ok {
		return nil
	}
	formReq := &rawNotifUpdateForm{}
	if ok := serdser.Bind(c, formReq, binding.Form); !ok {
		return nil
	}
	var errs map[string][]string
	defer func() {
		if errs != nil {
			c.JSON(http.StatusBadRequest, errs)
		}
	}()
	nid, err := uuid.Parse(uriReq.NID)
	if err != nil {
		serdser.AddErr(&errs, "nid", "Path param nid is not UUID.")
		return nil
	}
	return &notifUpdateReq{NID: nid, Op: formReq.Op}
}

type notificationsResp struct {
	Notifications []model.Notification `json:"notifications"`
	UnreadCount   int                  `json:"unread_count"`
}

func SerNotifications(
	ns []model.Notification, unread int,
) notificationsResp {
	if ns == nil {
		ns = []model.Notification{}
	}
	return notificationsResp{Notifications: ns, UnreadCount: unread}
}
