// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package notifsrs realizes the notifications resource, allowing the
// aggregated notification list to be read and manipulated through the
// REST APIs, delegating to the notifications use case respectively.
package notifsrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mova-mz/mova-core/pkg/core/usecase/notifuc"
)

type resource struct {
	notifs *notifuc.UseCase
}

// Register instantiates a resource adapting the notifications use case
// instance with the relevant REST APIs including:
//  1. GET request to /api/mova/v1/notifications
//     in order to list notifications with the unread counter,
//  2. PATCH request to /api/mova/v1/notifications/:nid
//     in order to mark one notification as read,
//  3. DELETE request to /api/mova/v1/notifications
//     in order to clear the whole list.
func Register(r *gin.RouterGroup, notifs *notifuc.UseCase) {
	rs := &resource{notifs: notifs}
	r.GET("notifications", rs.ListNotifications)
	r.PATCH("notifications/:nid", rs.UpdateNotification)
	r.DELETE("notifications", rs.ClearNotifications)
}

func (rs *resource) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, SerNotifications(
		rs.notifs.Notifications(), rs.notifs.UnreadCount(),
	))
}

func (rs *resource) UpdateNotification(c *gin.Context) {
	req := rs.DserUpdateNotificationReq(c)
	if req == nil {
		return
	}
	switch req.Op {
	case "read":
		rs.notifs.MarkAsRead(req.NID)
	default:
		panic("unexpected op:" + req.Op)
	}
	c.Status(http.StatusNoContent)
}

func (rs *resource) ClearNotifications(c *gin.Context) {
	rs.notifs.ClearAll()
	c.Status(http.StatusNoContent)
}
