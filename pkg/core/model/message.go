// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "github.com/google/uuid"

// Message models a chat message exchanged between a cooperative and a
// transporter, as carried by the change-event stream.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderName string    `json:"sender_name"`
	Content    string    `json:"content"`
}
