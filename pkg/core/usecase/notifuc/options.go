// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package notifuc

import "errors"

// Option applies an optional configuration to a UseCase instance
// during its construction, returning an error for invalid values.
type Option func(*UseCase) error

// WithAlerter injects the presentation side effect which is triggered
// after each added notification. Without this option no alert is
// attempted at all.
func WithAlerter(a Alerter) Option {
	return func(uc *UseCase) error {
		if a == nil {
			return errors.New("alerter must not be nil")
		}
		uc.alerter = a
		return nil
	}
}
