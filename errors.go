// SPDX-License-Identifier: EPL-2.0

package micarray

import "errors"

var (
	ErrUnknownFormat = errors.New("no decoder registered for file extension")
)
