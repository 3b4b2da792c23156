// SPDX-License-Identifier: MIT

package perm

import "errors"

// ErrInvalid is returned when a list of images does not describe a permutation.
var ErrInvalid = errors.New("perm: not a permutation")
