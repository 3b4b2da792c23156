// SPDX-License-Identifier: MIT

package homology

import "errors"

var (
	// ErrNotChainComplex is returned when M·N is not the zero matrix.
	ErrNotChainComplex = errors.New("homology: maps do not form a chain complex")

	// ErrShape is returned when the column count of M differs from the row
	// count of N.
	ErrShape = errors.New("homology: incompatible matrix shapes")

	// ErrNoGenerator is returned by FreeRep for an index outside [0, Rank()).
	ErrNoGenerator = errors.New("homology: no such free generator")
)
