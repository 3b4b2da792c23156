// SPDX-License-Identifier: MIT

package fibre

// Status is the outcome of FindBundle.
type Status int

const (
	// Success: a cochain passing both verifiers was found.
	Success Status = iota
	// InvalidInput: the search does not handle this triangulation (dimension 2).
	InvalidInput
	// H1RankUnsupported: the first cohomology does not have rank one.
	H1RankUnsupported
	// SingleVertex: conditioning left one vertex, so no perturbation exists.
	SingleVertex
	// Other: every candidate failed, or conditioning broke down.
	Other
)

var statusNames = [...]string{
	Success:           "success",
	InvalidInput:      "invalid input",
	H1RankUnsupported: "H1 rank unsupported",
	SingleVertex:      "single vertex",
	Other:             "other",
}

// String returns a short lower-case name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}

	return statusNames[s]
}
