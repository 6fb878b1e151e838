package operator

import "slices"

type Capability string

const (
	// Core object primitives
	CapabilityStat   Capability = "stat"
	CapabilityRead   Capability = "read"
	CapabilityWrite  Capability = "write"
	CapabilityDelete Capability = "delete"
	CapabilityList   Capability = "list"

	// CapabilityListStartAfter marks operators that can resume a listing
	// natively after a given key, without client-side filtering.
	CapabilityListStartAfter Capability = "list_start_after"
)

// Capabilities describes what an operator supports.
// Strategy selection (e.g. native offset listing vs. client-side
// filtering) is made once per call based on a Contains probe.
type Capabilities struct {
	Capabilities []Capability `json:"capabilities"`
}

// Contains checks if a capability is supported.
func (oc *Capabilities) Contains(cap Capability) bool {
	if oc == nil {
		return false
	}
	return slices.Contains(oc.Capabilities, cap)
}
