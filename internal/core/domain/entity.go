package domain

import "fmt"

// ============================================================================
// Entity References
// ============================================================================

// EntityKind identifies the kind of catalog entity that can terminate a
// logical flow or decorate one.
type EntityKind string

const (
	EntityKindApplication        EntityKind = "APPLICATION"
	EntityKindActor              EntityKind = "ACTOR"
	EntityKindEndUserApplication EntityKind = "END_USER_APPLICATION"
	EntityKindDataType           EntityKind = "DATA_TYPE"
)

// IsValid checks if the kind is valid
func (k EntityKind) IsValid() bool {
	switch k {
	case EntityKindApplication, EntityKindActor, EntityKindEndUserApplication, EntityKindDataType:
		return true
	}
	return false
}

// ParseEntityKind converts a stored column value into an EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidEntityKind, s)
	}
	return k, nil
}

// EntityReference points at a catalog entity by kind and id.
type EntityReference struct {
	Kind EntityKind `json:"kind"`
	ID   int64      `json:"id"`
}

// ============================================================================
// Lifecycle
// ============================================================================

// EntityLifecycleStatus represents where a catalog entity is in its lifecycle.
type EntityLifecycleStatus string

const (
	LifecycleActive  EntityLifecycleStatus = "ACTIVE"
	LifecyclePending EntityLifecycleStatus = "PENDING"
	LifecycleRemoved EntityLifecycleStatus = "REMOVED"
)

// IsValid checks if the status is valid
func (s EntityLifecycleStatus) IsValid() bool {
	return s == LifecycleActive || s == LifecyclePending || s == LifecycleRemoved
}

// ParseEntityLifecycleStatus converts a stored column value into an
// EntityLifecycleStatus.
func ParseEntityLifecycleStatus(s string) (EntityLifecycleStatus, error) {
	st := EntityLifecycleStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLifecycleStatus, s)
	}
	return st, nil
}
