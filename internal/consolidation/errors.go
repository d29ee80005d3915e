package consolidation

import "errors"

// Precondition violations. The message is shown to the caller verbatim.
var (
	ErrNotOwner              = errors.New("consolidation group does not belong to this user")
	ErrGroupNotOpen          = errors.New("packages can only be added or removed while the group is OPEN")
	ErrGroupFull             = errors.New("group has reached its maximum number of packages")
	ErrPackageNotReceived    = errors.New("package must be RECEIVED at the warehouse before consolidation")
	ErrPackageAlreadyGrouped = errors.New("package already belongs to a consolidation group")
	ErrPackageNotInGroup     = errors.New("package is not a member of this group")
	ErrPackageNotPending     = errors.New("package arrival was already confirmed")
	ErrBoxSizeRequired       = errors.New("a box size must be chosen before requesting consolidation")
	ErrTrackingRequired      = errors.New("a tracking code is required before the group can ship")
	ErrFinalWeightRequired   = errors.New("the measured final weight is required before the group is ready to ship")
	ErrPaymentMismatch       = errors.New("payment amount does not match the frozen total")
)

// Transition failures.
var (
	// ErrIllegalTransition: the requested edge is not in the transition table.
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrStatusConflict: the edge is legal but another writer advanced the
	// group first; the caller should refresh and retry.
	ErrStatusConflict = errors.New("group status changed concurrently, refresh and retry")
)
