package consolidation

type GroupStatus string

const (
	StatusOpen        GroupStatus = "OPEN"
	StatusPending     GroupStatus = "PENDING"
	StatusInProgress  GroupStatus = "IN_PROGRESS"
	StatusReadyToShip GroupStatus = "READY_TO_SHIP"
	StatusShipped     GroupStatus = "SHIPPED"
	StatusDelivered   GroupStatus = "DELIVERED"
	StatusCancelled   GroupStatus = "CANCELLED"
)

type PackageStatus string

const (
	PackagePending     PackageStatus = "PENDING"
	PackageReceived    PackageStatus = "RECEIVED"
	PackageReadyToShip PackageStatus = "READY_TO_SHIP"
	PackageShipped     PackageStatus = "SHIPPED"
	PackageDelivered   PackageStatus = "DELIVERED"
)

// transitions is the single authoritative transition table for consolidation
// groups. IN_PROGRESS -> SHIPPED is the operator "conclude" shortcut and a
// legal edge, not a bug.
var transitions = map[GroupStatus]map[GroupStatus]bool{
	StatusOpen: {
		StatusPending:   true,
		StatusCancelled: true,
	},
	StatusPending: {
		StatusInProgress: true,
		StatusCancelled:  true,
	},
	StatusInProgress: {
		StatusReadyToShip: true,
		StatusShipped:     true,
		StatusCancelled:   true,
	},
	StatusReadyToShip: {
		StatusShipped: true,
	},
	StatusShipped: {
		StatusDelivered: true,
	},
}

func CanTransition(from, to GroupStatus) bool {
	return transitions[from][to]
}

// FeesImmutable reports whether the group's fee fields are frozen history.
func FeesImmutable(s GroupStatus) bool {
	return s == StatusShipped || s == StatusDelivered
}
