// Package entity contains the core business objects of the project.
package entity

import "strings"

// EntityType identifies which kind of role profile a query or record refers to.
type EntityType string

const (
	// EntityTypeFreelancer is a freelancer offering skills.
	EntityTypeFreelancer EntityType = "freelancer"
	// EntityTypeInvestor is an investor with sector and stage preferences.
	EntityTypeInvestor EntityType = "investor"
	// EntityTypeStartup is a founder's startup.
	EntityTypeStartup EntityType = "startup"
	// EntityTypeSpace is a space provider (coworking, office, lab).
	EntityTypeSpace EntityType = "space"
)

// EntityTypes lists every supported entity type in a stable order.
var EntityTypes = []EntityType{
	EntityTypeFreelancer,
	EntityTypeInvestor,
	EntityTypeStartup,
	EntityTypeSpace,
}

// String returns the string representation of the EntityType.
func (t EntityType) String() string {
	return string(t)
}

// IsValid checks if the EntityType is a valid value.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeFreelancer, EntityTypeInvestor, EntityTypeStartup, EntityTypeSpace:
		return true
	default:
		return false
	}
}

// ParseEntityType normalizes raw input into an EntityType. The second return value is false
// for anything outside the supported set; callers must not fall back to a default.
func ParseEntityType(raw string) (EntityType, bool) {
	t := EntityType(strings.ToLower(strings.TrimSpace(raw)))

	return t, t.IsValid()
}
