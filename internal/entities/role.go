package entities

import "fmt"

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleVendor       Role = "vendor"
	RoleRider        Role = "rider"
	RoleAdmin        Role = "admin"
	RoleOrganization Role = "organization"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleCustomer, RoleVendor, RoleRider, RoleAdmin, RoleOrganization:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Actor is whoever triggers a suborder action.
type Actor struct {
	Role Role
	ID   int64
}
