package flow

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is one of the marketplace participants that has its own flowchart.
type Role int

const (
	Farmer Role = iota
	Buyer
	Company
)

// Roles returns every role in landing page order.
func Roles() []Role {
	return []Role{Farmer, Buyer, Company}
}

func (r Role) String() string {
	switch r {
	case Farmer:
		return "farmer"
	case Buyer:
		return "buyer"
	case Company:
		return "company"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Title is the capitalised label used in headers and breadcrumbs.
func (r Role) Title() string {
	switch r {
	case Farmer:
		return "Farmer"
	case Buyer:
		return "Crop Buyer"
	case Company:
		return "Company"
	default:
		return ""
	}
}

func (r Role) Valid() bool {
	return r >= Farmer && r <= Company
}

// ParseRole accepts the lowercase role id, ignoring surrounding whitespace and case.
func ParseRole(value string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "farmer":
		return Farmer, nil
	case "buyer":
		return Buyer, nil
	case "company":
		return Company, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRole, value)
	}
}
