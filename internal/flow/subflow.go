package flow

import (
	"golang.org/x/exp/slices"
)

// SubFlow identifies one of a role's expandable sub-process panels. Each role has its own
// closed enumeration implementing this interface so that values from different roles
// can never be confused with each other by the type system.
type SubFlow interface {
	Role() Role
	ID() string
	Valid() bool
}

// FarmerFlow enumerates the farmer dashboard actions. The zero value is not a member.
type FarmerFlow int

const (
	FarmerInputs FarmerFlow = iota + 1
	FarmerPostCrop
	FarmerSearchBuyers
	FarmerHealthVisit
	FarmerIssueReporting
)

var farmerFlowIDs = []string{"inputs", "post-crop", "search-buyers", "health-visit", "issue-reporting"}

func (f FarmerFlow) Role() Role { return Farmer }
func (f FarmerFlow) Valid() bool { return f > 0 && int(f) <= len(farmerFlowIDs) }
func (f FarmerFlow) String() string { return f.ID() }

func (f FarmerFlow) ID() string {
	if !f.Valid() {
		return ""
	}

	return farmerFlowIDs[f-1]
}

// BuyerFlow enumerates the buyer dashboard actions. The zero value is not a member.
type BuyerFlow int

const (
	BuyerBrowseCrops BuyerFlow = iota + 1
	BuyerPostRequirement
	BuyerDisputeReporting
)

var buyerFlowIDs = []string{"browse-crops", "post-requirement", "dispute-reporting"}

func (f BuyerFlow) Role() Role { return Buyer }
func (f BuyerFlow) Valid() bool { return f > 0 && int(f) <= len(buyerFlowIDs) }
func (f BuyerFlow) String() string { return f.ID() }

func (f BuyerFlow) ID() string {
	if !f.Valid() {
		return ""
	}

	return buyerFlowIDs[f-1]
}

// CompanyFlow enumerates the company dashboard actions. The zero value is not a member.
type CompanyFlow int

const (
	CompanyListInputs CompanyFlow = iota + 1
	CompanyManageOrders
	CompanyManageInventory
	CompanyDisputeHandling
)

var companyFlowIDs = []string{"list-inputs", "manage-orders", "manage-inventory", "dispute-handling"}

func (f CompanyFlow) Role() Role { return Company }
func (f CompanyFlow) Valid() bool { return f > 0 && int(f) <= len(companyFlowIDs) }
func (f CompanyFlow) String() string { return f.ID() }

func (f CompanyFlow) ID() string {
	if !f.Valid() {
		return ""
	}

	return companyFlowIDs[f-1]
}

func FarmerFlows() []FarmerFlow {
	return []FarmerFlow{FarmerInputs, FarmerPostCrop, FarmerSearchBuyers, FarmerHealthVisit, FarmerIssueReporting}
}

func BuyerFlows() []BuyerFlow {
	return []BuyerFlow{BuyerBrowseCrops, BuyerPostRequirement, BuyerDisputeReporting}
}

func CompanyFlows() []CompanyFlow {
	return []CompanyFlow{CompanyListInputs, CompanyManageOrders, CompanyManageInventory, CompanyDisputeHandling}
}

// Parse resolves id against a single role's enumeration.
func Parse[F SubFlow](all []F, id string) (F, bool) {
	idx := slices.IndexFunc(all, func(f F) bool { return f.ID() == id })
	if idx == -1 {
		var none F

		return none, false
	}

	return all[idx], true
}

// SubFlows returns the role's closed set in dashboard order.
func SubFlows(role Role) []SubFlow {
	switch role {
	case Farmer:
		return toSubFlows(FarmerFlows())
	case Buyer:
		return toSubFlows(BuyerFlows())
	case Company:
		return toSubFlows(CompanyFlows())
	default:
		return nil
	}
}

// ParseSubFlow resolves id within role's set. Ids belonging to another role are not found.
func ParseSubFlow(role Role, id string) (SubFlow, bool) {
	switch role {
	case Farmer:
		if f, ok := Parse(FarmerFlows(), id); ok {
			return f, true
		}
	case Buyer:
		if f, ok := Parse(BuyerFlows(), id); ok {
			return f, true
		}
	case Company:
		if f, ok := Parse(CompanyFlows(), id); ok {
			return f, true
		}
	}

	return nil, false
}

func toSubFlows[F SubFlow](flows []F) []SubFlow {
	out := make([]SubFlow, len(flows))
	for i, f := range flows {
		out[i] = f
	}

	return out
}
