package model

import "github.com/leighmacdonald/agri-tui/internal/flow"

// View is the top level navigation state. It is a closed union: Landing, or a RoleView
// instantiated with one role's sub-flow enumeration.
type View interface {
	Page() Page
	isView()
}

type Landing struct{}

func (Landing) Page() Page { return PageLanding }
func (Landing) isView() {}

// RoleView is the state of a single role's flowchart. Its selection can only ever hold a
// value of that role's own enumeration.
type RoleView[F flow.SubFlow] struct {
	selected F
}

type (
	FarmerView  = RoleView[flow.FarmerFlow]
	BuyerView   = RoleView[flow.BuyerFlow]
	CompanyView = RoleView[flow.CompanyFlow]
)

func (v RoleView[F]) Role() flow.Role {
	var none F

	return none.Role()
}

func (v RoleView[F]) Page() Page { return pageFor(v.Role()) }
func (v RoleView[F]) isView() {}

// Selected returns the open sub-flow, if any.
func (v RoleView[F]) Selected() (F, bool) {
	return v.selected, v.selected.Valid()
}

// Select opens id. Values outside the enumeration leave the selection as it was.
func (v RoleView[F]) Select(id F) RoleView[F] {
	if !id.Valid() {
		return v
	}

	v.selected = id

	return v
}

func (v RoleView[F]) Clear() RoleView[F] {
	return RoleView[F]{}
}

func (v RoleView[F]) selection() (flow.SubFlow, bool) {
	if !v.selected.Valid() {
		return nil, false
	}

	return v.selected, true
}

func (v RoleView[F]) selectAny(subFlow flow.SubFlow) (View, bool) {
	id, ok := subFlow.(F)
	if !ok || !id.Valid() {
		return v, false
	}

	return v.Select(id), true
}

func (v RoleView[F]) clear() View {
	return v.Clear()
}

// roleState is satisfied by every RoleView instantiation.
type roleState interface {
	View
	Role() flow.Role
	selection() (flow.SubFlow, bool)
	selectAny(subFlow flow.SubFlow) (View, bool)
	clear() View
}

// RoleOf returns the role shown by view, or false for the landing page.
func RoleOf(view View) (flow.Role, bool) {
	state, ok := view.(roleState)
	if !ok {
		return 0, false
	}

	return state.Role(), true
}

// SelectionOf returns the sub-flow open in view, if any.
func SelectionOf(view View) (flow.SubFlow, bool) {
	state, ok := view.(roleState)
	if !ok {
		return nil, false
	}

	return state.selection()
}

func enter(role flow.Role) (View, bool) {
	switch role {
	case flow.Farmer:
		return FarmerView{}, true
	case flow.Buyer:
		return BuyerView{}, true
	case flow.Company:
		return CompanyView{}, true
	default:
		return nil, false
	}
}

// Navigator owns the single navigation stack: landing, then one role, then optionally one
// of that role's sub-flows. Every transition reports whether the state changed.
type Navigator struct {
	view View
}

func NewNavigator() Navigator {
	return Navigator{view: Landing{}}
}

func (n Navigator) View() View {
	if n.view == nil {
		return Landing{}
	}

	return n.view
}

func (n Navigator) Page() Page {
	return n.View().Page()
}

// Role returns the active role, or false on the landing page.
func (n Navigator) Role() (flow.Role, bool) {
	return RoleOf(n.View())
}

// Selected returns the open sub-flow of the active role.
func (n Navigator) Selected() (flow.SubFlow, bool) {
	return SelectionOf(n.View())
}

// Navigate enters role from the landing page. Moving directly between roles is not allowed.
func (n *Navigator) Navigate(role flow.Role) bool {
	if _, onLanding := n.View().(Landing); !onLanding {
		return false
	}

	view, ok := enter(role)
	if !ok {
		return false
	}

	n.view = view

	return true
}

// Back returns to the landing page, discarding the role's selection.
func (n *Navigator) Back() bool {
	if _, onLanding := n.View().(Landing); onLanding {
		return false
	}

	n.view = Landing{}

	return true
}

// Select opens subFlow when it belongs to the active role. Anything else is ignored.
func (n *Navigator) Select(subFlow flow.SubFlow) bool {
	state, ok := n.View().(roleState)
	if !ok || subFlow == nil {
		return false
	}

	current, _ := state.selection()
	view, ok := state.selectAny(subFlow)
	if !ok {
		return false
	}

	n.view = view

	return current != subFlow
}

// SelectID resolves id within the active role's set and selects it.
func (n *Navigator) SelectID(id string) bool {
	role, ok := n.Role()
	if !ok {
		return false
	}

	subFlow, found := flow.ParseSubFlow(role, id)
	if !found {
		return false
	}

	return n.Select(subFlow)
}

// SelectIndex selects the role's sub-flow at the zero based dashboard position.
func (n *Navigator) SelectIndex(index int) bool {
	role, ok := n.Role()
	if !ok {
		return false
	}

	flows := flow.SubFlows(role)
	if index < 0 || index >= len(flows) {
		return false
	}

	return n.Select(flows[index])
}

// Clear closes the open sub-flow panel.
func (n *Navigator) Clear() bool {
	state, ok := n.View().(roleState)
	if !ok {
		return false
	}

	_, open := state.selection()
	n.view = state.clear()

	return open
}
