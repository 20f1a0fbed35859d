package model

import "github.com/leighmacdonald/agri-tui/internal/flow"

// Page is the screen occupying the content area between the header and the status bar.
type Page int

const (
	PageLanding Page = iota
	PageFarmer
	PageBuyer
	PageCompany
	PageHelp
)

func (p Page) String() string {
	switch p {
	case PageLanding:
		return "landing"
	case PageFarmer:
		return "farmer"
	case PageBuyer:
		return "buyer"
	case PageCompany:
		return "company"
	case PageHelp:
		return "help"
	default:
		return "unknown"
	}
}

func pageFor(role flow.Role) Page {
	switch role {
	case flow.Farmer:
		return PageFarmer
	case flow.Buyer:
		return PageBuyer
	case flow.Company:
		return PageCompany
	default:
		return PageLanding
	}
}

// ViewState tracks the common ui states that are shared between many models. The root model
// is the only writer; everything else receives a copy as a tea.Msg.
type ViewState struct {
	// Page is what is currently drawn. It differs from View.Page() only while help is open.
	Page Page
	// View is the navigation state, including the sub-flow selection of the active role.
	View View

	// --------- h
	// | Hdr   | e
	// |-------- i
	// | Body  | g
	// |-------- h
	// | Ftr   | t
	// W i d t h
	Body   int
	Height int
	Width  int
}
