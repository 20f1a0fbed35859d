package flow

import (
	"golang.org/x/exp/slices"
)

// NodeKind classifies a flowchart node. The legend lists kinds in declaration order.
type NodeKind int

const (
	KindStart NodeKind = iota
	KindDecision
	KindProcess
	KindAction
	KindEnd
)

func Kinds() []NodeKind {
	return []NodeKind{KindStart, KindDecision, KindProcess, KindAction, KindEnd}
}

func (k NodeKind) String() string {
	switch k {
	case KindStart:
		return "Start Point"
	case KindDecision:
		return "Decision"
	case KindProcess:
		return "Process"
	case KindAction:
		return "Action"
	case KindEnd:
		return "End Point"
	default:
		return ""
	}
}

// Tone is the accent colour family of a panel or role card.
type Tone int

const (
	ToneGreen Tone = iota
	ToneBlue
	TonePurple
	ToneOrange
	ToneRed
	ToneYellow
)

type Node struct {
	Icon        string
	Title       string
	Description string
	Kind        NodeKind
	// Opens is set on dashboard action nodes only.
	Opens SubFlow
}

type Branch struct {
	Label string
	Node  Node
}

// Stage is a single row of the main chart. A stage either holds a single node or, for
// decisions, two or more labelled branches that re-join on the following stage.
type Stage struct {
	Node     Node
	Branches []Branch
}

func (s Stage) IsBranch() bool {
	return len(s.Branches) > 0
}

type Chart struct {
	Role     Role
	Title    string
	Subtitle string
	Stages   []Stage
	Actions  []Node
	Hint     string
	Note     string
}

// Section is a titled run of steps rendered left to right.
type Section struct {
	Title string
	Steps []Node
}

// Panel is the expanded detail shown below a chart for a selected sub-flow.
type Panel struct {
	Flow  SubFlow
	Title string
	Tone  Tone
	Steps []Node
	// Followup is the nested trade agreement section, when the sub-flow leads into one.
	Followup *Section
}

type RoleCard struct {
	Role        Role
	Icon        string
	Title       string
	Description string
	Tone        Tone
	Features    []string
}

// ChartFor returns a copy of the role's main flowchart.
func ChartFor(role Role) Chart {
	chart, found := charts[role]
	if !found {
		return Chart{}
	}

	chart.Stages = slices.Clone(chart.Stages)
	for i := range chart.Stages {
		chart.Stages[i].Branches = slices.Clone(chart.Stages[i].Branches)
	}
	chart.Actions = slices.Clone(chart.Actions)

	return chart
}

// PanelFor returns the sub-flow panel for flow. Unknown or invalid flows have no panel,
// which callers render as nothing.
func PanelFor(flow SubFlow) (Panel, bool) {
	if flow == nil || !flow.Valid() {
		return Panel{}, false
	}

	panel, found := panels[panelKey{role: flow.Role(), id: flow.ID()}]
	if !found {
		return Panel{}, false
	}

	panel.Steps = slices.Clone(panel.Steps)
	if panel.Followup != nil {
		followup := *panel.Followup
		followup.Steps = slices.Clone(followup.Steps)
		panel.Followup = &followup
	}

	return panel, true
}

func Card(role Role) RoleCard {
	idx := slices.IndexFunc(cards, func(c RoleCard) bool { return c.Role == role })
	if idx == -1 {
		return RoleCard{}
	}

	card := cards[idx]
	card.Features = slices.Clone(card.Features)

	return card
}

func Cards() []RoleCard {
	out := make([]RoleCard, 0, len(cards))
	for _, role := range Roles() {
		out = append(out, Card(role))
	}

	return out
}

type panelKey struct {
	role Role
	id   string
}
