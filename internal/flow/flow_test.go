package flow_test

import (
	"testing"

	"github.com/leighmacdonald/agri-tui/internal/flow"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, role := range flow.Roles() {
		parsed, err := flow.ParseRole(role.String())
		require.NoError(t, err)
		require.Equal(t, role, parsed)
	}

	parsed, err := flow.ParseRole("  Buyer ")
	require.NoError(t, err)
	require.Equal(t, flow.Buyer, parsed)

	_, err = flow.ParseRole("landing")
	require.ErrorIs(t, err, flow.ErrUnknownRole)
}

func TestSubFlowIDsRoundTrip(t *testing.T) {
	for _, role := range flow.Roles() {
		flows := flow.SubFlows(role)
		require.NotEmpty(t, flows)

		for _, subFlow := range flows {
			require.True(t, subFlow.Valid())
			require.Equal(t, role, subFlow.Role())

			parsed, found := flow.ParseSubFlow(role, subFlow.ID())
			require.True(t, found, subFlow.ID())
			require.Equal(t, subFlow, parsed)
		}
	}
}

func TestSubFlowSetSizes(t *testing.T) {
	require.Len(t, flow.SubFlows(flow.Farmer), 5)
	require.Len(t, flow.SubFlows(flow.Buyer), 3)
	require.Len(t, flow.SubFlows(flow.Company), 4)
	require.Empty(t, flow.SubFlows(flow.Role(42)))
}

func TestParseSubFlowRejectsOtherRoles(t *testing.T) {
	_, found := flow.ParseSubFlow(flow.Farmer, flow.BuyerBrowseCrops.ID())
	require.False(t, found)

	_, found = flow.ParseSubFlow(flow.Company, "inputs")
	require.False(t, found)

	_, found = flow.ParseSubFlow(flow.Buyer, "")
	require.False(t, found)

	value, found := flow.Parse(flow.FarmerFlows(), "health-visit")
	require.True(t, found)
	require.Equal(t, flow.FarmerHealthVisit, value)
}

func TestZeroValueIsNotAMember(t *testing.T) {
	var (
		farmer  flow.FarmerFlow
		buyer   flow.BuyerFlow
		company flow.CompanyFlow
	)

	require.False(t, farmer.Valid())
	require.False(t, buyer.Valid())
	require.False(t, company.Valid())
	require.Empty(t, farmer.ID())
	require.False(t, flow.FarmerFlow(99).Valid())
}

func TestEverySubFlowHasPanelAndAction(t *testing.T) {
	for _, role := range flow.Roles() {
		for _, subFlow := range flow.SubFlows(role) {
			panel, found := flow.PanelFor(subFlow)
			require.True(t, found, subFlow.ID())
			require.NotEmpty(t, panel.Title)
			require.NotEmpty(t, panel.Steps)
			require.Equal(t, subFlow, panel.Flow)

			last := panel.Steps[len(panel.Steps)-1]
			if panel.Followup != nil {
				last = panel.Followup.Steps[len(panel.Followup.Steps)-1]
			}
			require.Equal(t, flow.KindEnd, last.Kind, subFlow.ID())
		}
	}
}

func TestPanelForUnknown(t *testing.T) {
	_, found := flow.PanelFor(nil)
	require.False(t, found)

	_, found = flow.PanelFor(flow.BuyerFlow(0))
	require.False(t, found)

	_, found = flow.PanelFor(flow.CompanyFlow(17))
	require.False(t, found)
}

func TestChartActionsMatchSubFlows(t *testing.T) {
	for _, role := range flow.Roles() {
		chart := flow.ChartFor(role)
		require.Equal(t, role, chart.Role)
		require.NotEmpty(t, chart.Title)
		require.Equal(t, flow.KindStart, chart.Stages[0].Node.Kind)

		flows := flow.SubFlows(role)
		require.Len(t, chart.Actions, len(flows))
		for i, node := range chart.Actions {
			require.Equal(t, flows[i], node.Opens)
		}
	}
}

func TestFarmerChartHasLiteracyDecision(t *testing.T) {
	chart := flow.ChartFor(flow.Farmer)

	var branch flow.Stage
	for _, stage := range chart.Stages {
		if stage.IsBranch() {
			branch = stage
		}
	}

	require.Len(t, branch.Branches, 2)
	require.Equal(t, "No Digital Literacy", branch.Branches[0].Label)
	require.Equal(t, "Digitally Literate", branch.Branches[1].Label)
}

func TestAccessorsReturnCopies(t *testing.T) {
	chart := flow.ChartFor(flow.Buyer)
	chart.Actions[0].Title = "mutated"
	chart.Stages[0].Node.Title = "mutated"
	require.NotEqual(t, "mutated", flow.ChartFor(flow.Buyer).Actions[0].Title)
	require.NotEqual(t, "mutated", flow.ChartFor(flow.Buyer).Stages[0].Node.Title)

	panel, _ := flow.PanelFor(flow.FarmerPostCrop)
	panel.Followup.Steps[0].Title = "mutated"
	again, _ := flow.PanelFor(flow.FarmerPostCrop)
	require.Equal(t, "Agree to Trade", again.Followup.Steps[0].Title)

	card := flow.Card(flow.Company)
	card.Features[0] = "mutated"
	require.Equal(t, "List Agri-Inputs", flow.Card(flow.Company).Features[0])
}

func TestCards(t *testing.T) {
	cards := flow.Cards()
	require.Len(t, cards, 3)
	for i, role := range flow.Roles() {
		require.Equal(t, role, cards[i].Role)
		require.Len(t, cards[i].Features, 5)
	}
}
