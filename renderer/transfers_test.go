package renderer

import (
	"testing"

	"github.com/etnz/dce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransfers_Parties(t *testing.T) {
	table := Transfers([]dce.TransferRecord{
		{From: "abc123", FromName: "", To: "xyz789", ToName: "Bob", Reason: "gift", Orange: dce.U(5)},
		{From: "abc123", FromName: "Alice", To: "xyz789", Reason: "thanks", Green: dce.U(1)},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"From", "To", "Description", "Amount"}, table.Header)

	assert.Equal(t, "abc123", table.Rows[0].From)
	assert.Equal(t, "Bob", table.Rows[0].To)
	assert.Equal(t, "gift", table.Rows[0].Description)

	assert.Equal(t, "Alice", table.Rows[1].From)
	assert.Equal(t, "xyz789", table.Rows[1].To)
}

func TestTransfers_Amount(t *testing.T) {
	testCases := []struct {
		name     string
		orange   *dce.Units
		green    *dce.Units
		want     []AmountCell
		wantText string
	}{
		{
			name:     "orange only",
			orange:   dce.U(5),
			want:     []AmountCell{{Kind: OrangeCell, Units: 5}},
			wantText: "5 🟠",
		},
		{
			name:   "both, orange first",
			orange: dce.U(3),
			green:  dce.U(7),
			want: []AmountCell{
				{Kind: OrangeCell, Units: 3},
				{Kind: PlusCell},
				{Kind: GreenCell, Units: 7},
			},
			wantText: "3 🟠 + 7 🟢",
		},
		{
			name:     "green only has no separator",
			green:    dce.U(4),
			want:     []AmountCell{{Kind: GreenCell, Units: 4}},
			wantText: "4 🟢",
		},
		{
			name:     "zero orange is not shown",
			orange:   dce.U(0),
			green:    dce.U(4),
			want:     []AmountCell{{Kind: GreenCell, Units: 4}},
			wantText: "4 🟢",
		},
		{
			name:     "neither",
			want:     nil,
			wantText: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table := Transfers([]dce.TransferRecord{{From: "a", To: "b", Orange: tc.orange, Green: tc.green}})
			require.Len(t, table.Rows, 1)
			assert.Equal(t, tc.want, table.Rows[0].Amount)
			assert.Equal(t, tc.wantText, table.Rows[0].AmountText())
		})
	}
}

func TestTransfers_FreshOnEveryCall(t *testing.T) {
	records := []dce.TransferRecord{
		{From: "c", To: "d", Reason: "second"},
		{From: "a", To: "b", Reason: "first"},
	}
	first := Transfers(records)
	first.Rows[0].Description = "patched"
	first.Header[0] = "patched"

	second := Transfers(records[1:])
	require.Len(t, second.Rows, 1, "no row survives from a previous call")
	assert.Equal(t, "first", second.Rows[0].Description)
	assert.Equal(t, "From", second.Header[0])

	again := Transfers(records)
	assert.Equal(t, []string{"second", "first"}, []string{again.Rows[0].Description, again.Rows[1].Description}, "records order is kept")
}

func TestTransfers_Empty(t *testing.T) {
	table := Transfers(nil)
	assert.Empty(t, table.Rows)
	assert.Len(t, table.Header, 4)
}
