// Package renderer turns ledger records into display models and markdown.
package renderer

import (
	"strings"

	"github.com/etnz/dce"
)

// CellKind tells what an amount sub-cell holds.
type CellKind int

const (
	OrangeCell CellKind = iota // an orange amount
	PlusCell                   // the "+" between an orange and a green amount
	GreenCell                  // a green amount
)

// AmountCell is one sub-cell of the amount column.
type AmountCell struct {
	Kind  CellKind
	Units dce.Units // zero for PlusCell
}

func (c AmountCell) String() string {
	switch c.Kind {
	case OrangeCell:
		return dce.Orange.Format(c.Units)
	case GreenCell:
		return dce.Green.Format(c.Units)
	default:
		return "+"
	}
}

// TransferRow is the display form of one transfer record.
type TransferRow struct {
	From        string
	To          string
	Description string
	Amount      []AmountCell // empty when the record moved nothing
}

// AmountText returns the amount sub-cells joined in a single line.
func (r TransferRow) AmountText() string {
	parts := make([]string, len(r.Amount))
	for i, c := range r.Amount {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// TransferTable is the display model of the transfer history.
type TransferTable struct {
	Header []string
	Rows   []TransferRow
}

// Transfers turns the transfer history into its table model.
//
// Rows follow the records order. The table is built from scratch on every
// call: records are always a complete snapshot of the history.
func Transfers(records []dce.TransferRecord) *TransferTable {
	t := &TransferTable{
		Header: []string{"From", "To", "Description", "Amount"},
		Rows:   make([]TransferRow, 0, len(records)),
	}
	for _, r := range records {
		t.Rows = append(t.Rows, TransferRow{
			From:        party(r.FromName, r.From),
			To:          party(r.ToName, r.To),
			Description: r.Reason,
			Amount:      amount(r.Orange, r.Green),
		})
	}
	return t
}

// party prefers the registered name over the raw identity.
func party(name string, id dce.Identity) string {
	if name != "" {
		return name
	}
	return string(id)
}

// amount composes the amount sub-cells: orange first, then green, with a
// "+" only when both are shown. Absent and zero amounts are not shown.
func amount(orange, green *dce.Units) []AmountCell {
	var cells []AmountCell
	hasOrange := orange != nil && *orange != 0
	hasGreen := green != nil && *green != 0
	if hasOrange {
		cells = append(cells, AmountCell{Kind: OrangeCell, Units: *orange})
	}
	if hasGreen {
		if hasOrange {
			cells = append(cells, AmountCell{Kind: PlusCell})
		}
		cells = append(cells, AmountCell{Kind: GreenCell, Units: *green})
	}
	return cells
}
