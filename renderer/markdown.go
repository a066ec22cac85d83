package renderer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/etnz/dce/account"
	md "github.com/nao1215/markdown"
)

// TransfersMarkdown renders the transfer table to markdown.
func TransfersMarkdown(t *TransferTable) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H2("Transfers")

	if t == nil || len(t.Rows) == 0 {
		doc.PlainText("No transfer yet.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: t.Header,
		Rows:   [][]string{},
	}
	for _, row := range t.Rows {
		table.Rows = append(table.Rows, []string{
			escape(row.From),
			escape(row.To),
			escape(row.Description),
			row.AmountText(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// AccountMarkdown renders the account header: name, principal and balances.
func AccountMarkdown(v account.View) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	name := v.DisplayName()
	if name == "" {
		name = "Unregistered"
	}
	doc.H2(name)
	doc.PlainText(fmt.Sprintf("`%s`", v.ID()))
	doc.LF()
	doc.PlainText(fmt.Sprintf("**%s** · **%s**", v.Orange(), v.Green()))
	return doc.String()
}

var newlines = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// escape keeps user provided text from breaking the table layout.
func escape(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return newlines.Replace(s)
}
