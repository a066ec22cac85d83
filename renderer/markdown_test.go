package renderer

import (
	"testing"

	"github.com/etnz/dce"
	"github.com/etnz/dce/account"
	"github.com/stretchr/testify/assert"
)

func TestTransfersMarkdown(t *testing.T) {
	table := Transfers([]dce.TransferRecord{
		{From: "abc123", To: "xyz789", ToName: "Bob", Reason: "gift | thanks", Orange: dce.U(3), Green: dce.U(7)},
	})

	got := TransfersMarkdown(table)

	assert.Contains(t, got, "## Transfers")
	assert.Contains(t, got, "abc123")
	assert.Contains(t, got, "Bob")
	assert.Contains(t, got, `gift \| thanks`)
	assert.Contains(t, got, "3 🟠 + 7 🟢")
}

func TestTransfersMarkdown_Empty(t *testing.T) {
	assert.Contains(t, TransfersMarkdown(Transfers(nil)), "No transfer yet.")
	assert.Contains(t, TransfersMarkdown(nil), "No transfer yet.")
}

func TestAccountMarkdown(t *testing.T) {
	testCases := []struct {
		name string
		view account.View
		want []string
	}{
		{
			name: "not loaded",
			view: account.View{},
			want: []string{"## ..", "`..`", "**.. 🟠**"},
		},
		{
			name: "unregistered",
			view: account.View{Loaded: true, Account: dce.Account{ID: "abc123"}},
			want: []string{"## Unregistered", "`abc123`", "**0 🟠** · **0 🟢**"},
		},
		{
			name: "registered",
			view: account.View{Loaded: true, Account: dce.Account{ID: "abc123", DisplayName: "Alice", Balance: dce.Balance{Orange: 1250, Green: 7}}},
			want: []string{"## Alice", "**1,250 🟠** · **7 🟢**"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AccountMarkdown(tc.view)
			for _, w := range tc.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestEscape(t *testing.T) {
	testCases := []struct {
		input, want string
	}{
		{input: "a|b", want: `a\|b`},
		{input: "line\nbreak", want: "line break"},
		{input: "line\r\nbreak", want: "line break"},
		{input: "line\rbreak", want: "line break"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, escape(tc.input), "escape(%q)", tc.input)
	}
}
