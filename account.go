package dce

// Identity is the opaque principal of a user, as issued by the identity
// provider. It is unique per user and immutable once obtained.
type Identity string

// String returns the raw principal.
func (id Identity) String() string { return string(id) }

// Balance holds the two independent balances of an account.
type Balance struct {
	Orange Units `json:"orange"`
	Green  Units `json:"green"`
}

// Account is the snapshot of the logged in user as known by the ledger.
type Account struct {
	ID          Identity `json:"id"`
	DisplayName string   `json:"name"` // empty until the user registers a name
	Balance
}

// Amounts is the pair of amounts moved by a grant or a transfer.
type Amounts struct {
	Orange Units `json:"orange"`
	Green  Units `json:"green"`
}

// IsZero reports whether no unit at all would be moved.
func (a Amounts) IsZero() bool { return a.Orange == 0 && a.Green == 0 }

// TransferRecord is one line of the shared transfer history.
//
// Names are optional: the ledger only fills them for identities that
// registered one. Amounts are optional too, a nil amount means the currency
// was not part of the transfer.
type TransferRecord struct {
	From     Identity `json:"from"`
	FromName string   `json:"from_name,omitempty"`
	To       Identity `json:"to"`
	ToName   string   `json:"to_name,omitempty"`
	Reason   string   `json:"reason"`
	Orange   *Units   `json:"orange,omitempty"`
	Green    *Units   `json:"green,omitempty"`
}
