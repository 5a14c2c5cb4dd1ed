// Package models defines the account record, the raw form input it is built
// from, and the pure helpers (label parsing, validation) around them.
package models

// AccountType classifies how an account authenticates.
type AccountType string

// Wire values match documents written by earlier releases of the editor.
const (
	// AccountTypeLDAP accounts are checked by an external directory; no
	// password is ever stored for them.
	AccountTypeLDAP AccountType = "LDAP"
	// AccountTypeLocal accounts keep their password in this application.
	AccountTypeLocal AccountType = "Локальная"
)

// Known reports whether t is one of the supported account types.
func (t AccountType) Known() bool {
	return t == AccountTypeLDAP || t == AccountTypeLocal
}

// LabelTag is one fragment of a semicolon-delimited label.
type LabelTag struct {
	Text string `json:"text"`
}

// AccountRecord is the persisted account entry.
//
// Password is nil exactly when Type is not AccountTypeLocal.
type AccountRecord struct {
	ID       string      `json:"id"`
	Label    []LabelTag  `json:"label"`
	Type     AccountType `json:"type"`
	Login    string      `json:"login"`
	Password *string     `json:"password"`
}

// NewEmptyRecord returns the record shown for a freshly added row.
func NewEmptyRecord(id string) AccountRecord {
	return AccountRecord{
		ID:    id,
		Label: []LabelTag{},
		Type:  AccountTypeLDAP,
	}
}

// FormInput converts r back into raw form values for editing.
func (r AccountRecord) FormInput() AccountFormInput {
	in := AccountFormInput{
		LabelRaw: JoinLabel(r.Label),
		Type:     r.Type,
		Login:    r.Login,
	}
	if r.Password != nil {
		in.Password = *r.Password
	}
	return in
}

// Clone returns a deep copy of r.
func (r AccountRecord) Clone() AccountRecord {
	c := r
	c.Label = append([]LabelTag{}, r.Label...)
	if r.Password != nil {
		p := *r.Password
		c.Password = &p
	}
	return c
}

// AccountFormInput holds raw, unvalidated form values. It is never persisted.
type AccountFormInput struct {
	LabelRaw string
	Type     AccountType
	Login    string
	Password string
}
