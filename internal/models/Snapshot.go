package models

// Snapshot is the whole persisted state. Contacts are stored under the
// "clients" key for compatibility with existing data files.
type Snapshot struct {
	Contacts []Contact `json:"clients"`
	Deals    []Deal    `json:"deals"`
}

// Clone returns a snapshot that shares no slice memory with s.
func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Contacts: CloneContacts(s.Contacts),
		Deals:    CloneDeals(s.Deals),
	}
}

func CloneContacts(contacts []Contact) []Contact {
	out := make([]Contact, len(contacts))
	copy(out, contacts)
	return out
}

func CloneDeals(deals []Deal) []Deal {
	out := make([]Deal, len(deals))
	copy(out, deals)
	return out
}
