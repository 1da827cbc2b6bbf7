package types

// Book defines the contact collection: an ordered set of contacts indexed by
// phone and by email, bound to a snapshot file.
//
// After every operation no two contacts share a phone and no two share an
// email. A Book is not safe for concurrent use.
type Book interface {
	// AddContact appends c to the book.
	// Returns *DuplicatePhoneError if the phone is taken, otherwise
	// *DuplicateEmailError if the email is taken. Phone is checked first.
	AddContact(c *Contact) error

	// FindContact returns a copy of the contact with the given phone, or
	// with the given email when phone is empty. Returns nil when no contact
	// matches. Returns ErrNoSelector when both are empty.
	FindContact(phone, email string) (*Contact, error)

	// RemoveContact removes the contact with the given phone. If phone is
	// empty or not found, the contact with the given email is removed
	// instead. Removing a missing contact is not an error.
	// Returns ErrNoSelector when both are empty.
	RemoveContact(phone, email string) error

	// EditContact applies updates to the contact with the given phone and
	// returns the names of unrecognized fields it skipped.
	// Returns ErrContactNotFound if no contact has that phone.
	EditContact(phone string, updates Updates) (skipped []string, err error)

	// Contacts returns copies of all contacts in insertion order.
	Contacts() []*Contact

	// Len returns the number of contacts.
	Len() int

	// StorePath returns the path of the snapshot file.
	StorePath() string

	// EncodeToSnapshot returns the book as a Snapshot.
	EncodeToSnapshot() Snapshot

	// SaveToFile writes the snapshot to StorePath, replacing the file.
	SaveToFile() error
}
