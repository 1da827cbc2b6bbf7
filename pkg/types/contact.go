package types

import (
	"fmt"
	"hash/fnv"
	"regexp"
)

// Contact field names. They are the keys of the contact mapping, the JSON
// keys in the snapshot, and the field names accepted by Updates.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
)

// ContactFields lists the contact field names in canonical order.
var ContactFields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldPhone,
	FieldAddress,
}

// Validation patterns. An email needs an @ followed somewhere by a dot; a
// phone needs nine leading digits and may continue with anything.
var (
	emailPattern = regexp.MustCompile(`^.*@.*\..*`)
	phonePattern = regexp.MustCompile(`^[0-9]{9}`)
)

// Contact is a single person record.
//
// Fields are validated only by NewContact and ContactFromMap. A Book may later
// assign new values through EditContact without re-validating them.
type Contact struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   *string // Optional; nil when absent.
}

// NewContact validates email and phone and returns a new Contact.
// Returns an error wrapping ErrInvalidEmail or ErrInvalidPhone.
func NewContact(first, last, email, phone string, address *string) (*Contact, error) {
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	if !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	c := &Contact{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Phone:     phone,
	}
	if address != nil {
		addr := *address
		c.Address = &addr
	}
	return c, nil
}

// ContactFromMap builds a Contact from a mapping holding exactly the five
// contact field names. The address value may be nil; every other value must
// be a string. Field values are validated by NewContact.
func ContactFromMap(m map[string]any) (*Contact, error) {
	if len(m) != len(ContactFields) {
		return nil, fmt.Errorf("%w: got %d keys, want %v", ErrInvalidKeys, len(m), ContactFields)
	}
	for _, key := range ContactFields {
		if _, ok := m[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrInvalidKeys, key)
		}
	}

	values := make(map[string]string, len(ContactFields))
	for _, key := range ContactFields[:4] {
		s, ok := m[key].(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T", ErrInvalidValue, key, m[key])
		}
		values[key] = s
	}

	var address *string
	switch v := m[FieldAddress].(type) {
	case nil:
	case string:
		address = &v
	default:
		return nil, fmt.Errorf("%w: %s is %T", ErrInvalidValue, FieldAddress, v)
	}

	return NewContact(
		values[FieldFirstName],
		values[FieldLastName],
		values[FieldEmail],
		values[FieldPhone],
		address,
	)
}

// ToMap returns the contact as a mapping keyed by the five field names.
// The address value is nil when the contact has no address.
func (c *Contact) ToMap() map[string]any {
	var address any
	if c.Address != nil {
		address = *c.Address
	}
	return map[string]any{
		FieldFirstName: c.FirstName,
		FieldLastName:  c.LastName,
		FieldEmail:     c.Email,
		FieldPhone:     c.Phone,
		FieldAddress:   address,
	}
}

// Equal reports whether c and other share a phone or an email.
//
// Equal is reflexive and symmetric but not transitive: A and B may share a
// phone and B and C an email while A and C share nothing. Equal contacts may
// also have different Hash values. Use PhoneKey or EmailKey to key maps.
func (c *Contact) Equal(other *Contact) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.Phone == other.Phone || c.Email == other.Email
}

// Hash returns a hash of every field of the contact.
func (c *Contact) Hash() uint64 {
	h := fnv.New64a()
	for _, s := range []string{c.FirstName, c.LastName, c.Email, c.Phone} {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	if c.Address != nil {
		h.Write([]byte{1})
		h.Write([]byte(*c.Address))
	} else {
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// PhoneKey returns the key under which the contact is indexed by phone.
func (c *Contact) PhoneKey() string { return c.Phone }

// EmailKey returns the key under which the contact is indexed by email.
func (c *Contact) EmailKey() string { return c.Email }

// Clone returns a deep copy of the contact.
func (c *Contact) Clone() *Contact {
	cp := *c
	if c.Address != nil {
		addr := *c.Address
		cp.Address = &addr
	}
	return &cp
}

// String returns a compact one-line form for logs and error messages.
func (c *Contact) String() string {
	addr := "<nil>"
	if c.Address != nil {
		addr = fmt.Sprintf("%q", *c.Address)
	}
	return fmt.Sprintf("Contact(first=%q, last=%q, email=%q, phone=%q, address=%s)",
		c.FirstName, c.LastName, c.Email, c.Phone, addr)
}
