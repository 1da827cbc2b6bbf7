package book

import (
	"fmt"
	"slices"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// AddContact appends a copy of ct and indexes its phone and email.
// Returns *types.DuplicatePhoneError if the phone is indexed, otherwise
// *types.DuplicateEmailError if the email is indexed.
func (c *Collection) AddContact(ct *types.Contact) error {
	if ct == nil {
		return fmt.Errorf("%w: nil contact", types.ErrValidation)
	}
	if _, ok := c.phones[ct.Phone]; ok {
		rejectedDuplicatePhone.Inc()
		return &types.DuplicatePhoneError{Contact: ct}
	}
	if _, ok := c.emails[ct.Email]; ok {
		rejectedDuplicateEmail.Inc()
		return &types.DuplicateEmailError{Contact: ct}
	}

	c.contacts = append(c.contacts, ct.Clone())
	c.phones[ct.Phone] = struct{}{}
	c.emails[ct.Email] = struct{}{}

	addedTotal.Inc()
	c.logger.Debug("contact added", "phone", ct.Phone, "email", ct.Email)
	return nil
}

// FindContact returns a copy of the contact with the given phone. When phone
// is empty it looks up by email instead. Returns nil if nothing matches.
// Returns ErrNoSelector if both phone and email are empty.
func (c *Collection) FindContact(phone, email string) (*types.Contact, error) {
	if phone == "" && email == "" {
		return nil, types.ErrNoSelector
	}

	var found *types.Contact
	if phone != "" {
		found = c.findByPhone(phone)
	} else {
		found = c.findByEmail(email)
	}
	if found == nil {
		return nil, nil
	}
	return found.Clone(), nil
}

func (c *Collection) findByPhone(phone string) *types.Contact {
	if _, ok := c.phones[phone]; !ok {
		return nil
	}
	for _, ct := range c.contacts {
		if ct.Phone == phone {
			return ct
		}
	}
	return nil
}

func (c *Collection) findByEmail(email string) *types.Contact {
	if _, ok := c.emails[email]; !ok {
		return nil
	}
	for _, ct := range c.contacts {
		if ct.Email == email {
			return ct
		}
	}
	return nil
}

// RemoveContact removes the contact with the given phone. If phone is empty
// or matches nothing, the contact with the given email is removed instead.
// Removing a contact that does not exist is a no-op.
// Returns ErrNoSelector if both phone and email are empty.
func (c *Collection) RemoveContact(phone, email string) error {
	if phone == "" && email == "" {
		return types.ErrNoSelector
	}

	if phone != "" {
		if ct := c.findByPhone(phone); ct != nil {
			c.remove(ct)
			return nil
		}
	}
	if email != "" {
		if ct := c.findByEmail(email); ct != nil {
			c.remove(ct)
		}
	}
	return nil
}

// remove drops ct from the slice and both indexes. ct must be a member.
func (c *Collection) remove(ct *types.Contact) {
	i := slices.Index(c.contacts, ct)
	if i < 0 {
		return
	}
	c.contacts = slices.Delete(c.contacts, i, i+1)
	delete(c.phones, ct.Phone)
	delete(c.emails, ct.Email)

	removedTotal.Inc()
	c.logger.Debug("contact removed", "phone", ct.Phone, "email", ct.Email)
}

// EditContact applies updates to the contact with the given phone, in sorted
// field order. first_name, last_name and address are assigned directly; an
// empty address clears it. email and phone move the index entry before the
// field changes. New values are not checked against the email and phone
// patterns.
//
// Unrecognized field names are skipped, logged at warn level, and returned.
// Returns ErrContactNotFound if no contact has the phone, and
// *types.DuplicatePhoneError or *types.DuplicateEmailError if a new phone or
// email belongs to another contact. On error the contact is unchanged.
func (c *Collection) EditContact(phone string, updates types.Updates) ([]string, error) {
	if phone == "" {
		return nil, types.ErrNoSelector
	}
	target := c.findByPhone(phone)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", types.ErrContactNotFound, phone)
	}
	if err := c.checkEditCollisions(target, updates); err != nil {
		return nil, err
	}

	var skipped []string
	for _, field := range updates.Keys() {
		value := updates[field]
		switch field {
		case types.FieldFirstName:
			target.FirstName = value
		case types.FieldLastName:
			target.LastName = value
		case types.FieldEmail:
			c.swapEmail(target, value)
			target.Email = value
		case types.FieldPhone:
			c.swapPhone(target, value)
			target.Phone = value
		case types.FieldAddress:
			if value == "" {
				target.Address = nil
			} else {
				target.Address = &value
			}
		default:
			skipped = append(skipped, field)
			c.logger.Warn("invalid contact attribute skipped", "field", field, "phone", phone)
		}
	}

	if applied := len(updates) - len(skipped); applied > 0 {
		editedTotal.Inc()
		c.logger.Debug("contact edited", "phone", phone, "fields", applied)
	}
	return skipped, nil
}

// checkEditCollisions rejects a new phone or email already held by a
// contact other than target.
func (c *Collection) checkEditCollisions(target *types.Contact, updates types.Updates) error {
	proposed := target.Clone()
	newPhone, hasPhone := updates[types.FieldPhone]
	newEmail, hasEmail := updates[types.FieldEmail]
	if hasPhone {
		proposed.Phone = newPhone
	}
	if hasEmail {
		proposed.Email = newEmail
	}

	if hasPhone && newPhone != target.Phone {
		if _, ok := c.phones[newPhone]; ok {
			rejectedDuplicatePhone.Inc()
			return &types.DuplicatePhoneError{Contact: proposed}
		}
	}
	if hasEmail && newEmail != target.Email {
		if _, ok := c.emails[newEmail]; ok {
			rejectedDuplicateEmail.Inc()
			return &types.DuplicateEmailError{Contact: proposed}
		}
	}
	return nil
}

func (c *Collection) swapPhone(ct *types.Contact, phone string) {
	delete(c.phones, ct.Phone)
	c.phones[phone] = struct{}{}
}

func (c *Collection) swapEmail(ct *types.Contact, email string) {
	delete(c.emails, ct.Email)
	c.emails[email] = struct{}{}
}
