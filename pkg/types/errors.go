package types

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this module wraps one of these, so
// callers classify failures with errors.Is.
var (
	ErrValidation = errors.New("validation error")
	ErrConfig     = errors.New("configuration error")
)

// Contact validation errors.
var (
	ErrInvalidEmail = fmt.Errorf("%w: invalid email", ErrValidation)
	ErrInvalidPhone = fmt.Errorf("%w: invalid phone", ErrValidation)
	ErrInvalidKeys  = fmt.Errorf("%w: contact mapping has wrong keys", ErrValidation)
	ErrInvalidValue = fmt.Errorf("%w: contact mapping value must be a string", ErrValidation)
)

// Book operation errors.
var (
	ErrNoSelector      = fmt.Errorf("%w: provide at least a phone number or an email", ErrValidation)
	ErrContactNotFound = fmt.Errorf("%w: no contact with that phone", ErrValidation)
	ErrDuplicatePhones = fmt.Errorf("%w: duplicate phone numbers in contacts", ErrValidation)
	ErrDuplicateEmails = fmt.Errorf("%w: duplicate emails in contacts", ErrValidation)
)

// Duplicate errors raised when a single contact collides with the book.
var (
	ErrDuplicatePhone = errors.New("phone already exists")
	ErrDuplicateEmail = errors.New("email already exists")
)

// Store and snapshot errors.
var (
	ErrStoreDirMissing    = fmt.Errorf("%w: store directory does not exist", ErrConfig)
	ErrStoreNotDir        = fmt.Errorf("%w: store path is not a directory", ErrConfig)
	ErrSnapshotMissing    = fmt.Errorf("%w: snapshot file does not exist", ErrConfig)
	ErrSnapshotNotFile    = fmt.Errorf("%w: snapshot path is not a regular file", ErrConfig)
	ErrSnapshotExt        = fmt.Errorf("%w: snapshot file is not a JSON file", ErrConfig)
	ErrSnapshotMalformed  = fmt.Errorf("%w: snapshot is not a JSON object", ErrConfig)
	ErrSnapshotNoContacts = fmt.Errorf("%w: no %s in the snapshot", ErrConfig, SnapshotKeyContacts)
	ErrSnapshotNoStore    = fmt.Errorf("%w: no %s in the snapshot", ErrConfig, SnapshotKeyStorePath)
)

// Config validation errors.
var (
	ErrDataDirEmpty     = fmt.Errorf("%w: data directory must not be empty", ErrConfig)
	ErrLogLevelUnknown  = fmt.Errorf("%w: unknown log level", ErrConfig)
	ErrLogFormatUnknown = fmt.Errorf("%w: unknown log format", ErrConfig)
)

// DuplicatePhoneError reports a contact whose phone is already held by
// another contact in the book.
type DuplicatePhoneError struct {
	Contact *Contact
}

func (e *DuplicatePhoneError) Error() string {
	if e.Contact == nil {
		return ErrDuplicatePhone.Error()
	}
	return fmt.Sprintf("phone %s already exists", e.Contact.Phone)
}

func (e *DuplicatePhoneError) Unwrap() error { return ErrDuplicatePhone }

// DuplicateEmailError reports a contact whose email is already held by
// another contact in the book.
type DuplicateEmailError struct {
	Contact *Contact
}

func (e *DuplicateEmailError) Error() string {
	if e.Contact == nil {
		return ErrDuplicateEmail.Error()
	}
	return fmt.Sprintf("email %s already exists", e.Contact.Email)
}

func (e *DuplicateEmailError) Unwrap() error { return ErrDuplicateEmail }
