package book

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

var (
	testFirstNames = []string{"jake", "luke"}
	testLastNames  = []string{"smith", "jackson"}
	testEmails     = []string{"jake.smith@mail.com", "luke12jackson@meil.com"}
	testPhones     = []string{"999999999", "123123123"}
	testAddrs      = []string{"pl. Defilad 1, 00-901 Warsaw", "ul. Wiejska 4/6/8, 00-902 Warszawa"}
)

func strPtr(s string) *string { return &s }

func mustContact(t *testing.T, first, last, email, phone string, addr *string) *types.Contact {
	t.Helper()
	c, err := types.NewContact(first, last, email, phone, addr)
	require.NoError(t, err)
	return c
}

func testContacts(t *testing.T) []*types.Contact {
	t.Helper()
	out := make([]*types.Contact, len(testPhones))
	for i := range testPhones {
		out[i] = mustContact(t, testFirstNames[i], testLastNames[i], testEmails[i], testPhones[i], strPtr(testAddrs[i]))
	}
	return out
}

// newTestBook returns a Collection over testContacts stored in a temp dir,
// logging into the returned buffer.
func newTestBook(t *testing.T) (*Collection, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c, err := New(testContacts(t), t.TempDir(), WithLogger(logger))
	require.NoError(t, err)
	return c, &buf
}

// assertIndexed checks that both index sets match the contacts exactly.
func assertIndexed(t *testing.T, c *Collection) {
	t.Helper()
	phones := make(map[string]struct{}, len(c.contacts))
	emails := make(map[string]struct{}, len(c.contacts))
	for _, ct := range c.contacts {
		phones[ct.Phone] = struct{}{}
		emails[ct.Email] = struct{}{}
	}
	assert.Equal(t, phones, c.phones, "phone index out of sync")
	assert.Equal(t, emails, c.emails, "email index out of sync")
}
