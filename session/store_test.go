package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uhppoted/uhppoted-app-sheetdb/internal/sheetstest"
)

type store = sheetstest.Store
type document = sheetstest.Document
type worksheet = sheetstest.Worksheet

var newStore = sheetstest.NewStore

// newTestSession starts the fake store and returns a session pointed at it.
func newTestSession(t *testing.T, s *store) *Session {
	t.Helper()

	srv := sheetstest.NewServer(t, s)

	session, err := NewSession(context.Background(), srv.Options()...)
	require.NoError(t, err)

	session.email = "demo@example.iam.gserviceaccount.com"

	return session
}
