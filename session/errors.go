package session

import (
	"fmt"
)

// CredentialsError is returned by Authorize when the credentials file is missing,
// unreadable or not a valid service account key.
type CredentialsError struct {
	Path string
	Err  error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("invalid credentials file '%s' (%v)", e.Path, e.Err)
}

func (e *CredentialsError) Unwrap() error {
	return e.Err
}

// SheetNotFoundError is returned when no spreadsheet with the requested name (or key) is
// visible to the authorised account.
type SheetNotFoundError struct {
	Name    string
	Account string
}

func (e *SheetNotFoundError) Error() string {
	if e.Account != "" {
		return fmt.Sprintf("spreadsheet '%s' not found or not shared with %s", e.Name, e.Account)
	}

	return fmt.Sprintf("spreadsheet '%s' not found", e.Name)
}

// CellNotFoundError is returned by FindCell when no cell matches.
type CellNotFoundError struct {
	Value string
}

func (e *CellNotFoundError) Error() string {
	return fmt.Sprintf("no cell matching '%s'", e.Value)
}

// WriteError wraps a failed append or update.
type WriteError struct {
	Range string
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing to %s (%v)", e.Range, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
