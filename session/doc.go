/*
Package session wraps a service account session against Google Sheets.

A session resolves a spreadsheet by name (via Google Drive), key or URL and exposes
read-all, append-row, find-cell and update-cell operations on a worksheet. Nothing is
cached locally - each operation is a single attempt against the Sheets API and failures
are returned as CredentialsError, SheetNotFoundError, CellNotFoundError or WriteError.
*/
package session
