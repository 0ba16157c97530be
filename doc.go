// Copyright 2023 uhppoted@twyst.co.za. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetdb uses a Google Sheets worksheet as a simple record store, authorised with a
service account.

sheetdb can be used as a library (package session) or from the command line. The command
line supports the following commands:

  - authorise, to verify the service account credentials and spreadsheet access
  - demo, to read, append, search and update a worksheet in one run
  - read, to display all records of a worksheet
  - get, to download a Google Sheets worksheet as a TSV file
  - put, to append the rows of a TSV file to a Google Sheets worksheet
  - append, to append a single row
  - find, to locate the first cell with a value
  - update, to overwrite a single cell
*/
package sheetdb
