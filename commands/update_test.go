package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/uhppoted/uhppoted-app-sheetdb/session"
)

func TestUpdate(t *testing.T) {
	s := demoStore()
	c, options, out := setup(t, s)
	update := Update{command: c, row: 2, col: 3, value: "Seller"}

	if err := update.Execute(context.Background(), options); err != nil {
		t.Fatalf("Unexpected error executing 'update' (%v)", err)
	}

	if expected := "Updated cell (2,3) to 'Seller'\n"; out.String() != expected {
		t.Errorf("Incorrect 'update' output - expected:%q, got:%q", expected, out.String())
	}

	if g := s.Grid("1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", "Sheet1"); g[1][2] != "Seller" {
		t.Errorf("Incorrect cell (2,3) - expected:Seller, got:%v", g[1][2])
	}
}

func TestUpdateOutsideGrid(t *testing.T) {
	c, options, _ := setup(t, demoStore())
	update := Update{command: c, row: 2, col: 30, value: "Seller"}

	err := update.Execute(context.Background(), options)

	var werr *session.WriteError
	if !errors.As(err, &werr) {
		t.Errorf("Expected WriteError, got %v", err)
	}
}

func TestUpdateWithoutRow(t *testing.T) {
	s := demoStore()
	c, options, _ := setup(t, s)
	update := Update{command: c, col: 3, value: "Seller"}

	if err := update.Execute(context.Background(), options); err == nil {
		t.Errorf("Expected error for missing --row")
	}

	if n := s.Calls(); n != 0 {
		t.Errorf("Expected no requests to the store, got %v", n)
	}
}
