package commands

import (
	"context"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	c, options, out := setup(t, demoStore())
	read := Read{command: c}

	if err := read.Execute(context.Background(), options); err != nil {
		t.Fatalf("Unexpected error executing 'read' (%v)", err)
	}

	if expected := "1    map[Email:rahul@gmail.com Name:Rahul Role:Buyer]"; strings.TrimSpace(out.String()) != expected {
		t.Errorf("Incorrect 'read' output - expected:%q, got:%q", expected, out.String())
	}
}
