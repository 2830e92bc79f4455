package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"testing"

	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/resource"
)

// stubClient serves canned pages and records without network access.
type stubClient struct{}

func (stubClient) FetchList(_ context.Context, kind resource.Kind, page int) (*resource.ListPage, error) {
	return &resource.ListPage{
		Kind: kind,
		Page: page,
		Items: []resource.Summary{
			{Ref: resource.Ref{Kind: kind, ID: 1}, Name: "Goku", Detail: "Saiyan"},
			{Ref: resource.Ref{Kind: kind, ID: 2}, Name: "Vegeta", Detail: "Saiyan"},
		},
		TotalItems: 2,
		TotalPages: 3,
	}, nil
}

func (stubClient) FetchDetail(_ context.Context, ref resource.Ref) (*resource.Record, error) {
	return &resource.Record{
		Ref:  ref,
		Name: "Goku",
		Fields: []resource.Field{
			{Label: "Race", Value: "Saiyan"},
			{Label: "Ki", Value: "60,000,000"},
		},
		Relations: []resource.Ref{{Kind: resource.Transformation, ID: 4}},
	}, nil
}

func (stubClient) FetchTransformations(_ context.Context, characterID int) (*resource.ListPage, error) {
	return &resource.ListPage{
		Kind: resource.Transformation,
		Items: []resource.Summary{
			{Ref: resource.Ref{Kind: resource.Transformation, ID: 4}, Name: "Goku SSJ", Detail: "Ki: 3 Billion"},
		},
		TotalItems: 1,
		TotalPages: 1,
	}, nil
}

func testApp() *nav.Core {
	return nav.New(stubClient{}, nav.Options{})
}

// runCapture runs the app with args, capturing stdout.
func runCapture(t *testing.T, core *nav.Core, args []string) (string, error) {
	t.Helper()

	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	app := newCLIApp(core)
	err := app.Run(args)

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	return buf.String(), err
}

func TestListCommand(t *testing.T) {
	core := testApp()

	out, err := runCapture(t, core, []string{"senzu", "list", "character"})
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}

	var output listOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if output.Kind != "character" || len(output.Items) != 2 {
		t.Errorf("output = %+v, want 2 character items", output)
	}
	if output.TotalPages != 3 {
		t.Errorf("total_pages = %d, want 3", output.TotalPages)
	}
}

func TestListCommand_Alias(t *testing.T) {
	core := testApp()

	out, err := runCapture(t, core, []string{"senzu", "list", "s", "--page", "1"})
	if err != nil {
		t.Fatalf("list command failed: %v", err)
	}

	var output listOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if output.Kind != "saga" || output.Page != 1 {
		t.Errorf("output = %+v, want saga page 1", output)
	}
}

func TestListCommand_UnknownKind(t *testing.T) {
	core := testApp()

	_, err := runCapture(t, core, []string{"senzu", "list", "dragon"})
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestListCommand_MissingKind(t *testing.T) {
	core := testApp()

	_, err := runCapture(t, core, []string{"senzu", "list"})
	if err == nil {
		t.Fatal("expected error for missing kind argument")
	}
}

func TestShowCommand(t *testing.T) {
	core := testApp()

	out, err := runCapture(t, core, []string{"senzu", "show", "character", "1"})
	if err != nil {
		t.Fatalf("show command failed: %v", err)
	}

	var output recordOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v\nOutput: %s", err, out)
	}
	if output.Name != "Goku" || output.Kind != "character" || output.ID != 1 {
		t.Errorf("output = %+v, want character/1 Goku", output)
	}
	if len(output.Relations) != 1 {
		t.Errorf("relations = %+v, want one transformation", output.Relations)
	}
}

func TestShowCommand_InvalidID(t *testing.T) {
	core := testApp()

	for _, id := range []string{"zero", "0", "-3"} {
		if _, err := runCapture(t, core, []string{"senzu", "show", "character", id}); err == nil {
			t.Errorf("expected error for id %q", id)
		}
	}
}

func TestTransformationsCommand(t *testing.T) {
	core := testApp()

	out, err := runCapture(t, core, []string{"senzu", "transformations", "1"})
	if err != nil {
		t.Fatalf("transformations command failed: %v", err)
	}

	var output listOutput
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if output.Kind != "transformation" || len(output.Items) != 1 {
		t.Errorf("output = %+v, want one transformation", output)
	}
	if output.Items[0].Name != "Goku SSJ" {
		t.Errorf("first item = %q, want Goku SSJ", output.Items[0].Name)
	}
}

func TestTransformationsCommand_InvalidID(t *testing.T) {
	core := testApp()

	if _, err := runCapture(t, core, []string{"senzu", "transformations", "abc"}); err == nil {
		t.Error("expected error for non-numeric character-id")
	}
}

func TestIsCLIMode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: []string{"senzu"}, want: false},
		{name: "list subcommand", args: []string{"senzu", "list", "character"}, want: true},
		{name: "show subcommand", args: []string{"senzu", "show", "c", "1"}, want: true},
		{name: "help flag", args: []string{"senzu", "--help"}, want: true},
		{name: "version flag", args: []string{"senzu", "-v"}, want: true},
		{name: "unknown arg", args: []string{"senzu", "bogus"}, want: false},
	}

	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			if got := isCLIMode(); got != tt.want {
				t.Errorf("isCLIMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
