package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/waylonwalker/senzu/internal/errors"
	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/resource"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(core *nav.Core) *cli.App {
	app := &cli.App{
		Name:    "senzu",
		Usage:   "Dragon Ball Z terminal browser",
		Version: Version,
		Commands: []*cli.Command{
			listCmd(core),
			showCmd(core),
			transformationsCmd(core),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// refOutput is the JSON form of a resource reference.
type refOutput struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
}

type summaryOutput struct {
	Kind   string `json:"kind"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

type listOutput struct {
	Kind       string          `json:"kind"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
	Items      []summaryOutput `json:"items"`
}

type fieldOutput struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type recordOutput struct {
	Kind       string        `json:"kind"`
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Translated bool          `json:"translated"`
	Fields     []fieldOutput `json:"fields"`
	Relations  []refOutput   `json:"relations,omitempty"`
}

// listCmd creates the list command.
func listCmd(core *nav.Core) *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List one page of a resource category",
		ArgsUsage: "<kind>",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Value: 0, Usage: "0-based page index"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("kind argument is required (character, transformation, planet, saga, episode)"))
			}
			kind, ok := resource.ParseKind(c.Args().First())
			if !ok {
				return outputError(errors.NewInvalidRequest("unknown kind: " + c.Args().First()))
			}
			page := c.Int("page")
			if page < 0 {
				return outputError(errors.NewInvalidRequest("page must be >= 0"))
			}

			state := core.Resolve(c.Context, nav.ListView{Kind: kind, Page: page})
			if state.State != nav.StateReady {
				return outputError(state.Err)
			}
			return outputJSON(pageOutput(state.Page))
		},
	}
}

// showCmd creates the show command.
func showCmd(core *nav.Core) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show the full detail record for one resource",
		ArgsUsage: "<kind> <id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidRequest("usage: show <kind> <id>"))
			}
			kind, ok := resource.ParseKind(c.Args().Get(0))
			if !ok {
				return outputError(errors.NewInvalidRequest("unknown kind: " + c.Args().Get(0)))
			}
			id, err := strconv.Atoi(c.Args().Get(1))
			if err != nil || id <= 0 {
				return outputError(errors.NewInvalidRequest("id must be a positive integer"))
			}

			state := core.Resolve(c.Context, nav.DetailView{Ref: resource.Ref{Kind: kind, ID: id}})
			if state.State != nav.StateReady {
				return outputError(state.Err)
			}
			return outputJSON(detailOutput(state.Record))
		},
	}
}

// transformationsCmd creates the transformations command.
func transformationsCmd(core *nav.Core) *cli.Command {
	return &cli.Command{
		Name:      "transformations",
		Usage:     "List the transformations of one character",
		ArgsUsage: "<character-id>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("character-id argument is required"))
			}
			id, err := strconv.Atoi(c.Args().First())
			if err != nil || id <= 0 {
				return outputError(errors.NewInvalidRequest("character-id must be a positive integer"))
			}

			owner := resource.Ref{Kind: resource.Character, ID: id}
			state := core.Resolve(c.Context, nav.ListView{Kind: resource.Transformation, Page: 0, Owner: &owner})
			if state.State != nav.StateReady {
				return outputError(state.Err)
			}
			return outputJSON(pageOutput(state.Page))
		},
	}
}

func pageOutput(page *resource.ListPage) listOutput {
	items := make([]summaryOutput, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, summaryOutput{
			Kind:   item.Ref.Kind.String(),
			ID:     item.Ref.ID,
			Name:   item.Name,
			Detail: item.Detail,
		})
	}
	return listOutput{
		Kind:       page.Kind.String(),
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Items:      items,
	}
}

func detailOutput(rec *resource.Record) recordOutput {
	fields := make([]fieldOutput, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		fields = append(fields, fieldOutput{Label: f.Label, Value: f.Value})
	}
	var relations []refOutput
	for _, rel := range rec.Relations {
		relations = append(relations, refOutput{Kind: rel.Kind.String(), ID: rel.ID})
	}
	return recordOutput{
		Kind:       rec.Ref.Kind.String(),
		ID:         rec.Ref.ID,
		Name:       rec.Name,
		Translated: rec.Translated,
		Fields:     fields,
		Relations:  relations,
	}
}

// Helper functions

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.SenzuError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}
