package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/waylonwalker/senzu/internal/errors"
	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/resource"
)

// Handlers holds the navigation core MCP tools resolve through. Tool calls
// share the core's resource cache, so repeated lookups of the same page or
// record cost one upstream request.
type Handlers struct {
	core *nav.Core
}

// NewHandlers creates handlers backed by the given core.
func NewHandlers(core *nav.Core) *Handlers {
	return &Handlers{core: core}
}

type listRequest struct {
	Kind string `json:"kind"`
	Page int    `json:"page"`
}

type showRequest struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
}

type transformationsRequest struct {
	CharacterID int `json:"character_id"`
}

// refJSON is the wire form of a resource.Ref.
type refJSON struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
}

type summaryJSON struct {
	Kind   string `json:"kind"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

type listResponse struct {
	Kind       string        `json:"kind"`
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	TotalItems int           `json:"total_items"`
	Items      []summaryJSON `json:"items"`
}

type fieldJSON struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type recordResponse struct {
	Kind       string      `json:"kind"`
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	Translated bool        `json:"translated"`
	Fields     []fieldJSON `json:"fields"`
	Relations  []refJSON   `json:"relations,omitempty"`
}

// HandleList serves the dbz_list tool.
func (h *Handlers) HandleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[listRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	kind, ok := resource.ParseKind(args.Kind)
	if !ok {
		return errorResult(errors.NewInvalidRequest("unknown kind: " + args.Kind)), nil
	}
	if args.Page < 0 {
		return errorResult(errors.NewInvalidRequest("page must be >= 0")), nil
	}

	state := h.core.Resolve(ctx, nav.ListView{Kind: kind, Page: args.Page})
	if state.State != nav.StateReady {
		return errorResult(state.Err), nil
	}
	return successResult(listToJSON(state.Page))
}

// HandleShow serves the dbz_show tool.
func (h *Handlers) HandleShow(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[showRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	kind, ok := resource.ParseKind(args.Kind)
	if !ok {
		return errorResult(errors.NewInvalidRequest("unknown kind: " + args.Kind)), nil
	}
	if args.ID <= 0 {
		return errorResult(errors.NewInvalidRequest("id must be positive")), nil
	}

	state := h.core.Resolve(ctx, nav.DetailView{Ref: resource.Ref{Kind: kind, ID: args.ID}})
	if state.State != nav.StateReady {
		return errorResult(state.Err), nil
	}
	return successResult(recordToJSON(state.Record))
}

// HandleTransformations serves the dbz_transformations tool.
func (h *Handlers) HandleTransformations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, err := decode[transformationsRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if args.CharacterID <= 0 {
		return errorResult(errors.NewInvalidRequest("character_id must be positive")), nil
	}

	owner := resource.Ref{Kind: resource.Character, ID: args.CharacterID}
	state := h.core.Resolve(ctx, nav.ListView{Kind: resource.Transformation, Page: 0, Owner: &owner})
	if state.State != nav.StateReady {
		return errorResult(state.Err), nil
	}
	return successResult(listToJSON(state.Page))
}

func listToJSON(page *resource.ListPage) listResponse {
	items := make([]summaryJSON, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, summaryJSON{
			Kind:   item.Ref.Kind.String(),
			ID:     item.Ref.ID,
			Name:   item.Name,
			Detail: item.Detail,
		})
	}
	return listResponse{
		Kind:       page.Kind.String(),
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		Items:      items,
	}
}

func recordToJSON(rec *resource.Record) recordResponse {
	fields := make([]fieldJSON, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		fields = append(fields, fieldJSON{Label: f.Label, Value: f.Value})
	}
	var relations []refJSON
	for _, rel := range rec.Relations {
		relations = append(relations, refJSON{Kind: rel.Kind.String(), ID: rel.ID})
	}
	return recordResponse{
		Kind:       rec.Ref.Kind.String(),
		ID:         rec.Ref.ID,
		Name:       rec.Name,
		Translated: rec.Translated,
		Fields:     fields,
		Relations:  relations,
	}
}

// errorResult creates an MCP error result with a structured payload.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.SenzuError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
