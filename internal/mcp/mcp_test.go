package mcp

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/waylonwalker/senzu/internal/config"
	"github.com/waylonwalker/senzu/internal/errors"
	"github.com/waylonwalker/senzu/internal/nav"
	"github.com/waylonwalker/senzu/internal/resource"
)

// stubClient serves canned pages and records, counting upstream calls so
// tests can assert the core's cache is shared across tool calls.
type stubClient struct {
	mu              sync.Mutex
	listCalls       int
	detailCalls     int
	transformsCalls int

	detailErr error
}

func (c *stubClient) FetchList(_ context.Context, kind resource.Kind, page int) (*resource.ListPage, error) {
	c.mu.Lock()
	c.listCalls++
	c.mu.Unlock()
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

func (c *stubClient) FetchDetail(_ context.Context, ref resource.Ref) (*resource.Record, error) {
	c.mu.Lock()
	c.detailCalls++
	err := c.detailErr
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &resource.Record{
		Ref:  ref,
		Name: "Goku",
		Fields: []resource.Field{
			{Label: "Race", Value: "Saiyan"},
			{Label: "Description", Value: "El Saiyan criado en la Tierra"},
		},
		Relations: []resource.Ref{{Kind: resource.Transformation, ID: 4}},
	}, nil
}

func (c *stubClient) FetchTransformations(_ context.Context, characterID int) (*resource.ListPage, error) {
	c.mu.Lock()
	c.transformsCalls++
	c.mu.Unlock()
	return &resource.ListPage{
		Kind: resource.Transformation,
		Items: []resource.Summary{
			{Ref: resource.Ref{Kind: resource.Transformation, ID: 4}, Name: "Goku SSJ", Detail: "Ki: 3 Billion"},
		},
		TotalItems: 1,
		TotalPages: 1,
	}, nil
}

func testHandlers() (*Handlers, *stubClient) {
	client := &stubClient{}
	core := nav.New(client, nav.Options{})
	return NewHandlers(core), client
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

func resultPayload(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), out); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
}

func TestHandleList(t *testing.T) {
	h, client := testHandlers()

	req := makeRequest(map[string]any{"kind": "character", "page": 0})
	result, err := h.HandleList(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleList() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("HandleList() returned error result: %v", result.Content)
	}

	var out listResponse
	resultPayload(t, result, &out)
	if out.Kind != "character" || out.TotalPages != 3 || len(out.Items) != 2 {
		t.Errorf("list response = %+v, want 2 character items over 3 pages", out)
	}
	if out.Items[0].Name != "Goku" {
		t.Errorf("first item = %q, want Goku", out.Items[0].Name)
	}

	// Same page again comes from the cache
	if _, err := h.HandleList(context.Background(), req); err != nil {
		t.Fatalf("second HandleList() error = %v", err)
	}
	if client.listCalls != 1 {
		t.Errorf("listCalls = %d after repeated call, want 1", client.listCalls)
	}
}

func TestHandleList_Aliases(t *testing.T) {
	h, _ := testHandlers()

	req := makeRequest(map[string]any{"kind": "p"})
	result, err := h.HandleList(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleList() error = %v", err)
	}
	var out listResponse
	resultPayload(t, result, &out)
	if out.Kind != "planet" {
		t.Errorf("kind = %q for alias p, want planet", out.Kind)
	}
}

func TestHandleList_InvalidArgs(t *testing.T) {
	h, client := testHandlers()

	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "unknown kind", args: map[string]any{"kind": "dragon"}},
		{name: "missing kind", args: map[string]any{}},
		{name: "negative page", args: map[string]any{"kind": "character", "page": -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandleList(context.Background(), makeRequest(tt.args))
			if err != nil {
				t.Fatalf("HandleList() error = %v", err)
			}
			if !result.IsError {
				t.Error("expected error result")
			}
		})
	}

	if client.listCalls != 0 {
		t.Errorf("listCalls = %d for invalid requests, want 0", client.listCalls)
	}
}

func TestHandleShow(t *testing.T) {
	h, _ := testHandlers()

	req := makeRequest(map[string]any{"kind": "c", "id": 1})
	result, err := h.HandleShow(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleShow() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("HandleShow() returned error result: %v", result.Content)
	}

	var out recordResponse
	resultPayload(t, result, &out)
	if out.Name != "Goku" || out.Kind != "character" || out.ID != 1 {
		t.Errorf("record = %+v, want character/1 Goku", out)
	}
	if len(out.Relations) != 1 || out.Relations[0].Kind != "transformation" {
		t.Errorf("relations = %+v, want one transformation", out.Relations)
	}
}

func TestHandleShow_UpstreamErrorSurfaced(t *testing.T) {
	h, client := testHandlers()
	client.detailErr = errors.NewNotFound("character/99")

	req := makeRequest(map[string]any{"kind": "character", "id": 99})
	result, err := h.HandleShow(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleShow() error = %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for upstream 404")
	}

	var payload map[string]any
	resultPayload(t, result, &payload)
	errObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Fatalf("payload = %v, want error object", payload)
	}
	if errObj["code"] != string(errors.ErrNotFound) {
		t.Errorf("code = %v, want %s", errObj["code"], errors.ErrNotFound)
	}
}

func TestHandleShow_ErroredViewRetriesOnNextCall(t *testing.T) {
	h, client := testHandlers()
	client.detailErr = errors.NewUpstreamUnavailable(context.DeadlineExceeded)

	req := makeRequest(map[string]any{"kind": "character", "id": 1})
	if result, _ := h.HandleShow(context.Background(), req); !result.IsError {
		t.Fatal("expected error result while upstream is down")
	}

	client.mu.Lock()
	client.detailErr = nil
	client.mu.Unlock()

	result, err := h.HandleShow(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleShow() error = %v", err)
	}
	if result.IsError {
		t.Fatal("expected success after upstream recovered")
	}
	if client.detailCalls != 2 {
		t.Errorf("detailCalls = %d, want 2 (error then retry)", client.detailCalls)
	}
}

func TestHandleTransformations(t *testing.T) {
	h, client := testHandlers()

	req := makeRequest(map[string]any{"character_id": 1})
	result, err := h.HandleTransformations(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleTransformations() error = %v", err)
	}
	if result.IsError {
		t.Fatalf("HandleTransformations() returned error result: %v", result.Content)
	}

	var out listResponse
	resultPayload(t, result, &out)
	if out.Kind != "transformation" || len(out.Items) != 1 {
		t.Errorf("response = %+v, want one transformation", out)
	}
	if client.transformsCalls != 1 {
		t.Errorf("transformsCalls = %d, want 1", client.transformsCalls)
	}
}

func TestHandleTransformations_InvalidID(t *testing.T) {
	h, _ := testHandlers()

	result, err := h.HandleTransformations(context.Background(), makeRequest(map[string]any{"character_id": 0}))
	if err != nil {
		t.Fatalf("HandleTransformations() error = %v", err)
	}
	if !result.IsError {
		t.Error("expected error result for character_id 0")
	}
}

func newTestServer(disabled []string) *server.MCPServer {
	client := &stubClient{}
	core := nav.New(client, nav.Options{})
	cfg := config.DefaultConfig()
	cfg.DisabledTools = disabled
	return NewServer(core, cfg, "test")
}

func TestServerRegistration(t *testing.T) {
	s := newTestServer(nil)
	tools := s.ListTools()
	if tools == nil {
		t.Fatal("expected tools to be registered, got nil")
	}

	expectedTools := []string{"dbz_list", "dbz_show", "dbz_transformations"}
	if len(tools) != len(expectedTools) {
		t.Errorf("registered tool count = %d, want %d", len(tools), len(expectedTools))
	}
	for _, name := range expectedTools {
		if _, ok := tools[name]; !ok {
			t.Errorf("missing registered tool: %s", name)
		}
	}
}

func TestServerRegistration_WithDisabledTools(t *testing.T) {
	s := newTestServer([]string{"dbz_transformations"})
	tools := s.ListTools()

	if len(tools) != 2 {
		t.Errorf("registered tool count = %d, want 2", len(tools))
	}
	if _, ok := tools["dbz_transformations"]; ok {
		t.Error("disabled tool should not be registered")
	}
	if _, ok := tools["dbz_list"]; !ok {
		t.Error("dbz_list should still be registered")
	}
}

func TestServerRegistration_AllToolsDisabled(t *testing.T) {
	s := newTestServer(AllToolNames())
	if tools := s.ListTools(); len(tools) != 0 {
		t.Errorf("registered tool count = %d, want 0 (all disabled)", len(tools))
	}
}

func TestValidateDisabledTools(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		wantLen int
	}{
		{name: "all valid", input: []string{"dbz_list", "dbz_show"}, wantLen: 0},
		{name: "one unknown", input: []string{"dbz_list", "fake_tool"}, wantLen: 1},
		{name: "all unknown", input: []string{"foo", "bar"}, wantLen: 2},
		{name: "empty list", input: []string{}, wantLen: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unknown := ValidateDisabledTools(tt.input)
			if len(unknown) != tt.wantLen {
				t.Errorf("ValidateDisabledTools() returned %d unknown, want %d", len(unknown), tt.wantLen)
			}
		})
	}
}

func TestErrorResult_InternalDoesNotExposeDetails(t *testing.T) {
	sErr := errors.NewInternal(nil)
	sErr.Details = map[string]any{"secret": "path"}
	r := errorResult(sErr)

	var payload map[string]map[string]any
	resultPayload(t, r, &payload)
	if _, ok := payload["error"]["details"]; ok {
		t.Error("internal error payload must not include details")
	}
}

func TestErrorResult_NonInternalIncludesDetails(t *testing.T) {
	r := errorResult(errors.NewNotFound("character/7"))

	var payload map[string]map[string]any
	resultPayload(t, r, &payload)
	details, ok := payload["error"]["details"].(map[string]any)
	if !ok {
		t.Fatal("expected details in not-found payload")
	}
	if details["identifier"] != "character/7" {
		t.Errorf("identifier = %v, want character/7", details["identifier"])
	}
}

func TestErrorResult_PlainErrorBecomesInternal(t *testing.T) {
	r := errorResult(context.DeadlineExceeded)

	var payload map[string]map[string]any
	resultPayload(t, r, &payload)
	if payload["error"]["code"] != string(errors.ErrInternal) {
		t.Errorf("code = %v, want %s", payload["error"]["code"], errors.ErrInternal)
	}
	if payload["error"]["status"] != float64(500) {
		t.Errorf("status = %v, want 500", payload["error"]["status"])
	}
}
