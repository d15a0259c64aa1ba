package providers

import (
	"context"
	"errors"
	"net"
	"slices"
	"testing"
	"time"

	"github.com/redexp/familymuseum-lsp/layout"
	"github.com/redexp/familymuseum-lsp/museum"
	"github.com/redexp/familymuseum-lsp/state"
	"github.com/sourcegraph/jsonrpc2"
)

type testClient struct {
	conn    *jsonrpc2.Conn
	reloads chan ReloadParams
}

func fastSettings() museum.Settings {
	s := museum.DefaultSettings()
	s.Timings = museum.Timings{
		Resize:    10 * time.Millisecond,
		Scroll:    10 * time.Millisecond,
		Searching: 10 * time.Millisecond,
		SaveDelay: 20 * time.Millisecond,
		Saving:    10 * time.Millisecond,
		Load:      10 * time.Millisecond,
		Welcome:   10 * time.Millisecond,
	}

	return s
}

func startClient(t *testing.T) *testClient {
	t.Helper()

	SetSettings(fastSettings())

	serverSide, clientSide := net.Pipe()
	ctx := context.Background()

	serverConn := ServeStream(ctx, serverSide)

	client := &testClient{
		reloads: make(chan ReloadParams, 100),
	}

	client.conn = jsonrpc2.NewConn(
		ctx,
		jsonrpc2.NewBufferedStream(clientSide, jsonrpc2.VSCodeObjectCodec{}),
		jsonrpc2.HandlerWithError(func(_ context.Context, _ *jsonrpc2.Conn, r *jsonrpc2.Request) (any, error) {
			if r.Method == MuseumReloadMethod {
				select {
				case client.reloads <- ReloadParams{}:
				default:
				}
			}

			return nil, nil
		}),
	)

	t.Cleanup(func() {
		_ = client.conn.Close()
		_ = serverConn.Close()

		if root != nil {
			root.Close()
		}
	})

	return client
}

func (c *testClient) call(t *testing.T, method string, params any, result any) error {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return c.conn.Call(ctx, method, params, result)
}

func (c *testClient) initialize(t *testing.T, options map[string]any) {
	t.Helper()

	var res map[string]any

	err := c.call(t, "initialize", map[string]any{
		"processId":             nil,
		"rootUri":               nil,
		"capabilities":          map[string]any{},
		"initializationOptions": options,
	}, &res)

	if err != nil {
		t.Fatalf("initialize: %v", err)
	}

	caps, _ := res["capabilities"].(map[string]any)
	experimental, _ := caps["experimental"].(map[string]any)
	methods, _ := experimental["methods"].([]any)

	if len(methods) != len(MuseumMethods) {
		t.Errorf("experimental methods = %v", experimental["methods"])
	}

	if experimental["session"] == "" {
		t.Errorf("empty session")
	}
}

func testMembers() state.Members {
	return state.Members{
		{Id: "1", Name: "Moshe Cohen", Role: "Grandfather", Generation: 0, Spouse: "Rachel Cohen", Children: []string{"3", "4"}},
		{Id: "2", Name: "Rachel Cohen", Role: "Grandmother", Generation: 0, Spouse: "Moshe Cohen", Children: []string{"3", "4"}},
		{Id: "3", Name: "David Cohen", Role: "Father", Generation: 1, ParentIds: []string{"1", "2"}},
		{Id: "4", Name: "Miriam Levi", Role: "Aunt", Generation: 1, ParentIds: []string{"1", "2"}, Biography: "Teacher in *Haifa*"},
	}
}

func TestNotInitialized(t *testing.T) {
	client := startClient(t)

	var view museum.View
	err := client.call(t, MuseumViewMethod, nil, &view)

	if err == nil {
		t.Fatalf("museum/view before initialize should fail")
	}
}

func TestMethodNotFound(t *testing.T) {
	client := startClient(t)
	client.initialize(t, nil)

	err := client.call(t, "museum/unknown", nil, nil)

	var rpcErr *jsonrpc2.Error

	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.CodeMethodNotFound {
		t.Errorf("museum/unknown error = %v", err)
	}
}

func TestInvalidParams(t *testing.T) {
	client := startClient(t)
	client.initialize(t, nil)

	err := client.call(t, MuseumSearchMethod, []int{1}, nil)

	var rpcErr *jsonrpc2.Error

	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.CodeInvalidParams {
		t.Errorf("museum/search error = %v", err)
	}
}

func TestSampleView(t *testing.T) {
	client := startClient(t)
	client.initialize(t, nil)

	var view museum.View

	if err := client.call(t, MuseumViewMethod, nil, &view); err != nil {
		t.Fatal(err)
	}

	if view.Dataset != state.SampleUri {
		t.Errorf("dataset = %s", view.Dataset)
	}

	if view.Total != len(state.Sample()) || len(view.Nodes) != view.Total {
		t.Errorf("total = %d, nodes = %d", view.Total, len(view.Nodes))
	}
}

func TestMuseumMethods(t *testing.T) {
	client := startClient(t)
	client.initialize(t, map[string]any{"locale": "en"})

	var view museum.View

	err := client.call(t, MuseumMembersMethod, &MembersParams{Members: testMembers()}, &view)

	if err != nil {
		t.Fatal(err)
	}

	if view.Dataset != ClientMembersUri || view.Total != 4 {
		t.Errorf("members view = %s %d", view.Dataset, view.Total)
	}

	types := map[layout.ConnectionType]int{}

	for _, line := range view.Lines {
		types[line.Type]++
	}

	if types[layout.ParentChild] != 4 || types[layout.Spouse] != 1 || types[layout.Sibling] != 0 {
		t.Errorf("connection types = %v", types)
	}

	var hover HoverResult

	if err = client.call(t, MuseumHoverMethod, &HoverParams{Id: "3"}, &hover); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(hover.Ids, []string{"1", "2", "3"}) {
		t.Errorf("hover ids = %v", hover.Ids)
	}

	var found SearchResult

	if err = client.call(t, MuseumSearchMethod, &SearchParams{Query: "levi"}, &found); err != nil {
		t.Fatal(err)
	}

	if found.Matched != 1 || found.Total != 4 || found.Message == "" {
		t.Errorf("search = %+v", found)
	}

	if err = client.call(t, MuseumViewMethod, nil, &view); err != nil {
		t.Fatal(err)
	}

	if len(view.Nodes) != 1 || view.Nodes[0].Id != "4" {
		t.Errorf("filtered nodes = %d", len(view.Nodes))
	}

	var card museum.Card

	if err = client.call(t, MuseumMemberMethod, &MemberParams{Id: "4"}, &card); err != nil {
		t.Fatal(err)
	}

	if card.BiographyHtml != "<p>Teacher in <em>Haifa</em></p>\n" {
		t.Errorf("biography = %q", card.BiographyHtml)
	}

	if err = client.call(t, MuseumMemberMethod, &MemberParams{Id: "404"}, &card); err == nil {
		t.Errorf("unknown member should fail")
	}

	var revealed RevealResult

	if err = client.call(t, MuseumRevealMethod, &RevealParams{Ids: []string{"1", "2", "1"}}, &revealed); err != nil {
		t.Fatal(err)
	}

	if revealed.Added != 2 {
		t.Errorf("revealed = %d", revealed.Added)
	}
}

func TestConfigChange(t *testing.T) {
	client := startClient(t)
	client.initialize(t, nil)

	var view museum.View

	if err := client.call(t, MuseumMembersMethod, &MembersParams{Members: testMembers()}, &view); err != nil {
		t.Fatal(err)
	}

	err := client.call(t, ConfigChangeMethod, map[string]any{
		"infer_siblings": true,
		"virtualize":     true,
		"page_size":      2,
	}, nil)

	if err != nil {
		t.Fatal(err)
	}

	if err = client.call(t, MuseumViewMethod, nil, &view); err != nil {
		t.Fatal(err)
	}

	siblings := 0

	for _, line := range view.Lines {
		if line.Type == layout.Sibling {
			siblings++
		}
	}

	if siblings != 1 {
		t.Errorf("siblings = %d", siblings)
	}

	if !view.Virtualized || !view.Nodes[0].Placeholder {
		t.Errorf("forced virtualization not applied")
	}

	if err = client.call(t, ConfigChangeMethod, map[string]any{"locale": "xx"}, nil); err == nil {
		t.Errorf("unsupported locale should fail")
	}
}

func TestResizeReload(t *testing.T) {
	client := startClient(t)
	client.initialize(t, nil)

	if err := client.call(t, MuseumResizeMethod, &ResizeParams{Width: 2000, Height: 1500}, nil); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(3 * time.Second)

	for {
		select {
		case <-client.reloads:
		case <-deadline:
			t.Fatalf("viewport was not resized")
		}

		var view museum.View

		if err := client.call(t, MuseumViewMethod, nil, &view); err != nil {
			t.Fatal(err)
		}

		if view.Viewport.Width == 1900 && view.Viewport.Height == 1300 {
			return
		}
	}
}

func TestDatasetDocuments(t *testing.T) {
	client := startClient(t)
	client.initialize(t, nil)

	uri := "file:///tmp/cohen.family.json"

	err := client.conn.Notify(context.Background(), "textDocument/didOpen", map[string]any{
		"textDocument": map[string]any{
			"uri":        uri,
			"languageId": "json",
			"version":    1,
			"text":       `[{"id":"a","name":"Avi","generation":0}]`,
		},
	})

	if err != nil {
		t.Fatal(err)
	}

	var view museum.View
	deadline := time.Now().Add(3 * time.Second)

	for time.Now().Before(deadline) {
		if err = client.call(t, MuseumViewMethod, nil, &view); err != nil {
			t.Fatal(err)
		}

		if view.Dataset == uri {
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	if view.Dataset != uri || view.Total != 1 {
		t.Fatalf("dataset = %s total = %d", view.Dataset, view.Total)
	}

	err = client.conn.Notify(context.Background(), "workspace/didDeleteFiles", map[string]any{
		"files": []map[string]any{{"uri": uri}},
	})

	if err != nil {
		t.Fatal(err)
	}

	deadline = time.Now().Add(3 * time.Second)

	for time.Now().Before(deadline) {
		if err = client.call(t, MuseumViewMethod, nil, &view); err != nil {
			t.Fatal(err)
		}

		if view.Dataset != uri {
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	if view.Dataset != state.SampleUri {
		t.Errorf("dataset after delete = %s", view.Dataset)
	}
}
