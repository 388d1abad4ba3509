package ethereum

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gabapcia/addrwatch/internal/pkg/transport/jsonrpc"
)

type rpcRequest struct {
	ID     string            `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// rpcHandler answers one method. Returning a non-nil error string produces a
// JSON-RPC error object.
type rpcHandler func(params []json.RawMessage) (result any, rpcErr string)

// fakeNode is a minimal JSON-RPC server that dispatches by method name.
type fakeNode struct {
	mu       sync.Mutex
	handlers map[string]rpcHandler
	calls    []rpcRequest
}

func newFakeNode(t *testing.T) (*fakeNode, *client) {
	t.Helper()

	node := &fakeNode{handlers: map[string]rpcHandler{}}
	srv := httptest.NewServer(http.HandlerFunc(node.serve))
	t.Cleanup(srv.Close)

	conn := jsonrpc.NewClient(srv.URL, jsonrpc.WithRetryMax(0))
	return node, NewClient(conn)
}

func (n *fakeNode) handle(method string, h rpcHandler) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.handlers[method] = h
}

func (n *fakeNode) result(method string, result any) {
	n.handle(method, func([]json.RawMessage) (any, string) { return result, "" })
}

func (n *fakeNode) requests() []rpcRequest {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]rpcRequest(nil), n.calls...)
}

func (n *fakeNode) serve(w http.ResponseWriter, r *http.Request) {
	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	n.mu.Lock()
	n.calls = append(n.calls, req)
	h, ok := n.handlers[req.Method]
	n.mu.Unlock()

	res := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	switch {
	case !ok:
		res["error"] = map[string]any{"code": -32601, "message": "method not found"}
	default:
		result, rpcErr := h(req.Params)
		if rpcErr != "" {
			res["error"] = map[string]any{"code": -32000, "message": rpcErr}
		} else {
			res["result"] = result
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(res)
}

func requireParams(t *testing.T, req rpcRequest, want ...string) {
	t.Helper()

	require.Len(t, req.Params, len(want))
	for i, p := range req.Params {
		require.JSONEq(t, want[i], string(p))
	}
}
