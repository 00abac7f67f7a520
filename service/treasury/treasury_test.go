package treasury

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
)

func TestSendPostsTransfer(t *testing.T) {
	req := require.New(t)
	got := make(chan map[string]string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/transfer", r.URL.Path)
		body := map[string]string{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		got <- body
	}))
	defer srv.Close()

	tr := NewTransferer(&TransfererCfg{
		HttpClient: http.Client{},
		Timeout:    time.Second,
		Endpoint:   srv.URL,
	})

	tr.Send(bCtx.Background(), domain.Account("alice.testnet"), domain.Amount("100"))

	select {
	case body := <-got:
		req.Equal("alice.testnet", body["receiverId"])
		req.Equal("100", body["amount"])
	case <-time.After(2 * time.Second):
		t.Fatal("transfer never arrived")
	}
}
