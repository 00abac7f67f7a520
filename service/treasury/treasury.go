package treasury

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	bCtx "github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/goroutine"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/base/metrics"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/funds"
)

type TransfererCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Apikey     string
	Endpoint   string
}

type transferer struct {
	client   http.Client
	timeout  time.Duration
	apikey   string
	endpoint string
	met      metrics.Service
}

func NewTransferer(cfg *TransfererCfg) funds.Transferer {
	return &transferer{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		apikey:   cfg.Apikey,
		endpoint: cfg.Endpoint,
		met:      metrics.New("treasury"),
	}
}

// Send issues the transfer without waiting for it. A failed attempt is
// logged and counted; the treasury retries delivery on its side, so the
// caller's view stays fire and forget.
func (t *transferer) Send(c bCtx.Ctx, to domain.Account, amount domain.Amount) {
	goroutine.RecoverableGo(func() {
		if err := t.post(c, to, amount); err != nil {
			t.met.BumpSum("send.err", 1)
			c.WithFields(log.Fields{
				"to":     to,
				"amount": amount,
				"err":    err,
			}).Error("fund transfer failed")
			return
		}
		t.met.BumpSum("send.ok", 1)
	})
}

func (t *transferer) post(c bCtx.Ctx, to domain.Account, amount domain.Amount) error {
	c, cancel := bCtx.WithTimeout(c, t.timeout)
	defer cancel()

	payload := struct {
		To     domain.Account `json:"receiverId"`
		Amount domain.Amount  `json:"amount"`
	}{to, amount}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/transfer", t.endpoint)
	req, err := http.NewRequestWithContext(c, "POST", url, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", t.apikey)

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d", resp.StatusCode)
	}
	return nil
}
