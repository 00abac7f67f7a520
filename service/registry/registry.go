package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	bCtx "github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/log"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/registry"
)

const bearerKey = "x-api-key"

var (
	ErrStatusCodeNotOk = fmt.Errorf("status code is not 200")
	ErrUnknownRegistry = fmt.Errorf("no endpoint for registry")
	ErrMalformedPayout = fmt.Errorf("malformed payout response")
)

type client struct {
	client    http.Client
	timeout   time.Duration
	apikey    string
	endpoints map[domain.RegistryId]string
}

func NewClient(cfg *registry.ClientCfg) registry.Client {
	return &client{
		client:    cfg.HttpClient,
		timeout:   cfg.Timeout,
		apikey:    cfg.Apikey,
		endpoints: cfg.Endpoints,
	}
}

// TransferPayout asks the registry to move the asset to the buyer and answer
// with its payout split. The response body is decoded but deliberately not
// validated here; reconciliation is the settlement coordinator's job.
func (c *client) TransferPayout(ctx bCtx.Ctx, registryId domain.RegistryId, req *registry.TransferPayoutRequest) (*registry.Payout, error) {
	endpoint, ok := c.endpoints[registryId]
	if !ok {
		ctx.WithField("registryId", registryId).Error("no endpoint configured")
		return nil, ErrUnknownRegistry
	}
	url := fmt.Sprintf("%s/nft_transfer_payout", endpoint)

	body, err := c.post(ctx, url, req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.post failed")
		return nil, err
	}

	payout := &registry.Payout{}
	if err := json.Unmarshal(body, payout); err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("unmarshal payout failed")
		return nil, ErrMalformedPayout
	}
	return payout, nil
}

func (c *client) post(ctx bCtx.Ctx, url string, payload interface{}) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(data))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(bearerKey, c.apikey)

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
