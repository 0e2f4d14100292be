package httputil

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/central-university-dev/go-reaction-bot/internal/config"
)

// RestyDoer адаптирует resty клиент к интерфейсу Do(*http.Request), который ожидает telegram-bot-api.
type RestyDoer struct {
	restyClient *resty.Client
}

func NewRestyDoer(restyClient *resty.Client) *RestyDoer {
	return &RestyDoer{
		restyClient: restyClient,
	}
}

func (d *RestyDoer) Do(req *http.Request) (*http.Response, error) {
	restyReq := d.restyClient.R().SetContext(req.Context())

	for key, values := range req.Header {
		for _, value := range values {
			restyReq.SetHeader(key, value)
		}
	}

	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}

		_ = req.Body.Close()

		restyReq.SetBody(body)
	}

	resp, err := restyReq.Execute(req.Method, req.URL.String())
	if err != nil {
		return nil, err
	}

	httpResp := resp.RawResponse
	if httpResp != nil {
		httpResp.Body = io.NopCloser(bytes.NewReader(resp.Body()))
	}

	return httpResp, nil
}

func CreateTelegramHTTPClient(cfg *config.Config, logger *slog.Logger) *RestyDoer {
	return NewRestyDoer(CreateResilientHTTPClient(cfg, logger, "telegram_api"))
}
