package custody

import (
	"context"
	"fmt"
	"time"

	"tenor/core"
	"tenor/pkg/id"

	"github.com/go-resty/resty/v2"
)

type custodyService struct {
	client *resty.Client
}

// New custody client against the configured custodian endpoint
func New(cfg *core.Config) core.Custodian {
	client := resty.New().
		SetHostURL(cfg.Custody.Endpoint).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(cfg.Custody.Token).
		SetTimeout(10 * time.Second)

	return &custodyService{client: client}
}

type balanceView struct {
	Balance string `json:"balance"`
}

type transferReq struct {
	TraceID   string `json:"trace_id"`
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (s *custodyService) AssetBalance(ctx context.Context) (core.Uint, error) {
	return s.balance(ctx, "/api/asset/balance")
}

func (s *custodyService) CollateralBalance(ctx context.Context) (core.Uint, error) {
	return s.balance(ctx, "/api/collateral/balance")
}

func (s *custodyService) TransferAsset(ctx context.Context, recipient string, amount core.Uint) error {
	return s.transfer(ctx, "/api/asset/transfers", recipient, amount)
}

func (s *custodyService) TransferCollateral(ctx context.Context, recipient string, amount core.Uint) error {
	return s.transfer(ctx, "/api/collateral/transfers", recipient, amount)
}

func (s *custodyService) balance(ctx context.Context, url string) (core.Uint, error) {
	var view balanceView
	r, err := s.client.R().
		SetContext(ctx).
		SetResult(&view).
		Get(url)
	if err != nil {
		return core.Uint{}, err
	}
	if !r.IsSuccess() {
		return core.Uint{}, fmt.Errorf("custody: %s %s", url, r.Status())
	}

	return core.UintFromString(view.Balance)
}

// transfer uses a fresh trace id per request so the custodian can apply
// transfers idempotently on retries.
func (s *custodyService) transfer(ctx context.Context, url, recipient string, amount core.Uint) error {
	req := transferReq{
		TraceID:   id.GenTraceID(),
		Recipient: recipient,
		Amount:    amount.String(),
	}

	r, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(url)
	if err != nil {
		return err
	}
	if !r.IsSuccess() {
		return fmt.Errorf("custody: %s %s", url, r.Status())
	}

	return nil
}
