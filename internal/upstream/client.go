package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shipdeskhq/shipdesk-backend/internal/reporting"
	"github.com/shipdeskhq/shipdesk-backend/pkg/config"
	"github.com/shipdeskhq/shipdesk-backend/pkg/errors"
)

// Client talks to the platform admin API that serves the raw report
// inputs. Every payload arrives wrapped in a {"data": ...} envelope.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg config.UpstreamConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New(errors.CodeInternal, "upstream base url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

// Ping checks that the upstream answers at all. Used by readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, "upstream unreachable")
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusInternalServerError {
		return errors.New(errors.CodeDependency, fmt.Sprintf("upstream health returned %d", res.StatusCode))
	}
	return nil
}

// Users lists every registered user with their wallet balance.
func (c *Client) Users(ctx context.Context) ([]reporting.UserRecord, error) {
	var raw []rawUser
	if err := c.getJSON(ctx, "/admin/users", nil, &raw); err != nil {
		return nil, err
	}
	users := make([]reporting.UserRecord, 0, len(raw))
	for _, r := range raw {
		users = append(users, r.normalize())
	}
	return users, nil
}

// Orders lists orders, optionally bounded by the resolved range.
func (c *Client) Orders(ctx context.Context, rng reporting.DateRange) ([]reporting.OrderRecord, error) {
	var raw []rawOrder
	if err := c.getJSON(ctx, "/admin/orders", rangeQuery(rng), &raw); err != nil {
		return nil, err
	}
	orders := make([]reporting.OrderRecord, 0, len(raw))
	for _, r := range raw {
		orders = append(orders, r.normalize())
	}
	return orders, nil
}

// CarrierStats returns the overall aggregate plus per-carrier and
// per-shipment-type breakdowns.
func (c *Client) CarrierStats(ctx context.Context, rng reporting.DateRange) (*reporting.CarrierStat, []reporting.CarrierStat, []reporting.CarrierTypeStat, error) {
	var raw rawCarrierStats
	if err := c.getJSON(ctx, "/admin/stats/carriers", rangeQuery(rng), &raw); err != nil {
		return nil, nil, nil, err
	}
	overall, carriers, byType := raw.normalize()
	return overall, carriers, byType, nil
}

// PlatformStats returns per-sales-platform order and revenue figures.
func (c *Client) PlatformStats(ctx context.Context, rng reporting.DateRange) ([]reporting.PlatformStat, error) {
	var raw []rawPlatformStat
	if err := c.getJSON(ctx, "/admin/stats/platforms", rangeQuery(rng), &raw); err != nil {
		return nil, err
	}
	stats := make([]reporting.PlatformStat, 0, len(raw))
	for _, r := range raw {
		stats = append(stats, r.normalize())
	}
	return stats, nil
}

// Transactions lists wallet transactions inside the resolved range.
func (c *Client) Transactions(ctx context.Context, rng reporting.DateRange) ([]reporting.TransactionRecord, error) {
	var raw []rawTransaction
	if err := c.getJSON(ctx, "/admin/transactions", rangeQuery(rng), &raw); err != nil {
		return nil, err
	}
	txs := make([]reporting.TransactionRecord, 0, len(raw))
	for _, r := range raw {
		txs = append(txs, r.normalize())
	}
	return txs, nil
}

// ShipmentStats returns the legacy shipment-count aggregate.
func (c *Client) ShipmentStats(ctx context.Context) (reporting.ShipmentStats, error) {
	var raw rawShipmentStats
	if err := c.getJSON(ctx, "/admin/stats/shipments", nil, &raw); err != nil {
		return reporting.ShipmentStats{}, err
	}
	return raw.normalize(), nil
}

func rangeQuery(rng reporting.DateRange) url.Values {
	query := url.Values{}
	if rng.Start != nil {
		query.Set("start_date", rng.Start.UTC().Format(time.RFC3339))
	}
	if rng.End != nil {
		query.Set("end_date", rng.End.UTC().Format(time.RFC3339))
	}
	return query
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "building upstream request")
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(errors.CodeDependency, err, fmt.Sprintf("calling %s", path))
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.New(errors.CodeDependency, fmt.Sprintf("%s returned %d", path, res.StatusCode))
	}

	envelope := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return errors.Wrap(errors.CodeDependency, err, fmt.Sprintf("decoding %s envelope", path))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return errors.Wrap(errors.CodeDependency, err, fmt.Sprintf("decoding %s payload", path))
	}
	return nil
}
