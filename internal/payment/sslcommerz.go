package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	sandboxURL    = "https://sandbox.sslcommerz.com/gwprocess/v4/api.php"
	productionURL = "https://securepay.sslcommerz.com/gwprocess/v4/api.php"
)

// Config holds the SSLCommerz merchant settings.
type Config struct {
	StoreID       string
	StorePassword string
	Sandbox       bool
	ClientAppURL  string
}

// Session is the result of a create call. CheckoutURL is null when the
// gateway is unconfigured (degraded mode) or the gateway response
// carried no redirect URL.
type Session struct {
	CheckoutURL *string `json:"checkoutUrl"`
	Message     string  `json:"message,omitempty"`
}

// Client creates SSLCommerz checkout sessions. Sessions are created
// per request and never stored.
type Client struct {
	cfg    Config
	client *http.Client

	endpoint string
	now      func() time.Time
}

func NewClient(cfg Config, client *http.Client) *Client {
	endpoint := productionURL
	if cfg.Sandbox {
		endpoint = sandboxURL
	}
	return &Client{
		cfg:      cfg,
		client:   client,
		endpoint: endpoint,
		now:      time.Now,
	}
}

// CreateSession posts the gateway payload and extracts the checkout
// redirect URL. Unset merchant credentials are not an error: the
// caller gets a null checkout URL with an explanatory message so it
// can distinguish "not configured" from "gateway rejected request".
func (cl *Client) CreateSession(ctx context.Context, amount float64, currency string) (Session, error) {
	if cl.cfg.StoreID == "" || cl.cfg.StorePassword == "" {
		return Session{
			CheckoutURL: nil,
			Message:     "SSLCOMMERZ credentials not set in env",
		}, nil
	}

	if currency == "" {
		currency = "BDT"
	}

	tranID := "bp_" + strconv.FormatInt(cl.now().UnixMilli(), 10)

	form := url.Values{}
	form.Set("store_id", cl.cfg.StoreID)
	form.Set("store_passwd", cl.cfg.StorePassword)
	form.Set("total_amount", strconv.FormatFloat(amount, 'f', -1, 64))
	form.Set("currency", currency)
	form.Set("tran_id", tranID)
	form.Set("success_url", cl.cfg.ClientAppURL+"/payment-success")
	form.Set("fail_url", cl.cfg.ClientAppURL+"/payment-fail")
	form.Set("cancel_url", cl.cfg.ClientAppURL+"/payment-cancel")
	form.Set("emi_option", "0")
	form.Set("cus_name", "Test Buyer")
	form.Set("cus_email", "buyer@example.com")
	form.Set("cus_add1", "Dhaka")
	form.Set("cus_phone", "01700000000")

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		cl.endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return Session{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := cl.client.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("sslcommerz session create failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Session{}, fmt.Errorf("sslcommerz session create failed: %s", resp.Status)
	}

	var payload struct {
		GatewayPageURL string `json:"GatewayPageURL"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Session{}, fmt.Errorf("sslcommerz response decode failed: %w", err)
	}

	if payload.GatewayPageURL == "" {
		return Session{CheckoutURL: nil}, nil
	}
	return Session{CheckoutURL: &payload.GatewayPageURL}, nil
}
