package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config carries every runtime knob the service reads. Values come from the
// environment (a .env file is loaded by main before this runs).
type Config struct {
	ServerPort  string
	DataDir     string
	BackupDir   string
	JWTSecret   string
	AdminAPIKey string

	// PaymentMode selects the active checkout flow: "direct" places orders
	// straight from the cart, "hosted" goes through the payment provider.
	PaymentMode          string
	PaymentKeyID         string
	PaymentKeySecret     string
	PaymentAPIURL        string
	PaymentWebhookSecret string
	PaymentSandbox       bool
	PaymentPendingTTL    time.Duration
	CheckoutDelay        time.Duration

	Currency              string
	FreeShippingThreshold decimal.Decimal
	ShippingFlatFee       decimal.Decimal
	TaxRate               decimal.Decimal

	// OrderStatusEnforce toggles the processing->shipped->delivered
	// transition graph; false restores fully permissive status updates.
	OrderStatusEnforce bool
}

// Load reads the environment once and returns a fully populated Config.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("BACKUP_DIR", "./backup/data")
	v.SetDefault("JWT_SECRET", "buttonhaus-dev-secret")
	v.SetDefault("ADMIN_API_KEY", "")
	v.SetDefault("PAYMENT_MODE", "direct")
	v.SetDefault("PAYMENT_KEY_ID", "rzp_test_KSJJ0i1nYo1VBl")
	v.SetDefault("PAYMENT_KEY_SECRET", "")
	v.SetDefault("PAYMENT_API_URL", "https://api.razorpay.com/v1/orders")
	v.SetDefault("PAYMENT_WEBHOOK_SECRET", "")
	v.SetDefault("PAYMENT_SANDBOX", true)
	v.SetDefault("PAYMENT_PENDING_TTL", "15m")
	v.SetDefault("CHECKOUT_DELAY", "1200ms")
	v.SetDefault("CURRENCY", "INR")
	v.SetDefault("FREE_SHIPPING_THRESHOLD", "50")
	v.SetDefault("SHIPPING_FLAT_FEE", "5.99")
	v.SetDefault("TAX_RATE", "0.18")
	v.SetDefault("ORDER_STATUS_ENFORCE", true)

	cfg := &Config{
		ServerPort:           v.GetString("PORT"),
		DataDir:              v.GetString("DATA_DIR"),
		BackupDir:            v.GetString("BACKUP_DIR"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		AdminAPIKey:          v.GetString("ADMIN_API_KEY"),
		PaymentMode:          v.GetString("PAYMENT_MODE"),
		PaymentKeyID:         v.GetString("PAYMENT_KEY_ID"),
		PaymentKeySecret:     v.GetString("PAYMENT_KEY_SECRET"),
		PaymentAPIURL:        v.GetString("PAYMENT_API_URL"),
		PaymentWebhookSecret: v.GetString("PAYMENT_WEBHOOK_SECRET"),
		PaymentSandbox:       v.GetBool("PAYMENT_SANDBOX"),
		PaymentPendingTTL:    v.GetDuration("PAYMENT_PENDING_TTL"),
		CheckoutDelay:        v.GetDuration("CHECKOUT_DELAY"),
		Currency:             v.GetString("CURRENCY"),
		OrderStatusEnforce:   v.GetBool("ORDER_STATUS_ENFORCE"),
	}

	if cfg.PaymentMode != "direct" && cfg.PaymentMode != "hosted" {
		return nil, fmt.Errorf("config: PAYMENT_MODE must be \"direct\" or \"hosted\", got %q", cfg.PaymentMode)
	}

	var err error
	if cfg.FreeShippingThreshold, err = decimal.NewFromString(v.GetString("FREE_SHIPPING_THRESHOLD")); err != nil {
		return nil, fmt.Errorf("config: invalid FREE_SHIPPING_THRESHOLD: %w", err)
	}
	if cfg.ShippingFlatFee, err = decimal.NewFromString(v.GetString("SHIPPING_FLAT_FEE")); err != nil {
		return nil, fmt.Errorf("config: invalid SHIPPING_FLAT_FEE: %w", err)
	}
	if cfg.TaxRate, err = decimal.NewFromString(v.GetString("TAX_RATE")); err != nil {
		return nil, fmt.Errorf("config: invalid TAX_RATE: %w", err)
	}

	return cfg, nil
}
