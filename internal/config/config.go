package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

// ErrInvalid is returned when a configuration value fails validation.
var ErrInvalid error = errors.New("invalid configuration")

const (
	configFileEnvKey          = "CONFIG_FILE"
	rpcURLEnvKey              = "RPC_URL"
	privateKeyEnvKey          = "PRIVATE_KEY"
	recipientEnvKey           = "RECIPIENT_ADDRESS"
	minAmountEnvKey           = "MIN_AMOUNT"
	maxAmountEnvKey           = "MAX_AMOUNT"
	minConfirmationsEnvKey    = "MIN_CONFIRMATIONS"
	receiptTimeoutEnvKey      = "RECEIPT_TIMEOUT"
	pollIntervalEnvKey        = "POLL_INTERVAL"
	confirmationTimeoutEnvKey = "CONFIRMATION_TIMEOUT"
	artifactsDirEnvKey        = "ARTIFACTS_DIR"
	timezoneEnvKey            = "TIMEZONE"
	logLevelEnvKey            = "LOG_LEVEL"
)

const (
	// Network is the only network the tool transacts on.
	Network = "sepolia"
	// SepoliaChainID is the EIP-155 chain id of Network.
	SepoliaChainID int64 = 11155111
)

var (
	hexKeyRegex   = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)
	rpcURLRegex   = regexp.MustCompile(`^(https?|wss?|ipc)://.+|^/.+\.ipc$`)
	defaultMinEth = decimal.RequireFromString("0.001")
	defaultMaxEth = decimal.RequireFromString("0.01")
)

// Secret holds a sensitive value that must never be printed.
type Secret string

func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

// GoString keeps %#v from leaking the value.
func (s Secret) GoString() string {
	return s.String()
}

// Reveal returns the raw secret.
func (s Secret) Reveal() string {
	return string(s)
}

type App struct {
	NodeURL             string
	PrivateKey          Secret
	Recipient           string
	MinAmount           decimal.Decimal
	MaxAmount           decimal.Decimal
	MinConfirmations    uint64
	ReceiptTimeout      time.Duration
	PollInterval        time.Duration
	ConfirmationTimeout time.Duration
	ArtifactsDir        string
	Timezone            string
	LogLevel            string
	Network             string
	ChainID             *big.Int
}

// fileConfig is the optional YAML overlay. It has no private key field, the
// signing key is only read from the environment.
type fileConfig struct {
	RPCURL              string `yaml:"rpc_url"`
	RecipientAddress    string `yaml:"recipient_address"`
	MinAmount           string `yaml:"min_amount"`
	MaxAmount           string `yaml:"max_amount"`
	MinConfirmations    string `yaml:"min_confirmations"`
	ReceiptTimeout      string `yaml:"receipt_timeout"`
	PollInterval        string `yaml:"poll_interval"`
	ConfirmationTimeout string `yaml:"confirmation_timeout"`
	ArtifactsDir        string `yaml:"artifacts_dir"`
	Timezone            string `yaml:"timezone"`
	LogLevel            string `yaml:"log_level"`
}

func (f fileConfig) values() map[string]string {
	return map[string]string{
		rpcURLEnvKey:              f.RPCURL,
		recipientEnvKey:           f.RecipientAddress,
		minAmountEnvKey:           f.MinAmount,
		maxAmountEnvKey:           f.MaxAmount,
		minConfirmationsEnvKey:    f.MinConfirmations,
		receiptTimeoutEnvKey:      f.ReceiptTimeout,
		pollIntervalEnvKey:        f.PollInterval,
		confirmationTimeoutEnvKey: f.ConfirmationTimeout,
		artifactsDirEnvKey:        f.ArtifactsDir,
		timezoneEnvKey:            f.Timezone,
		logLevelEnvKey:            f.LogLevel,
	}
}

// NewApp reads the configuration from the environment, falling back to the
// YAML file named by CONFIG_FILE for everything except the private key.
func NewApp() (App, error) {
	file := map[string]string{}
	if path, ok := os.LookupEnv(configFileEnvKey); ok && path != "" {
		fc, err := loadFile(path)
		if err != nil {
			return App{}, err
		}
		file = fc.values()
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		if v := file[key]; v != "" {
			return v, true
		}
		return "", false
	}

	nodeURL, ok := lookup(rpcURLEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, rpcURLEnvKey)
	}

	privateKey, ok := os.LookupEnv(privateKeyEnvKey)
	if !ok || privateKey == "" {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, privateKeyEnvKey)
	}

	recipient, ok := lookup(recipientEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, recipientEnvKey)
	}

	app := App{
		NodeURL:      nodeURL,
		PrivateKey:   Secret(privateKey),
		Recipient:    recipient,
		ArtifactsDir: "artifacts",
		Timezone:     "Europe/Istanbul",
		LogLevel:     "info",
		Network:      Network,
		ChainID:      big.NewInt(SepoliaChainID),
	}

	var err error
	if app.MinAmount, err = decimalOr(lookup, minAmountEnvKey, defaultMinEth); err != nil {
		return App{}, err
	}
	if app.MaxAmount, err = decimalOr(lookup, maxAmountEnvKey, defaultMaxEth); err != nil {
		return App{}, err
	}
	if app.MinConfirmations, err = uintOr(lookup, minConfirmationsEnvKey, 3); err != nil {
		return App{}, err
	}
	if app.ReceiptTimeout, err = durationOr(lookup, receiptTimeoutEnvKey, 120*time.Second); err != nil {
		return App{}, err
	}
	if app.PollInterval, err = durationOr(lookup, pollIntervalEnvKey, 2*time.Second); err != nil {
		return App{}, err
	}
	if app.ConfirmationTimeout, err = durationOr(lookup, confirmationTimeoutEnvKey, 0); err != nil {
		return App{}, err
	}
	if v, ok := lookup(artifactsDirEnvKey); ok {
		app.ArtifactsDir = v
	}
	if v, ok := lookup(timezoneEnvKey); ok {
		app.Timezone = v
	}
	if v, ok := lookup(logLevelEnvKey); ok {
		app.LogLevel = v
	}

	if err := app.Validate(); err != nil {
		return App{}, err
	}

	return app, nil
}

// Validate checks every field against its rules.
func (a App) Validate() error {
	err := validation.ValidateStruct(&a,
		validation.Field(&a.NodeURL, validation.Required, validation.Match(rpcURLRegex)),
		validation.Field(&a.PrivateKey, validation.Required, validation.By(hexKey)),
		validation.Field(&a.Recipient, validation.Required, validation.By(hexAddress)),
		validation.Field(&a.MinAmount, validation.By(positiveDecimal)),
		validation.Field(&a.MaxAmount, validation.By(positiveDecimal), validation.By(notBelow(a.MinAmount))),
		validation.Field(&a.MinConfirmations, validation.Required, validation.Min(uint64(1))),
		validation.Field(&a.ReceiptTimeout, validation.Required, validation.Min(time.Nanosecond)),
		validation.Field(&a.PollInterval, validation.Required, validation.Min(time.Nanosecond)),
		validation.Field(&a.ConfirmationTimeout, validation.Min(time.Duration(0))),
		validation.Field(&a.ArtifactsDir, validation.Required),
		validation.Field(&a.Timezone, validation.Required, validation.By(timezone)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Location resolves the configured timezone.
func (a App) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load location %q: %w", a.Timezone, err)
	}
	return loc, nil
}

func loadFile(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %q: %w", path, err)
	}
	return fc, nil
}

type lookupFunc func(key string) (string, bool)

func decimalOr(lookup lookupFunc, key string, def decimal.Decimal) (decimal.Decimal, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return d, nil
}

func uintOr(lookup lookupFunc, key string, def uint64) (uint64, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return n, nil
}

func durationOr(lookup lookupFunc, key string, def time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalid, key, err)
	}
	return d, nil
}

func hexKey(value any) error {
	s, _ := value.(Secret)
	if !hexKeyRegex.MatchString(string(s)) {
		return errors.New("must be a 32 byte hex string")
	}
	return nil
}

func hexAddress(value any) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errors.New("must be a hex encoded address")
	}
	return nil
}

func positiveDecimal(value any) error {
	d, _ := value.(decimal.Decimal)
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func notBelow(min decimal.Decimal) validation.RuleFunc {
	return func(value any) error {
		d, _ := value.(decimal.Decimal)
		if d.LessThan(min) {
			return fmt.Errorf("must not be less than %s", min)
		}
		return nil
	}
}

func timezone(value any) error {
	s, _ := value.(string)
	if _, err := time.LoadLocation(s); err != nil {
		return errors.New("must be a known IANA timezone")
	}
	return nil
}
