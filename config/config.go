package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "1M"
	defaultMaxUploadSize      = "50M"
	defaultTokenTTL           = 30 * 24 * time.Hour
	defaultCookieName         = "jwt"
	defaultConnectAttempts    = 5
	defaultConnectDelay       = 5 * time.Second
	defaultBucket             = "anti-print"
	defaultRegion             = "us-east-1"
	defaultLocalEndpoint      = "http://localhost:9000"
	defaultSignedURLExpiry    = time.Hour
	defaultAnalyzeTimeout     = 30 * time.Second
	defaultConvertTimeout     = 2 * time.Minute
	defaultConverterBinary    = "soffice"
	defaultCleanupSchedule    = "0 * * * *"
	defaultCleanupRetention   = 24 * time.Hour
	defaultCleanupBatchSize   = 1000
	defaultConversionWorkers  = 2
	defaultConversionQueue    = 64
	defaultRealtimeChannel    = "printshop:events"
	defaultMetricsPath        = "/metrics"
)

// EnvProduction is the env name that disables development defaults.
const EnvProduction = "production"

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int      `json:"port" yaml:"port"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database controls startup connection behaviour.
	Database DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Storage *StorageConfig `json:"storage" yaml:"storage"`

	Upload *UploadConfig `json:"upload" yaml:"upload"`

	// Document configures the external page-count analyzer and office converter.
	Document *DocumentConfig `json:"document" yaml:"document"`

	Conversion *ConversionConfig `json:"conversion" yaml:"conversion"`

	// PubSub configuration for conversion job publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Cleanup *CleanupConfig `json:"cleanup" yaml:"cleanup"`

	Realtime *RealtimeConfig `json:"realtime" yaml:"realtime"`

	// Firebase configuration for topic push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for shop QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines how hard startup tries to reach PostgreSQL.
type DatabaseConfig struct {
	ConnectAttempts int           `json:"connectAttempts" yaml:"connectAttempts"`
	ConnectDelay    time.Duration `json:"connectDelay" yaml:"connectDelay"`
	AutoMigrate     bool          `json:"autoMigrate" yaml:"autoMigrate"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
}

// StorageConfig selects and configures the object store.
type StorageConfig struct {
	// Driver is one of "s3", "file" or "mem".
	Driver          string        `json:"driver" yaml:"driver"`
	Bucket          string        `json:"bucket" yaml:"bucket"`
	Endpoint        string        `json:"endpoint" yaml:"endpoint"`
	Region          string        `json:"region" yaml:"region"`
	AccessKey       string        `json:"accessKey" yaml:"accessKey"`
	SecretKey       string        `json:"secretKey" yaml:"secretKey"`
	ForcePathStyle  *bool         `json:"forcePathStyle" yaml:"forcePathStyle"`
	CreateBucket    bool          `json:"createBucket" yaml:"createBucket"`
	LocalDir        string        `json:"localDir" yaml:"localDir"`
	SignedURLExpiry time.Duration `json:"signedUrlExpiry" yaml:"signedUrlExpiry"`
}

// UploadConfig limits multipart uploads.
type UploadConfig struct {
	MaxFileSize string `json:"maxFileSize" yaml:"maxFileSize"`
}

// DocumentConfig defines the external tooling used to inspect and convert documents.
type DocumentConfig struct {
	// PDFInfoCommand prints "Pages: N" for a PDF path appended as last argument.
	PDFInfoCommand  []string      `json:"pdfInfoCommand" yaml:"pdfInfoCommand"`
	AnalyzeTimeout  time.Duration `json:"analyzeTimeout" yaml:"analyzeTimeout"`
	ConverterBinary string        `json:"converterBinary" yaml:"converterBinary"`
	ConvertTimeout  time.Duration `json:"convertTimeout" yaml:"convertTimeout"`
}

// ConversionConfig sizes the in-process conversion queue.
type ConversionConfig struct {
	Workers   int `json:"workers" yaml:"workers"`
	QueueSize int `json:"queueSize" yaml:"queueSize"`
}

// PubSubConfig defines Pub/Sub configuration for conversion jobs
type PubSubConfig struct {
	// Provider type: "" or "inprocess" runs jobs inside the API, "local" posts to a worker, "google" uses Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// CleanupConfig drives the scheduled storage sweep.
type CleanupConfig struct {
	Enabled   bool          `json:"enabled" yaml:"enabled"`
	Schedule  string        `json:"schedule" yaml:"schedule"`
	Retention time.Duration `json:"retention" yaml:"retention"`
	BatchSize int           `json:"batchSize" yaml:"batchSize"`
}

// RealtimeConfig configures WebSocket fan-out.
type RealtimeConfig struct {
	// Redis enables cross-instance event relay when set.
	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines a Redis pub/sub connection.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Channel  string `json:"channel" yaml:"channel"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// IsProduction reports whether development defaults must be disabled.
func (c *Config) IsProduction() bool {
	return c.Env.Env == EnvProduction
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Example: STORAGE_FORCEPATHSTYLE -> storage.forcePathStyle
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	cfg.Postgres.Replicas = buildReplicasFromEnv()

	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Postgres == nil {
		return errors.New("postgres connection is not configured")
	}
	if strings.TrimSpace(c.SecretKey.Access) == "" {
		return errors.New("token signing key (secretKey.access) is not configured")
	}

	return nil
}

// ApplyDefaults fills optional sections so consumers never nil-check them.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Database.ConnectAttempts <= 0 {
		c.Database.ConnectAttempts = defaultConnectAttempts
	}
	if c.Database.ConnectDelay <= 0 {
		c.Database.ConnectDelay = defaultConnectDelay
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = defaultTokenTTL
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = defaultCookieName
	}

	c.applyStorageDefaults()

	if c.Upload == nil {
		c.Upload = &UploadConfig{}
	}
	if c.Upload.MaxFileSize == "" {
		c.Upload.MaxFileSize = defaultMaxUploadSize
	}

	if c.Document == nil {
		c.Document = &DocumentConfig{}
	}
	if len(c.Document.PDFInfoCommand) == 0 {
		c.Document.PDFInfoCommand = []string{"pdfinfo"}
	}
	if c.Document.AnalyzeTimeout <= 0 {
		c.Document.AnalyzeTimeout = defaultAnalyzeTimeout
	}
	if c.Document.ConverterBinary == "" {
		c.Document.ConverterBinary = defaultConverterBinary
	}
	if c.Document.ConvertTimeout <= 0 {
		c.Document.ConvertTimeout = defaultConvertTimeout
	}

	if c.Conversion == nil {
		c.Conversion = &ConversionConfig{}
	}
	if c.Conversion.Workers <= 0 {
		c.Conversion.Workers = defaultConversionWorkers
	}
	if c.Conversion.QueueSize <= 0 {
		c.Conversion.QueueSize = defaultConversionQueue
	}

	if c.Cleanup == nil {
		c.Cleanup = &CleanupConfig{Enabled: true}
	}
	if c.Cleanup.Schedule == "" {
		c.Cleanup.Schedule = defaultCleanupSchedule
	}
	if c.Cleanup.Retention <= 0 {
		c.Cleanup.Retention = defaultCleanupRetention
	}
	if c.Cleanup.BatchSize <= 0 || c.Cleanup.BatchSize > defaultCleanupBatchSize {
		c.Cleanup.BatchSize = defaultCleanupBatchSize
	}

	if c.Realtime != nil && c.Realtime.Redis != nil && c.Realtime.Redis.Channel == "" {
		c.Realtime.Redis.Channel = defaultRealtimeChannel
	}

	if c.Metrics != nil && c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}

func (c *Config) applyStorageDefaults() {
	if c.Storage == nil {
		c.Storage = &StorageConfig{}
	}

	s := c.Storage
	if s.Driver == "" {
		s.Driver = "s3"
	}
	if s.Bucket == "" {
		s.Bucket = defaultBucket
	}
	if s.Region == "" {
		s.Region = defaultRegion
	}
	if s.SignedURLExpiry <= 0 {
		s.SignedURLExpiry = defaultSignedURLExpiry
	}

	// MinIO defaults for local development.
	if !c.IsProduction() {
		if s.Endpoint == "" {
			s.Endpoint = defaultLocalEndpoint
		}
		if s.AccessKey == "" {
			s.AccessKey = "minioadmin"
		}
		if s.SecretKey == "" {
			s.SecretKey = "minioadmin"
		}
	}

	if s.ForcePathStyle == nil {
		forcePathStyle := !c.IsProduction()
		s.ForcePathStyle = &forcePathStyle
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from POSTGRES_REPLICAS_{index}_{field} variables.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
