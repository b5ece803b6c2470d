package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Auth      AuthConfig
	Asaas     AsaasConfig
	Billing   BillingConfig
	Assistant AssistantConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// AuthConfig contains signup/login specific configuration
type AuthConfig struct {
	TrialDays  int
	BcryptCost int
}

// AsaasConfig contains the payment gateway configuration
type AsaasConfig struct {
	BaseURL      string
	APIKey       string
	WebhookToken string
	Timeout      int // in seconds
}

// BillingConfig contains subscription/billing configuration
type BillingConfig struct {
	// CompEmails always report an active subscription, bypassing storage
	CompEmails     []string
	StatusCacheTTL int // in seconds
}

// AssistantConfig contains the hosted LLM gateway configuration
type AssistantConfig struct {
	BaseURL    string
	APIKey     string
	Model      string
	DailyLimit int
	Timeout    int // in seconds
}

// NewRelicConfig contains New Relic monitoring configuration
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string // "file" or "stdout"
}
