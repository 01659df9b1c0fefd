package structs

import "time"

type Config struct {
	Server    *ServerConfig
	Cors      *CorsConfig
	Database  *DatabaseConfig
	Auth      *AuthConfig
	Cache     *CacheConfig
	RateLimit *RateLimitConfig
	Otp       *OtpConfig
	Sms       *SmsConfig
	Email     *EmailConfig
	Imgbb     *ImgbbConfig
	Invoice   *InvoiceConfig
	Site      *SiteConfig
	Contact   *ContactConfig
}

type ServerConfig struct {
	AppName        string
	Environment    string // development, production
	Port           string // ":8084"
	ServerURL      string // public base URL of this API
	FrontendURL    string // storefront base URL
	CookieDomain   string // cross-subdomain cookie domain in production
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration
	MaxIdleTime  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type AuthConfig struct {
	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenSecret string
	RefreshTokenExpiry time.Duration
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	ProductCacheTTL time.Duration
	GuestSessionTTL time.Duration
}

type RateLimitConfig struct {
	Enabled         bool
	GeneralLimit    int
	GeneralWindow   time.Duration
	AuthLimit       int
	AuthWindow      time.Duration
	AdminLimit      int
	AdminWindow     time.Duration
	ExpensiveLimit  int
	ExpensiveWindow time.Duration
}

type OtpConfig struct {
	Length int           // digits per code
	TTL    time.Duration // code lifetime in the cache
}

type SmsConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type EmailConfig struct {
	ApiKey string
	From   string
}

type ImgbbConfig struct {
	ApiKey    string
	UploadURL string
}

type InvoiceConfig struct {
	// Path to the wkhtmltopdf binary. Empty means look it up on PATH.
	WkhtmltopdfPath string
}

// SiteConfig holds storefront-wide settings. It is loaded at startup and
// rebuilt by config.Reload instead of living in a single-row table.
type SiteConfig struct {
	SiteName          string
	DefaultCurrency   string
	LowStockThreshold int
}

// ContactConfig holds the public contact details shown on the storefront.
type ContactConfig struct {
	Address      string
	Phone        string
	Email        string
	WorkingHours string
}
