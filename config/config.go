package config

import (
	"homifyhub_server/structs"
	"sync"
	"time"
)

var (
	configInstance *structs.Config
	configMu       sync.RWMutex
)

func GetConfig() *structs.Config {
	configMu.RLock()
	if configInstance != nil {
		defer configMu.RUnlock()
		return configInstance
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()
	if configInstance == nil {
		configInstance = load()
	}
	return configInstance
}

// Reload rebuilds the configuration from the environment. Site and contact
// settings have no dedicated table, so this is how an operator applies changes
// to them without a restart.
func Reload() *structs.Config {
	configMu.Lock()
	defer configMu.Unlock()
	configInstance = load()
	return configInstance
}

func load() *structs.Config {
	return &structs.Config{
		Server: &structs.ServerConfig{
			AppName:        getEnvAsString("APP_NAME", "HomifyHub"),
			Environment:    getEnvAsString("APP_ENV", "development"),
			Port:           getEnvAsString("APP_PORT", ":8084"),
			ServerURL:      getEnvAsString("SERVER_URL", "http://localhost:8084"),
			FrontendURL:    getEnvAsString("FRONTEND_URL", "http://localhost:3000"),
			CookieDomain:   getEnvAsString("COOKIE_DOMAIN", ""),
			ReadTimeout:    getEnvAsTimeDuration("SERVER_READ_TIME_OUT", 15*time.Second),
			WriteTimeout:   getEnvAsTimeDuration("SERVER_WRITE_TIME_OUT", 15*time.Second),
			IdleTimeout:    getEnvAsTimeDuration("SERVER_IDLE_TIME_OUT", 60*time.Second),
			MaxHeaderBytes: getEnvAsInt("SERVER_MAX_HEADER_BYTES", 1<<20), // 1 MB
		},
		Cors: &structs.CorsConfig{
			AllowedOrigins:   getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
			AllowedMethods:   getEnvAsSlice("CORS_ALLOW_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders:   getEnvAsSlice("CORS_ALLOW_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token"}),
			ExposedHeaders:   getEnvAsSlice("CORS_EXPOSED_HEADERS", []string{"Content-Length", "Content-Disposition"}),
			AllowCredentials: getEnvAsBool("CORS_ALLOW_CREDENTIALS", true),
			MaxAge:           getEnvAsInt("CORS_MAX_AGE", 300),
		},
		Database: &structs.DatabaseConfig{
			Host:         getEnvAsString("DB_HOST", "localhost"),
			Port:         getEnvAsInt("DB_PORT", 5432),
			User:         getEnvAsString("DB_USER", "postgres"),
			Password:     getEnvAsString("DB_PASSWORD", "password"),
			Name:         getEnvAsString("DB_NAME", "homifyhub_db"),
			MaxConns:     getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:     getEnvAsInt("DB_MIN_CONNS", 2),
			MaxLifetime:  getEnvAsTimeDuration("DB_MAX_LIFETIME", 30*time.Minute),
			MaxIdleTime:  getEnvAsTimeDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
			ReadTimeout:  getEnvAsTimeDuration("DB_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getEnvAsTimeDuration("DB_WRITE_TIMEOUT", 5*time.Second),
		},
		Auth: &structs.AuthConfig{
			AccessTokenSecret:  getEnvAsString("AUTH_ACCESS_TOKEN_SECRET", "default_access_secret"),
			AccessTokenExpiry:  getEnvAsTimeDuration("AUTH_ACCESS_TOKEN_EXPIRY", 15*time.Minute),
			RefreshTokenSecret: getEnvAsString("AUTH_REFRESH_TOKEN_SECRET", "default_refresh_secret"),
			RefreshTokenExpiry: getEnvAsTimeDuration("AUTH_REFRESH_TOKEN_EXPIRY", 7*24*time.Hour),
		},
		Cache: &structs.CacheConfig{
			Address:         getEnvAsString("REDIS_ADDRESS", "localhost:6379"),
			Username:        getEnvAsString("REDIS_USERNAME", ""),
			Password:        getEnvAsString("REDIS_PASSWORD", ""),
			DB:              getEnvAsInt("REDIS_DB", 0),
			PoolSize:        getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns:    getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
			MaxIdleConns:    getEnvAsInt("REDIS_MAX_IDLE_CONNS", 5),
			PoolTimeout:     getEnvAsTimeDuration("REDIS_POOL_TIMEOUT", 30*time.Second),
			IdleTimeout:     getEnvAsTimeDuration("REDIS_IDLE_TIMEOUT", 5*time.Minute),
			DialTimeout:     getEnvAsTimeDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:     getEnvAsTimeDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout:    getEnvAsTimeDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			MaxRetries:      getEnvAsInt("REDIS_MAX_RETRIES", 3),
			MinRetryBackoff: getEnvAsTimeDuration("REDIS_MIN_RETRY_BACKOFF", 100*time.Millisecond),
			MaxRetryBackoff: getEnvAsTimeDuration("REDIS_MAX_RETRY_BACKOFF", 2*time.Second),
			ProductCacheTTL: getEnvAsTimeDuration("REDIS_PRODUCT_CACHE_TTL", 10*time.Minute),
			GuestSessionTTL: getEnvAsTimeDuration("REDIS_GUEST_SESSION_TTL", 7*24*time.Hour),
		},
		RateLimit: &structs.RateLimitConfig{
			Enabled:         getEnvAsBool("RATE_LIMIT_ENABLED", true),
			GeneralLimit:    getEnvAsInt("RATE_LIMIT_GENERAL", 120),
			GeneralWindow:   getEnvAsTimeDuration("RATE_LIMIT_GENERAL_WINDOW", time.Minute),
			AuthLimit:       getEnvAsInt("RATE_LIMIT_AUTH", 10),
			AuthWindow:      getEnvAsTimeDuration("RATE_LIMIT_AUTH_WINDOW", time.Minute),
			AdminLimit:      getEnvAsInt("RATE_LIMIT_ADMIN", 60),
			AdminWindow:     getEnvAsTimeDuration("RATE_LIMIT_ADMIN_WINDOW", time.Minute),
			ExpensiveLimit:  getEnvAsInt("RATE_LIMIT_EXPENSIVE", 30),
			ExpensiveWindow: getEnvAsTimeDuration("RATE_LIMIT_EXPENSIVE_WINDOW", time.Minute),
		},
		Otp: &structs.OtpConfig{
			Length: getEnvAsInt("OTP_LENGTH", 6),
			TTL:    getEnvAsTimeDuration("OTP_TTL", 5*time.Minute),
		},
		Sms: &structs.SmsConfig{
			AccountSID: getEnvAsString("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnvAsString("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnvAsString("TWILIO_FROM_NUMBER", ""),
		},
		Email: &structs.EmailConfig{
			ApiKey: getEnvAsString("RESEND_API_KEY", ""),
			From:   getEnvAsString("EMAIL_FROM", "HomifyHub <no-reply@homifyhub.com>"),
		},
		Imgbb: &structs.ImgbbConfig{
			ApiKey:    getEnvAsString("IMGBB_API_KEY", ""),
			UploadURL: getEnvAsString("IMGBB_UPLOAD_URL", "https://api.imgbb.com/1/upload"),
		},
		Invoice: &structs.InvoiceConfig{
			WkhtmltopdfPath: getEnvAsString("WKHTMLTOPDF_PATH", ""),
		},
		Site: &structs.SiteConfig{
			SiteName:          getEnvAsString("SITE_NAME", "HomifyHub"),
			DefaultCurrency:   getEnvAsString("SITE_CURRENCY", "BDT"),
			LowStockThreshold: getEnvAsInt("SITE_LOW_STOCK_THRESHOLD", 5),
		},
		Contact: &structs.ContactConfig{
			Address:      getEnvAsString("CONTACT_ADDRESS", ""),
			Phone:        getEnvAsString("CONTACT_PHONE", ""),
			Email:        getEnvAsString("CONTACT_EMAIL", ""),
			WorkingHours: getEnvAsString("CONTACT_WORKING_HOURS", ""),
		},
	}
}

func GetLogLevel() string {
	if GetConfig().Server.Environment == "production" {
		return "info"
	}
	return "debug"
}

func IsProduction() bool {
	return GetConfig().Server.Environment == "production"
}
