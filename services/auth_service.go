package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/argon2"
)

var DefaultParams = &structs.ArgonParams{
	Memory:  64 * 1024, // 64 MB
	Time:    1,
	Threads: 4,
	KeyLen:  32,
	SaltLen: 16,
}

type AuthService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB, cacheService *CacheService) *AuthService {
	return &AuthService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
	}
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}

func (as *AuthService) Login(ctx context.Context, authRequest *structs.AuthRequest) (*tables.User, error) {
	user, err := database.Query[tables.User](as.db).Where("email", authRequest.Email).First(ctx)
	if err != nil {
		mappedErr := lib.MapPgError(err)
		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
			)
		}
		// Always return invalid credentials (don't leak user existence)
		return nil, lib.ErrInvalidCredentials
	}

	if user == nil {
		as.logger.Debug("User not found during login attempt", gecho.Field("identifier", authRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := as.VerifyPassword(authRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt", gecho.Field("user_id", user.Id))
		return nil, lib.ErrInvalidCredentials
	}

	user.PasswordHash = ""

	if cacheErr := as.cacheService.SetUserInCache(user); cacheErr != nil {
		as.logger.Warn("Failed to set user in cache after login", gecho.Field("error", cacheErr), gecho.Field("user_id", user.Id))
	}

	return user, nil
}

// Register creates the user together with their cart and wishlist. Every
// account has exactly one of each from the moment it exists.
func (as *AuthService) Register(ctx context.Context, registerRequest *structs.RegisterRequest) (user *tables.User, err error) {
	passwordHash, err := as.HashPassword(registerRequest.Password, DefaultParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user = &tables.User{
		Id:           uuid.New(),
		Username:     registerRequest.Username,
		Email:        registerRequest.Email,
		Phone:        registerRequest.Phone,
		PasswordHash: passwordHash,
		Role:         "user",
		CreatedAt:    time.Now(),
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		cart := &tables.Cart{Id: uuid.New(), UserId: user.Id, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		if _, err := tx.NewInsert().Model(cart).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		wishlist := &tables.Wishlist{Id: uuid.New(), UserId: user.Id, CreatedAt: time.Now()}
		if _, err := tx.NewInsert().Model(wishlist).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		return nil
	})
	if err != nil {
		if lib.IsUniqueViolation(err) {
			as.logger.Warn("Registration failed, duplicate user",
				gecho.Field("username", registerRequest.Username),
				gecho.Field("email", registerRequest.Email),
			)
		} else {
			as.logger.Error("Database error during registration",
				gecho.Field("error", err),
				gecho.Field("username", registerRequest.Username),
			)
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUserById prefers the cache and falls back to the database.
func (as *AuthService) GetUserById(ctx context.Context, id uuid.UUID) (*tables.User, error) {
	if cached, err := as.cacheService.GetUserFromCache(id); err == nil && cached != nil {
		return cached, nil
	}

	user, err := database.FindByID[tables.User](as.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

func (as *AuthService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *structs.UpdateProfileRequest) (*tables.User, error) {
	updates := map[string]any{}
	if req.Username != "" {
		updates["username"] = req.Username
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}

	if len(updates) > 0 {
		if _, err := database.UpdateByID[tables.User](as.db, ctx, userId, updates); err != nil {
			return nil, lib.MapPgError(err)
		}
	}

	if err := as.cacheService.InvalidateUser(userId); err != nil {
		as.logger.Warn("Failed to invalidate cached user", gecho.Field("error", err), gecho.Field("user_id", userId))
	}

	return as.GetUserById(ctx, userId)
}

// GenerateTokens issues the access/refresh token pair for a user.
func (as *AuthService) GenerateTokens(user *tables.User) (accessToken, refreshToken string, err error) {
	accessToken, err = lib.GenerateToken(user.Id, user.Email, user.Role, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err = lib.GenerateToken(user.Id, user.Email, user.Role, as.cfg.Auth.RefreshTokenSecret, as.cfg.Auth.RefreshTokenExpiry)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Address book

func (as *AuthService) ListAddresses(ctx context.Context, userId uuid.UUID) ([]tables.Address, error) {
	addresses, err := database.Query[tables.Address](as.db).
		Where("user_id", userId).
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return addresses, nil
}

func (as *AuthService) CreateAddress(ctx context.Context, userId uuid.UUID, req *structs.AddressRequest) (*tables.Address, error) {
	address := &tables.Address{
		Id:         uuid.New(),
		UserId:     userId,
		Name:       req.Name,
		Street:     req.Street,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		IsDefault:  req.IsDefault,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	err := database.Transaction(ctx, func(tx bun.Tx) error {
		if req.IsDefault {
			// Only one default address per user.
			if _, err := tx.NewUpdate().Model((*tables.Address)(nil)).
				Set("is_default = ?", false).
				Where("user_id = ?", userId).
				Exec(ctx); err != nil {
				return err
			}
		}
		_, err := tx.NewInsert().Model(address).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return address, nil
}

func (as *AuthService) DeleteAddress(ctx context.Context, userId, addressId uuid.UUID) error {
	deleted, err := database.Query[tables.Address](as.db).
		Where("id", addressId).
		Where("user_id", userId).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// Password hashing

func (as *AuthService) HashPassword(password string, params *structs.ArgonParams) (string, error) {
	salt := make([]byte, params.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory,
		params.Time,
		params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)

	return encoded, nil
}

func (as *AuthService) VerifyPassword(password, encodedHash string) (bool, error) {
	parts, err := lib.DecodeArgon2Hash(encodedHash)
	if err != nil {
		return false, err
	}

	computed := argon2.IDKey([]byte(password), parts.Salt, parts.Time, parts.Memory, parts.Threads, parts.KeyLen)

	return lib.SecureCompare(parts.Hash, computed), nil
}
