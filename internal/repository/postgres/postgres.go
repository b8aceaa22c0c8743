package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"shortlink/domain/models"
)

const (
	storageMaxOpenConnections     = 5
	storageMaxIdleConnections     = 2
	storageConnectionsMaxIdleTime = 2 * time.Minute
	storageConnectionsLifetime    = 30 * time.Minute
	storagePingTimeout            = 5 * time.Second
)

const pgErrCodeUniqueViolation = "23505"

// Storage persists users and short links in Postgres via pgx.
type Storage struct {
	db *sql.DB
}

func NewStorage(ctx context.Context, dsn string) (*Storage, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	initConnectionPools(db)

	ctxPing, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := db.PingContext(ctxPing); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return &Storage{db: db}, nil
}

func initConnectionPools(db *sql.DB) {
	db.SetMaxOpenConns(storageMaxOpenConnections)
	db.SetMaxIdleConns(storageMaxIdleConnections)
	db.SetConnMaxIdleTime(storageConnectionsMaxIdleTime)
	db.SetConnMaxLifetime(storageConnectionsLifetime)
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT UNIQUE NOT NULL,
			password_hash TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS short_links (
			id UUID PRIMARY KEY,
			short_code VARCHAR(30) UNIQUE NOT NULL,
			full_url TEXT NOT NULL,
			clicks BIGINT NOT NULL DEFAULT 0,
			user_id UUID,
			created_at TIMESTAMPTZ NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create short_links table: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_short_links_user_id ON short_links (user_id)`)
	if err != nil {
		return fmt.Errorf("failed to create short_links index: %w", err)
	}

	return nil
}

// Migrate creates the schema without holding a Storage open. Used by the
// migrate CLI command.
func Migrate(ctx context.Context, dsn string) error {
	s, err := NewStorage(ctx, dsn)
	if err != nil {
		return err
	}
	return s.Close()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

func (p *Storage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == uuid.Nil || user.Email == "" {
		return models.User{}, models.ErrInvalidData
	}

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password_hash, avatar, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: email already registered", models.ErrConflict)
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (p *Storage) UserGetByEmail(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, fmt.Errorf("%w: email must not be empty", models.ErrInvalidData)
	}

	var user models.User
	err := p.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Avatar, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user not found", models.ErrUnfound)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (p *Storage) UserGetByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	if id == uuid.Nil {
		return models.User{}, fmt.Errorf("%w: id must not be empty", models.ErrInvalidData)
	}

	var user models.User
	err := p.db.QueryRowContext(ctx, `
		SELECT id, name, email, password_hash, avatar, created_at
		FROM users WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Avatar, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user not found", models.ErrUnfound)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (p *Storage) ShortLinkCreate(ctx context.Context, link models.ShortLink) (models.ShortLink, error) {
	if link.ID == uuid.Nil || link.ShortCode == "" || link.FullURL == "" {
		return models.ShortLink{}, models.ErrInvalidData
	}

	userID := sql.NullString{}
	if link.UserID != uuid.Nil {
		userID = sql.NullString{String: link.UserID.String(), Valid: true}
	}

	_, err := p.db.ExecContext(ctx, `
		INSERT INTO short_links (id, short_code, full_url, clicks, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		link.ID, link.ShortCode, link.FullURL, link.Clicks, userID, link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return models.ShortLink{}, fmt.Errorf("%w: short code already taken", models.ErrConflict)
		}
		return models.ShortLink{}, fmt.Errorf("failed to create short link: %w", err)
	}

	return link, nil
}

func (p *Storage) ShortLinkGetByCode(ctx context.Context, shortCode string) (models.ShortLink, error) {
	if shortCode == "" {
		return models.ShortLink{}, fmt.Errorf("%w: short code must not be empty", models.ErrInvalidData)
	}

	var link models.ShortLink
	var userID sql.NullString
	err := p.db.QueryRowContext(ctx, `
		SELECT id, short_code, full_url, clicks, user_id, created_at
		FROM short_links WHERE short_code = $1`,
		shortCode,
	).Scan(&link.ID, &link.ShortCode, &link.FullURL, &link.Clicks, &userID, &link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShortLink{}, fmt.Errorf("%w: short code not found", models.ErrUnfound)
		}
		return models.ShortLink{}, fmt.Errorf("failed to get short link: %w", err)
	}

	if err := scanOwner(&link, userID); err != nil {
		return models.ShortLink{}, err
	}
	return link, nil
}

// ShortLinkIncrementClicks bumps the counter in a single statement, so
// concurrent redirects never lose an increment.
func (p *Storage) ShortLinkIncrementClicks(ctx context.Context, shortCode string) (models.ShortLink, error) {
	if shortCode == "" {
		return models.ShortLink{}, fmt.Errorf("%w: short code must not be empty", models.ErrInvalidData)
	}

	var link models.ShortLink
	var userID sql.NullString
	err := p.db.QueryRowContext(ctx, `
		UPDATE short_links SET clicks = clicks + 1
		WHERE short_code = $1
		RETURNING id, short_code, full_url, clicks, user_id, created_at`,
		shortCode,
	).Scan(&link.ID, &link.ShortCode, &link.FullURL, &link.Clicks, &userID, &link.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ShortLink{}, fmt.Errorf("%w: short code not found", models.ErrUnfound)
		}
		return models.ShortLink{}, fmt.Errorf("failed to increment clicks: %w", err)
	}

	if err := scanOwner(&link, userID); err != nil {
		return models.ShortLink{}, err
	}
	return link, nil
}

func (p *Storage) ShortLinkListByUser(ctx context.Context, userID uuid.UUID) ([]models.ShortLink, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id must not be empty", models.ErrInvalidData)
	}

	rows, err := p.db.QueryContext(ctx, `
		SELECT id, short_code, full_url, clicks, user_id, created_at
		FROM short_links WHERE user_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query short links: %w", err)
	}
	defer rows.Close()

	var links []models.ShortLink
	for rows.Next() {
		var link models.ShortLink
		var owner sql.NullString
		if err := rows.Scan(&link.ID, &link.ShortCode, &link.FullURL, &link.Clicks, &owner, &link.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan short link: %w", err)
		}
		if err := scanOwner(&link, owner); err != nil {
			return nil, err
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return links, nil
}

func scanOwner(link *models.ShortLink, owner sql.NullString) error {
	if !owner.Valid {
		link.UserID = uuid.Nil
		return nil
	}
	id, err := uuid.Parse(owner.String)
	if err != nil {
		return fmt.Errorf("failed to parse owner id: %w", err)
	}
	link.UserID = id
	return nil
}

func (p *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, storagePingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (p *Storage) Close() error {
	if err := p.db.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
