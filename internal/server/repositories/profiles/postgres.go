// Package profiles stores user profiles in PostgreSQL. Optional text columns
// are NULL in the database and empty strings in models.Profile.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the empty profile of userID with the default picture.
func (r *PostgresRepository) Create(ctx context.Context, userID int64) (*models.Profile, error) {
	query :=
		`INSERT INTO profiles (user_id, picture)
		 VALUES ($1, $2)
		 RETURNING id, created_at, last_update`

	p := &models.Profile{UserID: userID, Picture: common.DefaultAvatar}
	err := r.db.QueryRowContext(ctx, query, userID, p.Picture).Scan(&p.ID, &p.CreatedAt, &p.LastUpdate)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	query :=
		`SELECT id, user_id, job_title, picture, COALESCE(about, ''), COALESCE(facebook, ''),
		        COALESCE(instagram, ''), COALESCE(twitter, ''), COALESCE(linkedin, ''), created_at, last_update
		 FROM profiles
		 WHERE user_id = $1`

	p := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.JobTitle, &p.Picture, &p.About, &p.Facebook,
		&p.Instagram, &p.Twitter, &p.Linkedin, &p.CreatedAt, &p.LastUpdate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// Update saves every editable field of profile and bumps last_update.
func (r *PostgresRepository) Update(ctx context.Context, profile *models.Profile) error {
	query :=
		`UPDATE profiles
		 SET job_title = $1, picture = $2, about = NULLIF($3, ''), facebook = NULLIF($4, ''),
		     instagram = NULLIF($5, ''), twitter = NULLIF($6, ''), linkedin = NULLIF($7, ''),
		     last_update = now()
		 WHERE user_id = $8
		 RETURNING last_update`

	err := r.db.QueryRowContext(ctx, query,
		profile.JobTitle, profile.Picture, profile.About, profile.Facebook,
		profile.Instagram, profile.Twitter, profile.Linkedin, profile.UserID).Scan(&profile.LastUpdate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
