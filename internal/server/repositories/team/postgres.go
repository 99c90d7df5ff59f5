// Package team stores the members shown on the welcome page.
package team

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListActive(ctx context.Context) ([]*models.TeamMember, error) {
	query :=
		`SELECT t.id, t.profile_id, t.position, t.created_at,
		        TRIM(u.first_name || ' ' || u.last_name), p.job_title, p.picture,
		        COALESCE(p.about, ''), COALESCE(p.facebook, ''), COALESCE(p.instagram, ''),
		        COALESCE(p.twitter, ''), COALESCE(p.linkedin, '')
		 FROM team_members t
		 JOIN profiles p ON p.id = t.profile_id
		 JOIN users u ON u.id = p.user_id
		 ORDER BY t.position, t.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.TeamMember
	for rows.Next() {
		m := &models.TeamMember{}
		var profileID int64
		if err := rows.Scan(&m.ID, &profileID, &m.Position, &m.CreatedAt,
			&m.Name, &m.JobTitle, &m.Picture,
			&m.About, &m.Facebook, &m.Instagram, &m.Twitter, &m.Linkedin); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		m.ProfileID = &profileID
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, profileID int64, position int) (*models.TeamMember, error) {
	m := &models.TeamMember{ProfileID: &profileID, Position: position}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO team_members (profile_id, position) VALUES ($1, $2) RETURNING id, created_at`,
		profileID, position).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}
