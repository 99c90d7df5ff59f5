package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/repomanager"
)

// WelcomeService backs the public pages.
type WelcomeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewWelcomeService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *WelcomeService {
	return &WelcomeService{db: db, repomanager: m, logger: logger.With("module", "welcome")}
}

// TeamMembers returns the members whose profile still exists.
func (s *WelcomeService) TeamMembers(ctx context.Context) ([]*models.TeamMember, error) {
	return s.repomanager.Team(s.db).ListActive(ctx)
}

func (s *WelcomeService) SubmitContact(ctx context.Context, m *models.ContactMessage) error {
	saved, err := s.repomanager.Contacts(s.db).Create(ctx, m)
	if err != nil {
		return err
	}
	s.logger.Info(ctx, "contact message received", "id", saved.ID)
	return nil
}

// AddTeamMember puts the profile of username on the welcome page.
func (s *WelcomeService) AddTeamMember(ctx context.Context, username string, position int) (*models.TeamMember, error) {
	user, err := s.repomanager.Users(s.db).GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	profile, err := s.repomanager.Profiles(s.db).GetByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Team(s.db).Create(ctx, profile.ID, position)
}
