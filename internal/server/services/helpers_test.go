package services

import (
	"bytes"
	"context"
	"database/sql"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/subcategories"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/team"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/users"
	"github.com/stretchr/testify/require"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeRepoManager hands out the same fake for every DBTX.
type fakeRepoManager struct {
	users    *fakeUsersRepo
	profiles *fakeProfilesRepo
	cats     categories.Repository
	team     *fakeTeamRepo
	contacts *fakeContactsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return m.users }
func (m *fakeRepoManager) Profiles(dbx.DBTX) profiles.Repository           { return m.profiles }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository       { return m.cats }
func (m *fakeRepoManager) SubCategories(dbx.DBTX) subcategories.Repository { return nil }
func (m *fakeRepoManager) Products(dbx.DBTX) products.Repository           { return nil }
func (m *fakeRepoManager) Team(dbx.DBTX) team.Repository                   { return m.team }
func (m *fakeRepoManager) Contacts(dbx.DBTX) contacts.Repository           { return m.contacts }

type fakeUsersRepo struct {
	byName    map[string]*models.User
	nextID    int64
	createErr error
	updateErr error
	updated   *models.User
	password  []byte
}

func newFakeUsers() *fakeUsersRepo {
	return &fakeUsersRepo{byName: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.byName[u.Username]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	u.ID = f.nextID
	f.byName[u.Username] = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if u, ok := f.byName[username]; ok {
		return u, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdateAccount(ctx context.Context, u *models.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = u
	return nil
}

func (f *fakeUsersRepo) UpdatePassword(ctx context.Context, id int64, hash []byte) error {
	f.password = hash
	return nil
}

type fakeProfilesRepo struct {
	byUser    map[int64]*models.Profile
	createErr error
	updateErr error
	updates   int
}

func newFakeProfiles() *fakeProfilesRepo {
	return &fakeProfilesRepo{byUser: map[int64]*models.Profile{}}
}

func (f *fakeProfilesRepo) Create(ctx context.Context, userID int64) (*models.Profile, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	p := &models.Profile{ID: userID * 10, UserID: userID, Picture: common.DefaultAvatar}
	f.byUser[userID] = p
	return p, nil
}

func (f *fakeProfilesRepo) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	if p, ok := f.byUser[userID]; ok {
		return p, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeProfilesRepo) Update(ctx context.Context, p *models.Profile) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates++
	f.byUser[p.UserID] = p
	return nil
}

type fakeTeamRepo struct {
	members []*models.TeamMember
}

func (f *fakeTeamRepo) ListActive(ctx context.Context) ([]*models.TeamMember, error) {
	return f.members, nil
}

func (f *fakeTeamRepo) Create(ctx context.Context, profileID int64, position int) (*models.TeamMember, error) {
	m := &models.TeamMember{ID: int64(len(f.members) + 1), ProfileID: &profileID, Position: position}
	f.members = append(f.members, m)
	return m, nil
}

type fakeContactsRepo struct {
	saved []*models.ContactMessage
	err   error
}

func (f *fakeContactsRepo) Create(ctx context.Context, m *models.ContactMessage) (*models.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	m.ID = int64(len(f.saved) + 1)
	f.saved = append(f.saved, m)
	return m, nil
}

// memCategories is an owner-filtering in-memory categories repository.
type memCategories struct {
	rows   map[int64]*models.Category
	nextID int64
	// ignoreOwner makes GetForOwner skip its filter.
	ignoreOwner bool
	writeErr    error
}

func newMemCategories() *memCategories {
	return &memCategories{rows: map[int64]*models.Category{}}
}

func (m *memCategories) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Category, error) {
	var out []*models.Category
	for id := int64(1); id <= m.nextID; id++ {
		if c, ok := m.rows[id]; ok && c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategories) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Category, error) {
	c, ok := m.rows[id]
	if !ok || (!m.ignoreOwner && c.OwnerID != ownerID) {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *memCategories) Create(ctx context.Context, c *models.Category) (*models.Category, error) {
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	m.nextID++
	c.ID = m.nextID
	cp := *c
	m.rows[c.ID] = &cp
	return c, nil
}

func (m *memCategories) Update(ctx context.Context, c *models.Category) (*models.Category, error) {
	if m.writeErr != nil {
		return nil, m.writeErr
	}
	cur, ok := m.rows[c.ID]
	if !ok || cur.OwnerID != c.OwnerID {
		return nil, common.ErrorNotFound
	}
	cp := *c
	m.rows[c.ID] = &cp
	return c, nil
}

func (m *memCategories) Delete(ctx context.Context, id, ownerID int64) error {
	cur, ok := m.rows[id]
	if !ok || cur.OwnerID != ownerID {
		return common.ErrorNotFound
	}
	delete(m.rows, id)
	return nil
}

type memImages struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
}

func newMemImages() *memImages { return &memImages{data: map[string][]byte{}} }

func (m *memImages) Put(ctx context.Context, key string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	return nil
}

func (m *memImages) URL(ctx context.Context, key string) (string, error) {
	return "http://media/" + key, nil
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	img.Set(1, 1, color.White)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
