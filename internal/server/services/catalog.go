package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/catalogkeeper/internal/common"
	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/repomanager"
)

// Entity is a catalog record that belongs to exactly one owner.
type Entity interface {
	GetID() int64
	GetOwnerID() int64
	SetOwnerID(id int64)
	GetName() string
	GetImage() string
	SetImage(key string)
}

// Store is the owner-scoped persistence of one entity type. Every read and
// write is filtered by owner.
type Store[E Entity] interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]E, error)
	GetForOwner(ctx context.Context, id, ownerID int64) (E, error)
	Create(ctx context.Context, e E) (E, error)
	Update(ctx context.Context, e E) (E, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// CatalogService implements list/create/update/delete for one entity type
// on behalf of the current user. Records of other users are reported as
// common.ErrorForbidden, exactly like missing ones.
type CatalogService[E Entity] struct {
	db          *sql.DB
	store       func(db dbx.DBTX) Store[E]
	images      images.Store
	imagePrefix string
	logger      logging.Logger
}

func NewCatalogService[E Entity](db *sql.DB, store func(db dbx.DBTX) Store[E], img images.Store, imagePrefix string, logger logging.Logger) *CatalogService[E] {
	return &CatalogService[E]{
		db:          db,
		store:       store,
		images:      img,
		imagePrefix: imagePrefix,
		logger:      logger.With("module", imagePrefix),
	}
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager, img images.Store, logger logging.Logger) *CatalogService[*models.Category] {
	return NewCatalogService(db, func(db dbx.DBTX) Store[*models.Category] { return m.Categories(db) }, img, "categories", logger)
}

func NewSubCategoryService(db *sql.DB, m repomanager.RepositoryManager, img images.Store, logger logging.Logger) *CatalogService[*models.SubCategory] {
	return NewCatalogService(db, func(db dbx.DBTX) Store[*models.SubCategory] { return m.SubCategories(db) }, img, "sub-categories", logger)
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager, img images.Store, logger logging.Logger) *CatalogService[*models.Product] {
	return NewCatalogService(db, func(db dbx.DBTX) Store[*models.Product] { return m.Products(db) }, img, "products", logger)
}

// List returns the owner's records ordered by name. A non-empty query keeps
// only records whose name contains it, ignoring case.
func (s *CatalogService[E]) List(ctx context.Context, ownerID int64, query string) ([]E, error) {
	items, err := s.store(s.db).ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items, nil
	}

	filtered := make([]E, 0, len(items))
	for _, e := range items {
		if strings.Contains(strings.ToLower(e.GetName()), query) {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Get fetches record id through the owner filter and then checks the owner
// of what came back.
func (s *CatalogService[E]) Get(ctx context.Context, id, ownerID int64) (E, error) {
	var zero E

	e, err := s.store(s.db).GetForOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return zero, common.ErrorForbidden
		}
		return zero, err
	}

	if err := VerifyOwner(e, ownerID); err != nil {
		s.logger.Warn(ctx, "owner filter returned a foreign record", "id", id, "owner_id", e.GetOwnerID(), "user_id", ownerID)
		return zero, err
	}
	return e, nil
}

// VerifyOwner fails with common.ErrorForbidden unless e belongs to ownerID.
func VerifyOwner(e Entity, ownerID int64) error {
	if e.GetOwnerID() != ownerID {
		return common.ErrorForbidden
	}
	return nil
}

// Create saves e as a record of ownerID, whatever owner e carried. A non-nil
// upload becomes the record's image.
func (s *CatalogService[E]) Create(ctx context.Context, ownerID int64, e E, upload io.Reader) (E, error) {
	var zero E
	e.SetOwnerID(ownerID)

	if upload != nil {
		if err := s.attachImage(ctx, e, upload); err != nil {
			return zero, err
		}
	}

	created, err := s.store(s.db).Create(ctx, e)
	if err != nil {
		if upload != nil {
			s.logger.Error(ctx, "image stored but record not saved", "key", e.GetImage(), "error", err)
		}
		return zero, err
	}
	s.logger.Info(ctx, "record created", "id", created.GetID(), "owner_id", ownerID)
	return created, nil
}

// Update saves e, previously obtained with Get. Without an upload the
// current image is kept.
func (s *CatalogService[E]) Update(ctx context.Context, ownerID int64, e E, upload io.Reader) (E, error) {
	var zero E

	if err := VerifyOwner(e, ownerID); err != nil {
		return zero, err
	}
	e.SetOwnerID(ownerID)

	if upload != nil {
		if err := s.attachImage(ctx, e, upload); err != nil {
			return zero, err
		}
	}

	updated, err := s.store(s.db).Update(ctx, e)
	if err != nil {
		if upload != nil {
			s.logger.Error(ctx, "image stored but record not saved", "key", e.GetImage(), "id", e.GetID(), "error", err)
		}
		if errors.Is(err, common.ErrorNotFound) {
			return zero, common.ErrorForbidden
		}
		return zero, err
	}
	return updated, nil
}

func (s *CatalogService[E]) Delete(ctx context.Context, id, ownerID int64) error {
	if _, err := s.Get(ctx, id, ownerID); err != nil {
		return err
	}

	if err := s.store(s.db).Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorForbidden
		}
		return err
	}
	s.logger.Info(ctx, "record deleted", "id", id, "owner_id", ownerID)
	return nil
}

func (s *CatalogService[E]) attachImage(ctx context.Context, e E, upload io.Reader) error {
	data, err := images.Process(upload)
	if err != nil {
		return err
	}

	key := images.NewKey(s.imagePrefix)
	if err := s.images.Put(ctx, key, data); err != nil {
		return fmt.Errorf("store image: %w", err)
	}
	e.SetImage(key)
	return nil
}
