package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/catalogkeeper/internal/dbx"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/categories"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/profiles"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/subcategories"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/team"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
	Categories(db dbx.DBTX) categories.Repository
	SubCategories(db dbx.DBTX) subcategories.Repository
	Products(db dbx.DBTX) products.Repository
	Team(db dbx.DBTX) team.Repository
	Contacts(db dbx.DBTX) contacts.Repository
}
