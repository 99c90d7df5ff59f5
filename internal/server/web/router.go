// Package web serves the back office over HTTP with gin: account pages,
// the profile page, owner-scoped catalog management and the public
// welcome pages.
package web

import (
	"context"
	"io"

	"github.com/dmitrijs2005/catalogkeeper/internal/logging"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/config"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/forms"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/images"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/models"
	"github.com/dmitrijs2005/catalogkeeper/internal/server/services"
	"github.com/gin-gonic/gin"
)

// Accounts is the identity provider used by the account and profile pages.
type Accounts interface {
	Signup(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, username, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	Profile(ctx context.Context, userID int64) (*models.Profile, error)
	UpdateProfile(ctx context.Context, profile *models.Profile, picture io.Reader, account *models.User) (bool, error)
}

type Welcome interface {
	TeamMembers(ctx context.Context) ([]*models.TeamMember, error)
	SubmitContact(ctx context.Context, m *models.ContactMessage) error
}

// Catalog is the owner-scoped management of one entity type.
type Catalog[E services.Entity] interface {
	List(ctx context.Context, ownerID int64, query string) ([]E, error)
	Get(ctx context.Context, id, ownerID int64) (E, error)
	Create(ctx context.Context, ownerID int64, e E, upload io.Reader) (E, error)
	Update(ctx context.Context, ownerID int64, e E, upload io.Reader) (E, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

type Deps struct {
	Config        *config.Config
	Logger        logging.Logger
	Accounts      Accounts
	Welcome       Welcome
	Categories    *services.CatalogService[*models.Category]
	SubCategories *services.CatalogService[*models.SubCategory]
	Products      *services.CatalogService[*models.Product]
	Images        images.Store
}

// NewRouter builds the gin engine serving every page.
func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger.With("module", "http")
	b := &base{config: d.Config, logger: logger, images: d.Images}

	r := gin.New()
	r.MaxMultipartMemory = d.Config.MaxUploadSize
	r.SetHTMLTemplate(parseTemplates())
	r.Use(gin.Recovery(), requestLogger(logger), limitBody(d.Config.MaxUploadSize), flashes([]byte(d.Config.SecretKey)), session(d.Accounts, logger))
	r.NoRoute(b.notFound)

	pub := &welcomeHandler{base: b, welcome: d.Welcome}
	r.GET(routePath("welcome"), pub.index)
	r.POST(routePath("welcome"), pub.contact)
	r.GET(routePath("terms-of-service"), pub.terms)

	acc := &accountHandler{base: b, accounts: d.Accounts}
	r.GET(routePath("account_login"), acc.loginForm)
	r.POST(routePath("account_login"), acc.login)
	r.GET(routePath("account_signup"), acc.signupForm)
	r.POST(routePath("account_signup"), acc.signup)
	r.GET(routePath("account_logout"), acc.logoutForm)
	r.POST(routePath("account_logout"), acc.logout)

	auth := r.Group("", requireLogin())
	auth.GET(routePath("account_change_password"), acc.passwordForm)
	auth.POST(routePath("account_change_password"), acc.changePassword)

	auth.GET(routePath("dashboard"), b.dashboard)

	prof := &profileHandler{base: b, accounts: d.Accounts}
	auth.GET(routePath("profile"), prof.show)
	auth.POST(routePath("profile"), prof.update)

	categoryChoices := func(ctx context.Context, ownerID int64) (forms.Choices, error) {
		return services.OwnerChoices(ctx, d.Categories, nil, ownerID)
	}
	allChoices := func(ctx context.Context, ownerID int64) (forms.Choices, error) {
		return services.OwnerChoices(ctx, d.Categories, d.SubCategories, ownerID)
	}

	newCatalogController(b, d.Categories, categoryDescriptor()).register(auth)
	newCatalogController(b, d.SubCategories, subCategoryDescriptor(categoryChoices)).register(auth)
	newCatalogController(b, d.Products, productDescriptor(allChoices)).register(auth)

	exp := &exportHandler{base: b, products: d.Products}
	auth.GET(routePath("product_export"), exp.download)

	return r
}
