package nav

// PageTitle is the heading of a dashboard page and its breadcrumb trail.
type PageTitle struct {
	Name         string
	PathSequence []string
}

func PageTitleData(name string, path ...string) PageTitle {
	return PageTitle{Name: name, PathSequence: path}
}

// CatalogTitle is the page title used by the product management pages.
func CatalogTitle(name string) PageTitle {
	return PageTitleData(name, "Home", "Product Management", name)
}
