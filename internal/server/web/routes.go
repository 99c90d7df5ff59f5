package web

import (
	"fmt"
	"net/url"
	"strings"
)

// routes maps route names, as used by templates and redirects, to gin paths.
var routes = map[string]string{
	"welcome":          "/",
	"terms-of-service": "/terms-of-serviec/",

	"account_login":           "/login/",
	"account_signup":          "/signup/",
	"account_logout":          "/logout/",
	"account_change_password": "/password/change/",

	"dashboard": "/dashboard/",
	"profile":   "/profile/:username/",

	"categories":      "/categories/",
	"category_create": "/category/create/",
	"category_update": "/category/:id/update/",
	"category_delete": "/category/:id/delete/",

	"sub_categories":      "/sub-categories/",
	"sub_category_create": "/sub-category/create/",
	"sub_category_update": "/sub-category/:id/update/",
	"sub_category_delete": "/sub-category/:id/delete/",

	"products":       "/products/",
	"product_create": "/product/create/",
	"product_update": "/product/:id/update/",
	"product_delete": "/product/:id/delete/",
	"product_export": "/products/export/",
}

func routePath(name string) string {
	p, ok := routes[name]
	if !ok {
		panic("unknown route " + name)
	}
	return p
}

// URLFor builds the path of a named route, filling its parameters in order.
// Unknown names yield "#".
func URLFor(name string, args ...any) string {
	p, ok := routes[name]
	if !ok {
		return "#"
	}

	segments := strings.Split(p, "/")
	for i, seg := range segments {
		if !strings.HasPrefix(seg, ":") {
			continue
		}
		if len(args) == 0 {
			return "#"
		}
		segments[i] = url.PathEscape(fmt.Sprint(args[0]))
		args = args[1:]
	}
	return strings.Join(segments, "/")
}

// safeNext accepts only local absolute paths as a post-login target.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return ""
	}
	u, err := url.Parse(next)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return ""
	}
	return next
}
