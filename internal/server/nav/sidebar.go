// Package nav builds the presentation metadata shared by dashboard pages:
// the sidebar tree and the page heading with its breadcrumb.
package nav

// Section is a link nested under a MenuItem.
type Section struct {
	ID     int
	Name   string
	Route  string
	Active bool
}

// MenuItem is a top-level sidebar entry. Items with Sections have no Route
// of their own.
type MenuItem struct {
	ID        int
	Name      string
	Icon      string
	Route     string
	Sections  []Section
	Collapsed bool
}

type Sidebar struct {
	General []MenuItem
	Pages   []MenuItem
}

// Top-level menu ids.
const (
	SectionDashboard = 1
	SectionSales     = 2
	SectionProducts  = 3
	SectionInventory = 4
	SectionPeople    = 5
	SectionWallet    = 6
	SectionSubscribe = 7
	SectionReports   = 8
	SectionProfile   = 9
	SectionSettings  = 10
)

// Sub-section ids under SectionProducts.
const (
	SubCategories    = 1
	SubSubCategories = 2
	SubProducts      = 3
)

// SidebarData returns a freshly built sidebar in which only the item activeID
// is expanded and, within it, only section subActiveID is active. Zero
// arguments select the defaults (1, 1).
func SidebarData(activeID, subActiveID int) Sidebar {
	if activeID == 0 {
		activeID = SectionDashboard
	}
	if subActiveID == 0 {
		subActiveID = 1
	}

	s := Sidebar{
		General: []MenuItem{
			{ID: 1, Name: "Dashboard", Icon: "bi bi-grid", Route: "dashboard"},
			{ID: 2, Name: "Sales", Icon: "bi bi-speedometer2", Sections: []Section{
				{ID: 1, Name: "POS", Route: "dashboard"},
				{ID: 2, Name: "Orders", Route: "dashboard"},
			}},
			{ID: 3, Name: "Product Management", Icon: "bi bi-cart3", Sections: []Section{
				{ID: 1, Name: "Categories", Route: "categories"},
				{ID: 2, Name: "Sub Categories", Route: "sub_categories"},
				{ID: 3, Name: "Products", Route: "products"},
			}},
			{ID: 4, Name: "Inventory Management", Icon: "bi bi-shield-plus", Route: "dashboard"},
			{ID: 5, Name: "People Management", Icon: "bi bi-people", Sections: []Section{
				{ID: 1, Name: "Customer", Route: "dashboard"},
				{ID: 2, Name: "Suplier", Route: "dashboard"},
			}},
			{ID: 6, Name: "Wallet", Icon: "bi bi-wallet2", Route: "dashboard"},
			{ID: 7, Name: "Subscription", Icon: "bi bi-credit-card", Route: "dashboard"},
			{ID: 8, Name: "Reports", Icon: "bi bi-journal-medical", Sections: []Section{
				{ID: 1, Name: "Sales Report", Route: "dashboard"},
				{ID: 2, Name: "Customer Report", Route: "dashboard"},
				{ID: 3, Name: "Dues Report", Route: "dashboard"},
				{ID: 4, Name: "Stock Report", Route: "dashboard"},
			}},
		},
		Pages: []MenuItem{
			{ID: 9, Name: "Profile", Icon: "bi bi-person", Route: "profile"},
			{ID: 10, Name: "Settings", Icon: "bi bi-gear", Sections: []Section{
				{ID: 1, Name: "Change Password", Route: "account_change_password"},
			}},
		},
	}

	mark(s.General, activeID, subActiveID)
	mark(s.Pages, activeID, subActiveID)
	return s
}

func mark(items []MenuItem, activeID, subActiveID int) {
	for i := range items {
		item := &items[i]
		item.Collapsed = item.ID != activeID
		if item.Collapsed {
			continue
		}
		for j := range item.Sections {
			item.Sections[j].Active = item.Sections[j].ID == subActiveID
		}
	}
}
