package models

import "time"

// Category is the top level of an owner's taxonomy. Deleting the owner
// deletes the category.
type Category struct {
	ID          int64
	OwnerID     int64
	Name        string
	Image       string
	Description string
	CreatedAt   time.Time
	LastUpdate  time.Time
}

func (c *Category) GetID() int64        { return c.ID }
func (c *Category) GetOwnerID() int64   { return c.OwnerID }
func (c *Category) SetOwnerID(id int64) { c.OwnerID = id }
func (c *Category) GetName() string     { return c.Name }
func (c *Category) GetImage() string    { return c.Image }
func (c *Category) SetImage(key string) { c.Image = key }

// SubCategory optionally hangs under a Category. The reference is cleared,
// not cascaded, when the category goes away.
type SubCategory struct {
	ID          int64
	OwnerID     int64
	Name        string
	Image       string
	CategoryID  *int64
	Description string
	CreatedAt   time.Time
	LastUpdate  time.Time

	// CategoryName is filled by list queries for display.
	CategoryName string
}

func (s *SubCategory) GetID() int64        { return s.ID }
func (s *SubCategory) GetOwnerID() int64   { return s.OwnerID }
func (s *SubCategory) SetOwnerID(id int64) { s.OwnerID = id }
func (s *SubCategory) GetName() string     { return s.Name }
func (s *SubCategory) GetImage() string    { return s.Image }
func (s *SubCategory) SetImage(key string) { s.Image = key }

// Product optionally references a Category and a SubCategory, both cleared
// when the referenced row is deleted.
type Product struct {
	ID            int64
	OwnerID       int64
	Name          string
	Image         string
	CategoryID    *int64
	SubCategoryID *int64
	Description   string
	CreatedAt     time.Time
	LastUpdate    time.Time

	CategoryName    string
	SubCategoryName string
}

func (p *Product) GetID() int64        { return p.ID }
func (p *Product) GetOwnerID() int64   { return p.OwnerID }
func (p *Product) SetOwnerID(id int64) { p.OwnerID = id }
func (p *Product) GetName() string     { return p.Name }
func (p *Product) GetImage() string    { return p.Image }
func (p *Product) SetImage(key string) { p.Image = key }
