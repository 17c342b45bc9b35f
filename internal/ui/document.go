// Package ui models the page chrome drawn over the room: the navigation menus, the contact dropdown, the close
// button, and the overlay's own controls. It only knows about rectangles and visibility; drawing lives elsewhere.
package ui

import (
	"sort"
	"strconv"
)

// Element IDs.
const (
	AboutMenu       = "about-menu"
	ProjectsMenu    = "projects-menu"
	ContactMenu     = "contact-menu"
	ContactButton   = "contact-btn"
	ContactDropdown = "contact-dropdown"
	CloseButton     = "close-btn"
	OverlayPage     = "overlay-page"
	OverlayClose    = "overlay-close"
)

// Body classes reflecting the theme.
const (
	LightThemeClass = "light-theme"
	DarkThemeClass  = "dark-theme"
)

// Cursor shapes requested by the page.
const (
	CursorDefault = "default"
	CursorPointer = "pointer"
)

// Rect is a rectangle in window pixels, with 0, 0 at the top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains returns true if the point lies within the Rect.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the center point of the Rect.
func (r Rect) Center() (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Element is a rectangle of page chrome.
type Element struct {
	ID      string
	Label   string
	Href    string // Link target, for contact links.
	Rect    Rect
	Visible bool
	ZIndex  int
	Hovered bool

	// Container elements group others (i.e. the contact menu) and are never the target of a hit themselves.
	Container bool

	Parent *Element
}

// Contains returns true if other is the Element itself or one of its descendants.
func (element *Element) Contains(other *Element) bool {
	for e := other; e != nil; e = e.Parent {
		if e == element {
			return true
		}
	}
	return false
}

// Shown returns true if the Element and all of its parents are visible.
func (element *Element) Shown() bool {
	for e := element; e != nil; e = e.Parent {
		if !e.Visible {
			return false
		}
	}
	return true
}

// Link is a contact entry in the dropdown.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Document is the page: its chrome elements, body classes, and the cursor shape.
type Document struct {
	Width, Height float32
	Cursor        string

	elements []*Element
	byID     map[string]*Element
	classes  map[string]bool
	links    []*Element
}

// NewDocument builds the page chrome with the given contact links and lays it out for the window size.
func NewDocument(width, height float32, links []Link) *Document {

	doc := &Document{
		Cursor:  CursorDefault,
		byID:    map[string]*Element{},
		classes: map[string]bool{LightThemeClass: true},
	}

	doc.add(&Element{ID: AboutMenu, Label: "About", Visible: true, ZIndex: 10})
	doc.add(&Element{ID: ProjectsMenu, Label: "Projects", Visible: true, ZIndex: 10})

	contact := doc.add(&Element{ID: ContactMenu, Visible: true, ZIndex: 10, Container: true})
	doc.add(&Element{ID: ContactButton, Label: "Contact", Visible: true, ZIndex: 10, Parent: contact})
	dropdown := doc.add(&Element{ID: ContactDropdown, Visible: false, ZIndex: 11, Parent: contact})

	for i, link := range links {
		doc.links = append(doc.links, doc.add(&Element{
			ID:      contactLinkID(i),
			Label:   link.Label,
			Href:    link.URL,
			Visible: true,
			ZIndex:  12,
			Parent:  dropdown,
		}))
	}

	doc.add(&Element{ID: CloseButton, Label: "Close", Visible: false, ZIndex: 20})

	page := doc.add(&Element{ID: OverlayPage, Visible: false, ZIndex: 10000})
	doc.add(&Element{ID: OverlayClose, Label: "x", Visible: true, ZIndex: 10001, Parent: page})

	doc.Layout(width, height)

	return doc

}

func contactLinkID(index int) string {
	return "contact-link-" + strconv.Itoa(index)
}

func (doc *Document) add(element *Element) *Element {
	doc.elements = append(doc.elements, element)
	doc.byID[element.ID] = element
	return element
}

// ByID returns the element with the given ID, or nil if there's none.
func (doc *Document) ByID(id string) *Element {
	return doc.byID[id]
}

// Elements returns every element, in the order they're drawn (lowest ZIndex first).
func (doc *Document) Elements() []*Element {
	sorted := append([]*Element{}, doc.elements...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ZIndex < sorted[j].ZIndex })
	return sorted
}

// ContactLinks returns the link elements of the contact dropdown.
func (doc *Document) ContactLinks() []*Element {
	return doc.links
}

// Layout positions the chrome for a window of the given size.
func (doc *Document) Layout(width, height float32) {

	doc.Width, doc.Height = width, height

	const (
		margin = 20
		itemH  = 36
	)

	x := width - margin
	place := func(id string, w float32) {
		x -= w
		doc.byID[id].Rect = Rect{X: x, Y: margin, W: w, H: itemH}
		x -= 10
	}

	place(ContactButton, 110)
	place(ProjectsMenu, 110)
	place(AboutMenu, 90)

	button := doc.byID[ContactButton].Rect

	dropdown := doc.byID[ContactDropdown]
	dropdown.Rect = Rect{X: button.X + button.W - 180, Y: button.Y + button.H + 6, W: 180, H: float32(len(doc.links)) * itemH}

	for i, link := range doc.links {
		link.Rect = Rect{X: dropdown.Rect.X, Y: dropdown.Rect.Y + float32(i)*itemH, W: dropdown.Rect.W, H: itemH}
	}

	doc.byID[ContactMenu].Rect = Rect{X: dropdown.Rect.X, Y: button.Y, W: dropdown.Rect.W, H: dropdown.Rect.Y + dropdown.Rect.H - button.Y}

	doc.byID[CloseButton].Rect = Rect{X: width/2 - 30, Y: height - 60 - margin, W: 60, H: 60}

	doc.byID[OverlayPage].Rect = Rect{X: 0, Y: 0, W: width, H: height}
	doc.byID[OverlayClose].Rect = Rect{X: width - 25 - 60, Y: 25, W: 60, H: 60}

}

// HitTest returns the top-most shown element under the point, or nil if the point only touches the scene.
func (doc *Document) HitTest(x, y float32) *Element {

	var hit *Element

	for _, e := range doc.elements {
		if e.Container || !e.Shown() || !e.Rect.Contains(x, y) {
			continue
		}
		// Later elements sit above earlier ones with the same ZIndex.
		if hit == nil || e.ZIndex >= hit.ZIndex {
			hit = e
		}
	}

	return hit

}

// Hover marks the element under the point as hovered (and every other element as not), returning it.
func (doc *Document) Hover(x, y float32) *Element {
	hit := doc.HitTest(x, y)
	for _, e := range doc.elements {
		e.Hovered = e == hit
	}
	return hit
}

// Show sets the visibility of the element with the given ID.
func (doc *Document) Show(id string, visible bool) {
	if e := doc.byID[id]; e != nil {
		e.Visible = visible
	}
}

// IsShown returns true if the element with the given ID is shown.
func (doc *Document) IsShown(id string) bool {
	e := doc.byID[id]
	return e != nil && e.Shown()
}

// ToggleContact opens the contact dropdown if it's closed, and closes it otherwise.
func (doc *Document) ToggleContact() {
	dropdown := doc.byID[ContactDropdown]
	dropdown.Visible = !dropdown.Visible
}

// ContactOpen returns true if the contact dropdown is open.
func (doc *Document) ContactOpen() bool {
	return doc.byID[ContactDropdown].Visible
}

// MouseUp closes the contact dropdown unless the mouse was released over the contact menu.
func (doc *Document) MouseUp(target *Element) {
	if !doc.byID[ContactMenu].Contains(target) {
		doc.byID[ContactDropdown].Visible = false
	}
}

// AddClass adds a class to the page body.
func (doc *Document) AddClass(class string) {
	doc.classes[class] = true
}

// RemoveClass removes a class from the page body.
func (doc *Document) RemoveClass(class string) {
	delete(doc.classes, class)
}

// HasClass returns true if the page body has the class.
func (doc *Document) HasClass(class string) bool {
	return doc.classes[class]
}
