package ui

import "testing"

func testLinks() []Link {
	return []Link{
		{Label: "GitHub", URL: "https://github.com/"},
		{Label: "Email", URL: "mailto:hello@example.com"},
	}
}

func TestHitTest(t *testing.T) {

	doc := NewDocument(1280, 720, testLinks())

	tests := []struct {
		id   string
		want string
	}{
		{AboutMenu, AboutMenu},
		{ProjectsMenu, ProjectsMenu},
		{ContactButton, ContactButton},
	}

	for _, test := range tests {
		x, y := doc.ByID(test.id).Rect.Center()
		hit := doc.HitTest(x, y)
		if hit == nil || hit.ID != test.want {
			t.Fatal("expected a hit on", test.want, "got", hit)
		}
	}

	if hit := doc.HitTest(640, 360); hit != nil {
		t.Fatal("the middle of the window should only touch the scene, got", hit.ID)
	}

	// Hidden elements can't be hit.
	x, y := doc.ByID(CloseButton).Rect.Center()
	if hit := doc.HitTest(x, y); hit != nil {
		t.Fatal("the close button starts hidden, got", hit.ID)
	}

	doc.Show(CloseButton, true)
	if hit := doc.HitTest(x, y); hit == nil || hit.ID != CloseButton {
		t.Fatal("expected a hit on the close button once shown")
	}

}

func TestOverlayCoversEverything(t *testing.T) {

	doc := NewDocument(800, 600, nil)
	doc.Show(OverlayPage, true)

	x, y := doc.ByID(AboutMenu).Rect.Center()
	if hit := doc.HitTest(x, y); hit == nil || hit.ID != OverlayPage {
		t.Fatal("the overlay page should sit above the menus")
	}

	x, y = doc.ByID(OverlayClose).Rect.Center()
	hit := doc.Hover(x, y)
	if hit == nil || hit.ID != OverlayClose || !hit.Hovered {
		t.Fatal("the overlay close control should be hovered")
	}

	if !doc.ByID(OverlayPage).Contains(hit) {
		t.Fatal("the overlay close control belongs to the overlay page")
	}

}

func TestContactDropdown(t *testing.T) {

	doc := NewDocument(1280, 720, testLinks())

	link := doc.ContactLinks()[0]
	x, y := link.Rect.Center()

	if hit := doc.HitTest(x, y); hit != nil && hit == link {
		t.Fatal("links should be hidden while the dropdown is closed")
	}

	doc.ToggleContact()
	if !doc.ContactOpen() {
		t.Fatal("dropdown should be open")
	}

	hit := doc.HitTest(x, y)
	if hit != link || hit.Href != "https://github.com/" {
		t.Fatal("expected a hit on the first contact link")
	}

	// Releasing the mouse inside the contact menu keeps the dropdown open.
	doc.MouseUp(hit)
	if !doc.ContactOpen() {
		t.Fatal("dropdown should stay open after a mouse-up inside the menu")
	}

	doc.MouseUp(doc.HitTest(640, 360))
	if doc.ContactOpen() {
		t.Fatal("dropdown should close after a mouse-up outside the menu")
	}

	doc.ToggleContact()
	doc.ToggleContact()
	if doc.ContactOpen() {
		t.Fatal("toggling twice should leave the dropdown closed")
	}

}

func TestBodyClasses(t *testing.T) {

	doc := NewDocument(100, 100, nil)

	if !doc.HasClass(LightThemeClass) {
		t.Fatal("the page starts in the light theme")
	}

	doc.RemoveClass(LightThemeClass)
	doc.AddClass(DarkThemeClass)

	if doc.HasClass(LightThemeClass) || !doc.HasClass(DarkThemeClass) {
		t.Fatal("classes were not swapped")
	}

}
