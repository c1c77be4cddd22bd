package browser_test

import (
	"fmt"
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestBrowse_SeededListing verifies the listing page shows the seed records.
func TestBrowse_SeededListing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/experiences"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}

	cards := page.Locator(".experience-card")
	count, err := cards.Count()
	if err != nil {
		t.Fatalf("failed to count cards: %v", err)
	}
	if count != 5 {
		t.Errorf("expected 5 experience cards, got %d", count)
	}

	first, err := cards.First().Locator("h2").TextContent()
	if err != nil {
		t.Fatalf("failed to read first card: %v", err)
	}
	if first != "Summer Music Fest" {
		t.Errorf("first card = %q, want Summer Music Fest", first)
	}
}

// TestCreate_FormRoundTrip creates an experience through the form and
// verifies it leads the listing.
func TestCreate_FormRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/experiences/new"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}

	fill := func(selector, value string) {
		t.Helper()
		if err := page.Locator(selector).Fill(value); err != nil {
			t.Fatalf("failed to fill %s: %v", selector, err)
		}
	}
	fill("input[name=title]", "Board Game Night")
	fill("textarea[name=description]", "Strategy games and snacks at my place.")
	fill("input[name=date]", "2024-08-01")
	fill("input[name=time]", "19:00")
	fill("input[name=location]", "Community Hall")
	if _, err := page.Locator("select[name=category]").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{"Other"},
	}); err != nil {
		t.Fatalf("failed to select category: %v", err)
	}

	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}
	if err := page.WaitForURL(app.BaseURL+"/experiences", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("create did not redirect to listing: %v", err)
	}

	first, err := page.Locator(".experience-card").First().Locator("h2").TextContent()
	if err != nil {
		t.Fatalf("failed to read first card: %v", err)
	}
	if first != "Board Game Night" {
		t.Errorf("first card = %q, want the new experience", first)
	}
}

// TestCreate_ShortTitleShowsFieldError submits a 4-character title and
// expects the form back with a title message.
func TestCreate_ShortTitleShowsFieldError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	if _, err := page.Goto(app.BaseURL + "/experiences/new"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}

	// minlength is not set on the input, the server does the checking
	if err := page.Locator("input[name=title]").Fill("Hike"); err != nil {
		t.Fatalf("failed to fill title: %v", err)
	}
	if err := page.Locator("textarea[name=description]").Fill("A scenic hike in the hills nearby."); err != nil {
		t.Fatalf("failed to fill description: %v", err)
	}
	if err := page.Locator("input[name=date]").Fill("2024-08-01"); err != nil {
		t.Fatalf("failed to fill date: %v", err)
	}
	if err := page.Locator("input[name=time]").Fill("09:00"); err != nil {
		t.Fatalf("failed to fill time: %v", err)
	}
	if err := page.Locator("input[name=location]").Fill("Mountain View Trail"); err != nil {
		t.Fatalf("failed to fill location: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to submit: %v", err)
	}

	msg, err := page.Locator(".field-error").First().TextContent()
	if err != nil {
		t.Fatalf("no field error shown: %v", err)
	}
	if msg != "Title must be at least 5 characters." {
		t.Errorf("field error = %q", msg)
	}
}

// TestInterest_ButtonRoundTrip expresses interest from the detail page and
// verifies the count updates.
func TestInterest_ButtonRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	app := newTestApp(t)
	page := app.newPage(t)

	// Record 3 has no attendees in the seed set.
	if _, err := page.Goto(app.BaseURL + "/experiences/3"); err != nil {
		t.Fatalf("failed to navigate: %v", err)
	}

	if err := page.Locator("#interest-button").Click(); err != nil {
		t.Fatalf("failed to click interest: %v", err)
	}

	msg := page.Locator("#interest-message")
	if err := msg.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("interest message never appeared: %v", err)
	}
	text, _ := msg.TextContent()
	if text != "Interest expressed successfully." {
		t.Errorf("message = %q", text)
	}

	count, _ := page.Locator("#attendee-count").TextContent()
	if count != "1" {
		t.Errorf("attendee count = %q, want 1", count)
	}

	// A reload shows the recorded state without the button.
	if _, err := page.Goto(fmt.Sprintf("%s/experiences/3", app.BaseURL)); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	visible, err := page.Locator("#interest-button").IsVisible()
	if err == nil && visible {
		t.Error("interest button still visible after expressing interest")
	}
}
