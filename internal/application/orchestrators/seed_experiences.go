package orchestrators

import (
	"context"
	"log/slog"
	"time"

	domain "experiencebuddy/internal/domain/experience"
)

// ExperienceStoreForSeed defines the store interface needed by SeedExperiences.
type ExperienceStoreForSeed interface {
	Insert(ctx context.Context, e domain.Experience) error
	Count(ctx context.Context) (int, error)
}

// SeedExperiencesDeps holds dependencies for SeedExperiences.
type SeedExperiencesDeps struct {
	ExperienceStore ExperienceStoreForSeed
}

// seedDate builds a midnight-UTC date for the seed records.
func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SeedExperiences is the initial listing set shown on a fresh store.
var SeedExperiences = []domain.Experience{
	{
		ID:          "1",
		Title:       "Summer Music Fest",
		Description: "Looking for someone to join me at the annual Summer Music Fest. Great bands, good vibes! Pack light, bring sunscreen, and be ready to dance. We can meet near the main entrance.",
		Date:        seedDate(2024, 7, 20),
		Time:        "14:00",
		Location:    "Central Park",
		Category:    domain.CategoryMusic,
		ImageURL:    "https://picsum.photos/seed/musicfest/800/500",
		CreatorID:   "user123",
		CreatorName: "Alex",
		Attendees:   []string{"user456", "user789"},
	},
	{
		ID:          "2",
		Title:       "Weekend Hiking Trip",
		Description: "Planning a scenic hike this weekend. Approximately 5 miles, moderate difficulty. Need a buddy who enjoys nature and a good walk. Bring water and snacks. Meet at the trailhead parking lot.",
		Date:        seedDate(2024, 7, 13),
		Time:        "09:00",
		Location:    "Mountain View Trail",
		Category:    domain.CategorySports,
		ImageURL:    "https://picsum.photos/seed/hiking/800/500",
		CreatorID:   "user456",
		CreatorName: "Sam",
		Attendees:   []string{"user789"},
	},
	{
		ID:          "3",
		Title:       "New Italian Restaurant Opening",
		Description: "Want to check out the new Italian place downtown? Heard great things about their pasta. Looking for a fellow foodie! Let's meet there.",
		Date:        seedDate(2024, 7, 18),
		Time:        "19:30",
		Location:    "Downtown Eats",
		Category:    domain.CategoryFood,
		ImageURL:    "https://picsum.photos/seed/foodie/800/500",
		CreatorID:   "user101",
		CreatorName: "Chloe",
	},
	{
		ID:          "4",
		Title:       "Art Gallery Visit",
		Description: "Exploring the modern art gallery next Saturday. Features contemporary artists. Anyone interested in joining? We can grab coffee afterwards.",
		Date:        seedDate(2024, 7, 27),
		Time:        "11:00",
		Location:    "City Art Gallery",
		Category:    domain.CategoryArts,
		ImageURL:    "https://picsum.photos/seed/artgallery/800/500",
		CreatorID:   "user555",
		CreatorName: "Maria",
		Attendees:   []string{"user123"},
	},
	{
		ID:          "5",
		Title:       "Travel Buddy for Europe Trip",
		Description: "Planning a 2-week backpacking trip through Europe in August. Itinerary includes Paris, Rome, and Berlin. Seeking a travel companion to share costs and experiences.",
		Date:        seedDate(2024, 8, 5), // start date of the trip
		Time:        "08:00",
		Location:    "Europe (Multiple)",
		Category:    domain.CategoryTravel,
		ImageURL:    "https://picsum.photos/seed/europetrip/800/500",
		CreatorID:   "user999",
		CreatorName: "Ben",
	},
}

// ExecuteSeedExperiences loads the seed set into an empty store.
// It is idempotent - a store that already holds records is left untouched.
// PRE: store is reachable
// POST: an empty store holds the seed set in its listed order
func ExecuteSeedExperiences(ctx context.Context, deps SeedExperiencesDeps) error {
	n, err := deps.ExperienceStore.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	// Insert places each record at the head, so walk the seed list backwards
	// to keep its display order.
	for i := len(SeedExperiences) - 1; i >= 0; i-- {
		e := SeedExperiences[i]
		e.CreatedAt = time.Now()
		if err := deps.ExperienceStore.Insert(ctx, e); err != nil {
			return err
		}
	}

	slog.Info("experience_event", "event", "experiences_seeded", "count", len(SeedExperiences))
	return nil
}
