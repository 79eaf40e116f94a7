// Package content holds the literal records rendered by the landing page.
//
// Records are plain values. The package-level slices are never handed out
// directly; accessors return copies so a render cannot mutate what the next
// render sees.
package content

// Icon names a glyph rendered next to a card.
type Icon string

// Known icons.
const (
	IconSearch   Icon = "search"
	IconBookOpen Icon = "book-open"
	IconGlobe    Icon = "globe"
	IconUsers    Icon = "users"
	IconStar     Icon = "star"
	IconMapPin   Icon = "map-pin"
	IconAward    Icon = "award"
	IconRadio    Icon = "radio"
)

// FounderProfile describes one of the two co-founders.
type FounderProfile struct {
	Name      string
	Role      string
	ImagePath string
}

// ID returns the element identifier for the profile.
func (f FounderProfile) ID() string { return "founder-" + Slug(f.Name) }

// Alt returns the image alt text.
func (f FounderProfile) Alt() string { return f.Name + " - " + f.Role }

// MissionPillar is one of the mission grid cards.
type MissionPillar struct {
	Icon        Icon
	Title       string
	Description string
}

// ID returns the element identifier for the pillar.
func (m MissionPillar) ID() string { return "pillar-" + Slug(m.Title) }

// Expedition is a research highlight card.
type Expedition struct {
	Title       string
	Location    string
	ImagePath   string
	Description string
	Stats       []string
}

// ID returns the element identifier for the expedition.
func (e Expedition) ID() string { return "expedition-" + Slug(e.Title) }

// TimelinePeriod is one entry of the future research timeline.
type TimelinePeriod struct {
	YearRange   string
	Title       string
	Description string
	FocusAreas  []string
}

// ID returns the element identifier for the period.
func (t TimelinePeriod) ID() string { return "timeline-" + Slug(t.YearRange) }

// ContributionOption is one way to support the organization.
type ContributionOption struct {
	Icon        Icon
	Title       string
	Description string
}

// ID returns the element identifier for the option.
func (c ContributionOption) ID() string { return "contribute-" + Slug(c.Title) }

// Achievement is a floating card at the bottom of the hero.
type Achievement struct {
	Icon Icon
	Text string
}

// ID returns the element identifier for the achievement.
func (a Achievement) ID() string { return "achievement-" + Slug(a.Text) }

// Story is a titled paragraph in the legacy section.
type Story struct {
	Title string
	Body  string
}

// ID returns the element identifier for the story.
func (s Story) ID() string { return "story-" + Slug(s.Title) }

// Hero is the headline block.
type Hero struct {
	Title     string
	Tagline   string
	Primary   Link
	Secondary Link
}

// Link is a call-to-action anchor.
type Link struct {
	Label string
	Href  string
}

// Contact holds the donation contact details.
type Contact struct {
	Heading string
	Intro   string
	Email   string
	CTA     Link
}
