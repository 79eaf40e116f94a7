package content

// OrganizationName is the display name used across the page and metadata.
const OrganizationName = "Cosmic Mystery Center"

// Section anchors referenced by calls to action.
const (
	AnchorAbout       = "about"
	AnchorResearch    = "research"
	AnchorSupport     = "support"
	AnchorContactForm = "contact-form"
)

var hero = Hero{
	Title:     OrganizationName,
	Tagline:   "Unveiling the Universe's Greatest Enigmas Through Scientific Discovery",
	Primary:   Link{Label: "Explore Our Mission", Href: "#" + AnchorAbout},
	Secondary: Link{Label: "View Research", Href: "#" + AnchorResearch},
}

var achievements = []Achievement{
	{Icon: IconStar, Text: "150+ Expeditions"},
	{Icon: IconMapPin, Text: "47 Countries"},
	{Icon: IconAward, Text: "Global Recognition"},
	{Icon: IconRadio, Text: "Advanced Research"},
}

var founders = []FounderProfile{
	{Name: "David Eagan", Role: "Co-Founder & Lead Researcher", ImagePath: "/images/david-eagan.jpg"},
	{Name: "Kurt Arbuckle", Role: "Co-Founder & Scientific Director", ImagePath: "/images/kurt-arbuckle.jpg"},
}

const legacyIntro = "Founded by visionaries David Eagan and Kurt Arbuckle, the Cosmic Mystery Center emerged from a series of extraordinary encounters that defied conventional explanation. What began as teenage curiosity in West Lafayette transformed into a globally recognized institution at the forefront of paranormal research."

var stories = []Story{
	{
		Title: "The First Encounter",
		Body:  "In their junior year of high school, Eagan and Arbuckle documented their first unexplained phenomenon\u2014a series of geometric light formations above West Lafayette that defied known aircraft patterns and atmospheric conditions. This event catalyzed their lifelong pursuit of understanding the unknown.",
	},
	{
		Title: "The Evolution",
		Body:  "From amateur investigators to respected researchers, their journey has been marked by rigorous documentation, scientific methodology, and a commitment to bridging the gap between conventional science and unexplained phenomena.",
	},
}

const missionStatement = "To explore, document, and analyze unexplained phenomena\u2014bridging the gap between scientific inquiry, historical mysteries, and cultural legends. We aim to foster discovery, promote understanding, and preserve the stories that inspire curiosity about the unknown."

var pillars = []MissionPillar{
	{Icon: IconSearch, Title: "Scientific Research", Description: "Rigorous investigation of unexplained phenomena using cutting-edge technology"},
	{Icon: IconBookOpen, Title: "Documentation", Description: "Preserving historical mysteries and cultural narratives for future generations"},
	{Icon: IconGlobe, Title: "Global Network", Description: "Coordinating research efforts across continents and cultures"},
	{Icon: IconUsers, Title: "Community", Description: "Building a worldwide network of researchers and enthusiasts"},
}

var expeditions = []Expedition{
	{
		Title:       "Nazca Lines Aerial Survey",
		Location:    "Peru",
		ImagePath:   "/images/nazca-lines.jpg",
		Description: "Our team conducted comprehensive aerial surveys using advanced imaging technology to document and analyze the mysterious Nazca Lines. This expedition revealed previously undocumented patterns and mathematical correlations within these ancient geoglyphs.",
		Stats:       []string{"14 New Patterns Identified", "3 Months of Analysis", "Satellite Mapping"},
	},
	{
		Title:       "Sacred Valley Expedition",
		Location:    "Cusco Region",
		ImagePath:   "/images/sacred-valley.jpg",
		Description: "Leading a multi-disciplinary research team through Peru's Sacred Valley, we investigated archaeological anomalies and documented oral histories about unexplained phenomena, combining modern technology with traditional knowledge.",
		Stats:       []string{"25 Site Surveys", "40+ Local Interviews", "Artifact Analysis"},
	},
}

var timeline = []TimelinePeriod{
	{
		YearRange:   "2025-2026",
		Title:       "Deep Ocean Anomalies",
		Description: "Investigation of unexplained deep-sea phenomena using advanced sonar technology and autonomous submersibles.",
		FocusAreas:  []string{"Mariana Trench Signals", "Underwater Structures", "Bioluminescent Patterns"},
	},
	{
		YearRange:   "2027-2028",
		Title:       "High-Altitude Atmospheric Research",
		Description: "Study of unexplained atmospheric phenomena using next-generation weather balloons and satellite imagery.",
		FocusAreas:  []string{"Stratospheric Anomalies", "Aurora Patterns", "Electromagnetic Disturbances"},
	},
	{
		YearRange:   "2029-2030",
		Title:       "Ancient Site Energy Mapping",
		Description: "Comprehensive mapping of electromagnetic and gravitational anomalies at ancient megalithic sites.",
		FocusAreas:  []string{"Pyramid Energy Fields", "Ley Line Mapping", "Stone Circle Frequencies"},
	},
	{
		YearRange:   "2031-2032",
		Title:       "Quantum Consciousness Studies",
		Description: "Research into the relationship between quantum mechanics and consciousness, focusing on unexplained mental phenomena.",
		FocusAreas:  []string{"Remote Viewing", "Quantum Entanglement in Biology", "Consciousness Field Theory"},
	},
	{
		YearRange:   "2033-2034",
		Title:       "Interdimensional Physics",
		Description: "Advanced theoretical and experimental work on the possibility of parallel dimensions and their interaction with our reality.",
		FocusAreas:  []string{"Dimensional Breach Detection", "Parallel Universe Theory", "Time Dilation Studies"},
	},
}

const supportIntro = "Your contribution helps us push the boundaries of human knowledge and understanding of unexplained phenomena."

var contributions = []ContributionOption{
	{Icon: IconGlobe, Title: "Research Sponsorship", Description: "Support specific research projects or expeditions. Sponsors receive detailed reports and early access to findings."},
	{Icon: IconStar, Title: "Equipment Fund", Description: "Help us acquire and maintain cutting-edge research equipment and technology."},
	{Icon: IconBookOpen, Title: "Educational Initiatives", Description: "Support our public education programs and research publication efforts."},
}

// DefaultContactEmail receives donation and sponsorship inquiries.
const DefaultContactEmail = "donations@cosmicmystery.org"

// Page is the full set of records rendered by one request.
type Page struct {
	Hero             Hero
	Achievements     []Achievement
	Founders         []FounderProfile
	LegacyIntro      string
	Stories          []Story
	MissionStatement string
	Pillars          []MissionPillar
	Expeditions      []Expedition
	Timeline         []TimelinePeriod
	SupportIntro     string
	Contributions    []ContributionOption
	Contact          Contact
}

// Load returns a fresh copy of the page content. contactEmail replaces the
// default inquiry address when non-empty.
func Load(contactEmail string) Page {
	if contactEmail == "" {
		contactEmail = DefaultContactEmail
	}
	return Page{
		Hero:             hero,
		Achievements:     Achievements(),
		Founders:         Founders(),
		LegacyIntro:      legacyIntro,
		Stories:          Stories(),
		MissionStatement: missionStatement,
		Pillars:          Pillars(),
		Expeditions:      Expeditions(),
		Timeline:         Timeline(),
		SupportIntro:     supportIntro,
		Contributions:    Contributions(),
		Contact: Contact{
			Heading: "Contact Us",
			Intro:   "For donation inquiries or to discuss sponsorship opportunities:",
			Email:   contactEmail,
			CTA:     Link{Label: "Get Involved", Href: "#" + AnchorContactForm},
		},
	}
}

// Achievements returns the hero achievement cards in display order.
func Achievements() []Achievement { return append([]Achievement(nil), achievements...) }

// Founders returns both founder profiles in display order.
func Founders() []FounderProfile { return append([]FounderProfile(nil), founders...) }

// Stories returns the origin stories in display order.
func Stories() []Story { return append([]Story(nil), stories...) }

// Pillars returns the mission pillars in display order.
func Pillars() []MissionPillar { return append([]MissionPillar(nil), pillars...) }

// Expeditions returns the expedition highlights in display order.
func Expeditions() []Expedition {
	out := make([]Expedition, len(expeditions))
	for i, e := range expeditions {
		e.Stats = append([]string(nil), e.Stats...)
		out[i] = e
	}
	return out
}

// Timeline returns the research timeline in display order.
func Timeline() []TimelinePeriod {
	out := make([]TimelinePeriod, len(timeline))
	for i, p := range timeline {
		p.FocusAreas = append([]string(nil), p.FocusAreas...)
		out[i] = p
	}
	return out
}

// Contributions returns the ways to contribute in display order.
func Contributions() []ContributionOption {
	return append([]ContributionOption(nil), contributions...)
}
