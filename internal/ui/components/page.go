package components

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/cosmicmystery/cosmicsite/internal/contact"
	"github.com/cosmicmystery/cosmicsite/internal/content"
	"github.com/cosmicmystery/cosmicsite/internal/placeholder"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
)

// Expedition placeholder dimensions.
const (
	PlaceholderWidth  = 800
	PlaceholderHeight = 400
)

// Hero reveal classes.
const (
	HiddenClasses   = "translate-y-10 opacity-0"
	RevealedClasses = "translate-y-0 opacity-100"
)

// Flash is a one-time message shown above the contact form.
type Flash struct {
	Kind    string // "success" or "error"
	Message string
}

// PageView is everything one render of the landing page depends on.
type PageView struct {
	Content  content.Page
	Revealed bool
	Points   []starfield.Point
	// RevealURL is fetched once after first paint. Empty disables it.
	RevealURL   string
	ContactForm bool
	ContactURL  string
	Flash       *Flash
}

// Page renders the complete landing page document.
func Page(shell Shell, v PageView) templ.Component {
	return Component(PageNode(shell, v))
}

// PageNode is Page without the templ adapter.
func PageNode(shell Shell, v PageView) g.Node {
	bodyAttrs := []g.Node{
		h.Class("site"),
		g.Attr("data-signals", signals(v.Revealed)),
	}
	if v.RevealURL != "" {
		bodyAttrs = append(bodyAttrs, g.Attr("data-init", "@get('"+v.RevealURL+"')"))
	}

	return Document(shell, bodyAttrs,
		h.Main(
			heroSection(v),
			foundersSection(v.Content),
			missionSection(v.Content),
			researchSection(v.Content),
			g.If(v.ContactForm, ContactFormSection(v.ContactURL, v.Flash)),
		),
		footer(),
	)
}

func signals(revealed bool) string {
	if revealed {
		return "{revealed: true}"
	}
	return "{revealed: false}"
}

// StarField renders the decorative star layer. It keeps the same id whether
// empty or populated so a patch replaces it in place.
func StarField(points []starfield.Point) templ.Component {
	return Component(starFieldNode(points))
}

func starFieldNode(points []starfield.Point) g.Node {
	return h.Div(h.ID("starfield"), h.Class("starfield"), g.Attr("aria-hidden", "true"),
		g.Map(points, func(p starfield.Point) g.Node {
			return h.Div(h.Class("star"),
				g.Attr("style", "top: "+p.Top+"; left: "+p.Left+"; animation-delay: "+p.Delay+";"),
			)
		}),
	)
}

// HeroClasses returns the transition classes for the given reveal state.
func HeroClasses(revealed bool) string {
	if revealed {
		return RevealedClasses
	}
	return HiddenClasses
}

func heroSection(v PageView) g.Node {
	hero := v.Content.Hero
	return h.Section(h.ID("hero"), h.Class("hero"),
		h.Div(h.Class("starfield-backdrop"), starFieldNode(v.Points)),
		h.Div(h.Class("container hero-inner"),
			h.Div(h.ID("hero-content"),
				h.Class("hero-content "+HeroClasses(v.Revealed)),
				g.Attr("data-class", "{'translate-y-0': $revealed, 'opacity-100': $revealed, 'translate-y-10': !$revealed, 'opacity-0': !$revealed}"),
				h.H1(h.Class("hero-title"), g.Text(hero.Title)),
				h.P(h.Class("hero-tagline"), g.Text(hero.Tagline)),
				h.Div(h.Class("hero-actions"),
					h.A(h.Href(hero.Primary.Href), h.Class("button button-primary"), g.Text(hero.Primary.Label)),
					h.A(h.Href(hero.Secondary.Href), h.Class("link-arrow"),
						g.Text(hero.Secondary.Label+" "),
						h.Span(g.Attr("aria-hidden", "true"), g.Text("→")),
					),
				),
			),
		),
		h.Div(h.Class("achievements"),
			g.Map(v.Content.Achievements, func(a content.Achievement) g.Node {
				return h.Div(h.ID(a.ID()), h.Class("achievement"),
					Icon(a.Icon, 24, "accent"),
					h.Span(g.Text(a.Text)),
				)
			}),
		),
	)
}

func foundersSection(c content.Page) g.Node {
	return h.Section(h.ID(content.AnchorAbout), h.Class("section"),
		h.Div(h.Class("container"),
			h.H2(h.Class("section-title"), g.Text("Our Legacy")),
			h.Div(h.Class("founders"),
				g.Map(c.Founders, func(f content.FounderProfile) g.Node {
					return h.Article(h.ID(f.ID()), h.Class("founder"),
						h.Div(h.Class("founder-portrait"),
							h.Img(h.Src(f.ImagePath), h.Alt(f.Alt()), h.Width("200"), h.Height("200")),
						),
						h.H3(h.Class("founder-name"), g.Text(f.Name)),
						h.P(h.Class("founder-role"), g.Text(f.Role)),
					)
				}),
			),
			h.P(h.Class("lead"), g.Text(c.LegacyIntro)),
			h.Div(h.Class("grid-2"),
				g.Map(c.Stories, func(s content.Story) g.Node {
					return h.Div(h.ID(s.ID()), h.Class("card"),
						h.H3(h.Class("card-title accent"), g.Text(s.Title)),
						h.P(g.Text(s.Body)),
					)
				}),
			),
		),
	)
}

func missionSection(c content.Page) g.Node {
	return h.Section(h.ID("mission"), h.Class("section section-alt"),
		h.Div(h.Class("container mission"),
			h.Div(
				h.H2(h.Class("section-title"), g.Text("Our Mission")),
				h.P(h.Class("lead"), g.Text(c.MissionStatement)),
			),
			h.Div(h.Class("pillars"),
				g.Map(c.Pillars, func(p content.MissionPillar) g.Node {
					return h.Div(h.ID(p.ID()), h.Class("pillar"),
						Icon(p.Icon, 32, "accent"),
						h.H3(g.Text(p.Title)),
						h.P(h.Class("muted"), g.Text(p.Description)),
					)
				}),
			),
		),
	)
}

func researchSection(c content.Page) g.Node {
	blur := placeholder.DataURI(PlaceholderWidth, PlaceholderHeight)
	return h.Section(h.ID(content.AnchorResearch), h.Class("section"),
		h.Div(h.Class("container"),
			h.H2(h.Class("section-title"), g.Text("Groundbreaking Expeditions")),
			h.Div(h.Class("grid-2 expeditions"),
				g.Map(c.Expeditions, func(e content.Expedition) g.Node {
					return h.Article(h.ID(e.ID()), h.Class("expedition"),
						h.Div(h.Class("expedition-image"),
							g.Attr("style", "background-image: url('"+blur+"');"),
							h.Img(h.Src(e.ImagePath), h.Alt(e.Title), g.Attr("loading", "lazy"), g.Attr("decoding", "async")),
						),
						h.Div(h.Class("expedition-body"),
							h.Div(h.Class("location accent"), Icon(content.IconMapPin, 18, ""), h.Span(g.Text(e.Location))),
							h.H3(h.Class("card-title"), g.Text(e.Title)),
							h.P(g.Text(e.Description)),
							chips(e.Stats),
						),
					)
				}),
			),
			timelineSection(c),
			supportSection(c),
		),
	)
}

func timelineSection(c content.Page) g.Node {
	return h.Div(h.ID("timeline"), h.Class("subsection"),
		h.H2(h.Class("section-title"), g.Text("Future Research Timeline")),
		h.Ol(h.Class("timeline"),
			g.Map(c.Timeline, func(p content.TimelinePeriod) g.Node {
				return h.Li(h.ID(p.ID()), h.Class("card timeline-period"),
					h.Span(h.Class("timeline-years accent"), g.Text(p.YearRange)),
					h.H3(h.Class("card-title"), g.Text(p.Title)),
					h.P(g.Text(p.Description)),
					chips(p.FocusAreas),
				)
			}),
		),
	)
}

func supportSection(c content.Page) g.Node {
	return h.Div(h.ID(content.AnchorSupport), h.Class("subsection narrow"),
		h.H2(h.Class("section-title"), g.Text("Support Our Research")),
		h.P(h.Class("lead center"), g.Text(c.SupportIntro)),
		h.Div(h.Class("card"),
			h.H3(h.Class("card-title accent"), g.Text("Ways to Contribute")),
			h.Ul(h.Class("contributions"),
				g.Map(c.Contributions, func(o content.ContributionOption) g.Node {
					return h.Li(h.ID(o.ID()), h.Class("contribution"),
						h.Div(h.Class("contribution-icon"), Icon(o.Icon, 24, "accent")),
						h.Div(
							h.H4(g.Text(o.Title)),
							h.P(h.Class("muted"), g.Text(o.Description)),
						),
					)
				}),
			),
		),
		h.Div(h.Class("contact center"),
			h.H3(g.Text(c.Contact.Heading)),
			h.P(h.Class("muted"),
				g.Text(c.Contact.Intro), h.Br(),
				g.Text("Email: "),
				h.A(h.Href("mailto:"+c.Contact.Email), h.Class("accent"), g.Text(c.Contact.Email)),
			),
			h.A(h.Href(c.Contact.CTA.Href), h.Class("button button-primary"), g.Text(c.Contact.CTA.Label)),
		),
	)
}

// ContactFormSection is the #contact-form target. Switching it off leaves
// the "Get Involved" link dangling, which pagecheck reports.
func ContactFormSection(action string, flash *Flash) g.Node {
	return h.Section(h.ID(content.AnchorContactForm), h.Class("section section-alt"),
		h.Div(h.Class("container narrow"),
			h.H2(h.Class("section-title"), g.Text("Get Involved")),
			g.If(flash != nil, flashNode(flash)),
			g.El("form", h.Method("post"), h.Action(action), h.Class("card contact-form"),
				field("name", "Name", h.Input(h.Type("text"), h.ID("contact-name"), h.Name("name"), h.Required(), g.Attr("maxlength", "120"), g.Attr("autocomplete", "name"))),
				field("email", "Email", h.Input(h.Type("email"), h.ID("contact-email"), h.Name("email"), h.Required(), g.Attr("autocomplete", "email"))),
				field("interest", "Interest", g.El("select", h.ID("contact-interest"), h.Name("interest"),
					g.Map(contact.Interests, func(i string) g.Node {
						return g.El("option", h.Value(i), g.Text(i))
					}),
				)),
				field("message", "Message", g.El("textarea", h.ID("contact-message"), h.Name("message"), h.Required(), g.Attr("rows", "5"), g.Attr("maxlength", "4000"))),
				h.Button(h.Type("submit"), h.Class("button button-primary"), g.Text("Send Inquiry")),
			),
		),
	)
}

func flashNode(f *Flash) g.Node {
	if f == nil {
		return nil
	}
	return h.Div(h.Class("flash flash-"+f.Kind), g.Attr("role", "status"), g.Text(f.Message))
}

func field(name, label string, control g.Node) g.Node {
	return h.Div(h.Class("field"),
		g.El("label", g.Attr("for", "contact-"+name), g.Text(label)),
		control,
	)
}

func chips(items []string) g.Node {
	return h.Ul(h.Class("chips"),
		g.Map(items, func(s string) g.Node {
			return h.Li(h.Class("chip"), g.Text(s))
		}),
	)
}

func footer() g.Node {
	return h.Footer(h.Class("site-footer"),
		h.Div(h.Class("container muted"),
			g.Text("© "+content.OrganizationName+" · West Lafayette, IN"),
		),
	)
}
