package landing

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmicmystery/cosmicsite/internal/pagecheck"
	"github.com/cosmicmystery/cosmicsite/internal/starfield"
	"github.com/cosmicmystery/cosmicsite/internal/testutil"
	"github.com/cosmicmystery/cosmicsite/internal/ui/features"
)

// =============================================================================
// Test Setup Helpers
// =============================================================================

func setupRouter(t *testing.T, opts ...features.FixtureOption) (chi.Router, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t, opts...)
	r := chi.NewRouter()
	require.NoError(t, SetupRoutes(r, fixture.Site, fixture.Stars, fixture.Contacts, fixture.SessionStore, testutil.NewTestLogger(t)))
	return r, fixture
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postContact(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return do(t, h, req)
}

// =============================================================================
// HomePage Tests
// =============================================================================

func TestHomePage(t *testing.T) {
	r, _ := setupRouter(t)

	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Cosmic Mystery Center",
		`name="description"`,
		`property="og:title"`,
		`name="twitter:card"`,
		`application/ld+json`,
		"data-init",
		"/reveal",
		`id="hero-content"`,
		"translate-y-10 opacity-0",
		`id="about"`,
		`id="research"`,
		`id="support"`,
		`id="contact-form"`,
		"mailto:donations@cosmicmystery.org",
		"data:image/svg+xml;base64,",
	} {
		assert.Contains(t, body, want, "response should contain %q", want)
	}
}

func TestHomePage_PreRevealState(t *testing.T) {
	r, _ := setupRouter(t)
	body := do(t, r, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

	assert.Contains(t, body, `id="starfield"`)
	assert.Equal(t, 0, strings.Count(body, `class="star"`), "no stars before mount")
	assert.NotContains(t, body, "translate-y-0 opacity-100")
}

func TestHomePage_Counts(t *testing.T) {
	r, _ := setupRouter(t)
	body := do(t, r, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

	assert.Equal(t, 2, strings.Count(body, `class="founder"`))
	assert.Equal(t, 4, strings.Count(body, `class="pillar"`))
	assert.Equal(t, 2, strings.Count(body, `class="expedition"`))
	assert.Equal(t, 5, strings.Count(body, `class="card timeline-period"`))
	assert.Equal(t, 3, strings.Count(body, `class="contribution"`))
	assert.Equal(t, 4, strings.Count(body, `class="achievement"`))
}

func TestHomePage_LinkIntegrity(t *testing.T) {
	r, _ := setupRouter(t)
	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/", nil))

	report, err := pagecheck.Inspect(rec.Body)
	require.NoError(t, err)
	assert.NoError(t, report.Err())
	assert.True(t, report.HasID("contact-form"))

	require.Len(t, report.StructuredData, 1)
	assert.Empty(t, report.StructuredData[0].Error)
	assert.Equal(t, "ResearchOrganization", report.StructuredData[0].Type)
}

func TestHomePage_WithoutContactForm(t *testing.T) {
	r, _ := setupRouter(t, features.WithoutContactForm())
	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/", nil))

	report, err := pagecheck.Inspect(rec.Body)
	require.NoError(t, err)
	assert.ErrorIs(t, report.Err(), pagecheck.ErrDanglingAnchors)

	// The form endpoint is not mounted either.
	post := postContact(t, r, url.Values{"name": {"Ada"}})
	assert.Equal(t, http.StatusNotFound, post.Code)
}

func TestHomePage_CustomContactEmail(t *testing.T) {
	r, _ := setupRouter(t, features.WithContactEmail("hello@example.org"))
	body := do(t, r, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()

	assert.Contains(t, body, "mailto:hello@example.org")
	assert.NotContains(t, body, "donations@cosmicmystery.org")
}

// =============================================================================
// Reveal Tests - one-shot SSE mount initialization
// =============================================================================

func TestReveal(t *testing.T) {
	r, _ := setupRouter(t)

	req := features.RequestWithTimeout(t, httptest.NewRequest(http.MethodGet, "/reveal", nil), time.Second)
	rec := do(t, r, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/event-stream")

	body := rec.Body.String()
	assert.Contains(t, body, "datastar-patch-signals")
	assert.Contains(t, body, `"revealed":true`)
	assert.Contains(t, body, "datastar-patch-elements")
	assert.Contains(t, body, `id="starfield"`)
	assert.Equal(t, starfield.PointCount, strings.Count(body, `class="star"`))
	assert.Contains(t, body, "animation-delay:")
}

func TestReveal_PatchesTheMountedStars(t *testing.T) {
	r, _ := setupRouter(t)
	want := starfield.NewSeededGenerator(42, 1024).Generate()

	body := do(t, r, httptest.NewRequest(http.MethodGet, "/reveal", nil)).Body.String()
	for _, p := range want {
		assert.Contains(t, body, "top: "+p.Top+"; left: "+p.Left+"; animation-delay: "+p.Delay+";")
	}
}

func TestReveal_FreshStarsPerMount(t *testing.T) {
	r, _ := setupRouter(t)

	first := do(t, r, httptest.NewRequest(http.MethodGet, "/reveal", nil)).Body.String()
	second := do(t, r, httptest.NewRequest(http.MethodGet, "/reveal", nil)).Body.String()
	assert.NotEqual(t, first, second, "every mount draws its own star field")
}

// =============================================================================
// Companion endpoints
// =============================================================================

func TestStructuredData(t *testing.T) {
	r, _ := setupRouter(t)
	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/structured-data.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/ld+json", rec.Header().Get("Content-Type"))

	var ld struct {
		Context  string `json:"@context"`
		Type     string `json:"@type"`
		Name     string `json:"name"`
		Founders []struct {
			Name string `json:"name"`
		} `json:"founders"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ld))
	assert.Equal(t, "https://schema.org", ld.Context)
	assert.Equal(t, "ResearchOrganization", ld.Type)
	assert.Equal(t, "Cosmic Mystery Center", ld.Name)
	assert.Len(t, ld.Founders, 2)
}

func TestMarkdown(t *testing.T) {
	r, _ := setupRouter(t)
	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/index.md", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "Our Mission")
}

func TestHealth(t *testing.T) {
	r, _ := setupRouter(t)
	rec := do(t, r, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// =============================================================================
// Contact form flow
// =============================================================================

func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		sinkErr   error
		wantFlash string
		wantKind  string
		delivered int
	}{
		{
			name: "valid submission is delivered",
			form: url.Values{
				"name":     {"Ada Lovelace"},
				"email":    {"ada@example.com"},
				"interest": {"Equipment Fund"},
				"message":  {"Happy to help with sensors."},
			},
			wantFlash: MessageThanks,
			wantKind:  "flash-success",
			delivered: 1,
		},
		{
			name:      "invalid email is rejected",
			form:      url.Values{"name": {"Ada"}, "email": {"not-an-email"}, "message": {"hi"}},
			wantFlash: "Please check your email",
			wantKind:  "flash-error",
		},
		{
			name:      "delivery failure is reported",
			form:      url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}},
			sinkErr:   errors.New("smtp down"),
			wantFlash: MessageUndelivered,
			wantKind:  "flash-error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, fixture := setupRouter(t)
			fixture.Sink.Err = tt.sinkErr

			rec := postContact(t, r, tt.form)
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/#contact-form", rec.Header().Get("Location"))
			assert.Len(t, fixture.Sink.Inquiries(), tt.delivered)

			cookies := rec.Result().Cookies()
			require.NotEmpty(t, cookies, "flash is carried in the session cookie")

			get := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, c := range cookies {
				get.AddCookie(c)
			}
			body := do(t, r, get).Body.String()
			assert.Contains(t, body, tt.wantKind)
			assert.Contains(t, body, tt.wantFlash)
		})
	}
}

func TestSubmitContact_SanitizesMarkup(t *testing.T) {
	r, fixture := setupRouter(t)

	rec := postContact(t, r, url.Values{
		"name":    {"<b>Ada</b>"},
		"email":   {"ada@example.com"},
		"message": {`<script>alert(1)</script>Count me in`},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	got := fixture.Sink.Inquiries()
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].Name)
	assert.Equal(t, "Count me in", got[0].Message)
	assert.NotEmpty(t, got[0].ID)
}

func TestHomePage_FlashIsShownOnce(t *testing.T) {
	r, _ := setupRouter(t)

	rec := postContact(t, r, url.Values{"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"hi"}})
	cookies := rec.Result().Cookies()

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		first.AddCookie(c)
	}
	firstRec := do(t, r, first)
	assert.Contains(t, firstRec.Body.String(), MessageThanks)

	// The page response rewrites the cookie without the consumed flash.
	second := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range firstRec.Result().Cookies() {
		second.AddCookie(c)
	}
	assert.NotContains(t, do(t, r, second).Body.String(), MessageThanks)
}
