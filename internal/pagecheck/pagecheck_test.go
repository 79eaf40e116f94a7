package pagecheck

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<!doctype html>
<html><head>
<script type="application/ld+json" id="schema-org">{"@type":"ResearchOrganization","founders":[{},{}]}</script>
</head><body>
<a href="#about">Explore <span>Our Mission</span></a>
<a href="#research">View Research</a>
<a href="#contact-form">Get Involved</a>
<a href="#contact-form">Again</a>
<a href="mailto:someone@example.org">Mail</a>
<a href="#">Top</a>
<section id="about"></section>
<div id="research"></div>
</body></html>`

func TestInspect_Anchors(t *testing.T) {
	report, err := Inspect(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, report.Anchors, 4, "only non-empty fragment links are collected")
	assert.Equal(t, "Explore Our Mission", report.Anchors[0].Text)
	assert.True(t, report.Anchors[0].Found)
	assert.True(t, report.Anchors[1].Found)

	dangling := report.Dangling()
	require.Len(t, dangling, 2)
	assert.Equal(t, "contact-form", dangling[0].Target)

	assert.True(t, report.HasID("about"))
	assert.True(t, report.HasID("research"))
	assert.False(t, report.HasID("contact-form"))
}

func TestInspect_StructuredData(t *testing.T) {
	report, err := Inspect(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, report.StructuredData, 1)
	block := report.StructuredData[0]
	assert.Equal(t, "schema-org", block.ID)
	assert.Equal(t, "ResearchOrganization", block.Type)
	assert.Empty(t, block.Error)
	assert.Len(t, block.Data["founders"], 2)
}

func TestReport_Err(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantErrIs []error
		wantMsg   string
	}{
		{
			name: "clean document",
			doc:  `<a href="#x">x</a><p id="x"></p>`,
		},
		{
			name:      "dangling anchor listed once",
			doc:       `<a href="#gone">a</a><a href="#gone">b</a>`,
			wantErrIs: []error{ErrDanglingAnchors},
			wantMsg:   "dangling same-page anchors: #gone",
		},
		{
			name:      "broken json-ld",
			doc:       `<script type="application/ld+json">{not json</script>`,
			wantErrIs: []error{ErrStructuredData},
		},
		{
			name:      "both problems",
			doc:       `<a href="#gone">a</a><script type="application/ld+json">[</script>`,
			wantErrIs: []error{ErrDanglingAnchors, ErrStructuredData},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Inspect(strings.NewReader(tt.doc))
			require.NoError(t, err)

			err = report.Err()
			if len(tt.wantErrIs) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, target := range tt.wantErrIs {
				assert.True(t, errors.Is(err, target), "want %v in %v", target, err)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
