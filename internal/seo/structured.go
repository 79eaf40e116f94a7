package seo

import (
	"encoding/json"
	"fmt"

	"github.com/cosmicmystery/cosmicsite/internal/content"
)

// SchemaContext is the JSON-LD vocabulary.
const SchemaContext = "https://schema.org"

// Person is a schema.org Person.
type Person struct {
	Type     string `json:"@type"`
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
}

// PostalAddress is a schema.org PostalAddress.
type PostalAddress struct {
	Type            string `json:"@type"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
	AddressCountry  string `json:"addressCountry"`
}

// Place is a schema.org Place.
type Place struct {
	Type    string        `json:"@type"`
	Name    string        `json:"name"`
	Address PostalAddress `json:"address"`
}

// StructuredData is the ResearchOrganization record embedded in the page.
type StructuredData struct {
	Context     string   `json:"@context"`
	Type        string   `json:"@type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Founders    []Person `json:"founders"`
	Location    Place    `json:"location"`
}

// Organization builds the structured-data record from the founder list.
func Organization(founders []content.FounderProfile) StructuredData {
	people := make([]Person, 0, len(founders))
	for _, f := range founders {
		people = append(people, Person{Type: "Person", Name: f.Name, JobTitle: f.Role})
	}
	return StructuredData{
		Context:     SchemaContext,
		Type:        "ResearchOrganization",
		Name:        content.OrganizationName,
		Description: "Leading institution in paranormal research and unexplained phenomena investigation.",
		Founders:    people,
		Location: Place{
			Type: "Place",
			Name: "West Lafayette",
			Address: PostalAddress{
				Type:            "PostalAddress",
				AddressLocality: "West Lafayette",
				AddressRegion:   "IN",
				AddressCountry:  "US",
			},
		},
	}
}

// JSON serializes the record with encoding/json's default HTML escaping,
// which keeps the payload safe inside a <script> element.
func (d StructuredData) JSON() ([]byte, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal structured data: %w", err)
	}
	return b, nil
}
