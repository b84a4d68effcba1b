// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Record holds one extracted standards-listing entry. Fields are named
// rather than positional so a short column can never silently shift
// values into the wrong field.
type Record struct {
	// OperatingName is the short identifier the organization operates
	// under (e.g. "ASC X9").
	OperatingName string `json:"operating_name" yaml:"operating_name"`

	// LegalName is the full legal entity name, parsed from the
	// parenthesized portion of the same line as OperatingName.
	LegalName string `json:"legal_name" yaml:"legal_name"`

	// Website is the organization website, or "Nil" when the page
	// carried none.
	Website string `json:"website" yaml:"website"`

	// DocumentName is the standard designator (e.g. "ANSI X9.24-2021").
	DocumentName string `json:"document_name" yaml:"document_name"`

	// StandardTitle is the standard's title text.
	StandardTitle string `json:"standard_title" yaml:"standard_title"`

	// PublishingDate is the final action date from the marker line.
	PublishingDate string `json:"publishing_date" yaml:"publishing_date"`

	// Classification is the constant scheme marker, "American" for
	// every record of this listing.
	Classification string `json:"american_standard" yaml:"american_standard"`
}

// Classification value applied to every record of the listing.
const ClassificationAmerican = "American"

// Columns lists the output column headers in table order.
var Columns = []string{
	"Operating Name",
	"Legal Name",
	"Website",
	"Document Name",
	"Standard Title",
	"Publishing Date",
	"American Standard",
}

// Values returns the record's fields in Columns order.
func (r Record) Values() []string {
	return []string{
		r.OperatingName,
		r.LegalName,
		r.Website,
		r.DocumentName,
		r.StandardTitle,
		r.PublishingDate,
		r.Classification,
	}
}
