// Package placeholder builds inline SVG shimmers shown while full-size
// images load.
package placeholder

import (
	"encoding/base64"
	"fmt"
)

// DataURIPrefix precedes the base64 payload returned by DataURI.
const DataURIPrefix = "data:image/svg+xml;base64,"

// fill matches the slate card background so the swap is not jarring.
const fill = "#1e293b"

// Shimmer returns an SVG document of the given size holding a single
// rectangle whose opacity pulses every two seconds.
func Shimmer(width, height int) string {
	return fmt.Sprintf(`<svg width="%[1]d" height="%[2]d" version="1.1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`+
		`<rect id="r" width="%[1]d" height="%[2]d" fill="%[3]s" />`+
		`<animate attributeName="opacity" values="0.5;1;0.5" dur="2s" repeatCount="indefinite"/>`+
		`</svg>`, width, height, fill)
}

// DataURI returns Shimmer(width, height) encoded as a base64 data URI.
func DataURI(width, height int) string {
	return DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(Shimmer(width, height)))
}
