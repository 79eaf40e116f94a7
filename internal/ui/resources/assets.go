// Package resources provides static asset handling for the site server and
// the static export.
package resources

// StaticDirectoryPath is the path to static assets from the project root.
const StaticDirectoryPath = "internal/ui/resources/static"

// StaticPath returns the URL path for a static asset.
func StaticPath(path string) string {
	return "/static/" + path
}

// RelativeStaticPath returns a static asset path relative to the document
// root, for exports that may be hosted under a sub-path.
func RelativeStaticPath(path string) string {
	return "static/" + path
}
