package constants

// Built-in SVG documents used when the trigger or an item has no icon file.
// They are drawn on a 24x24 view box and scaled to the element's size.
const (
	PlusIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<path fill="#FFFFFF" d="M11 5h2v6h6v2h-6v6h-2v-6H5v-2h6z"/></svg>`

	DotIconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">` +
		`<circle fill="#FFFFFF" cx="12" cy="12" r="4"/></svg>`
)
