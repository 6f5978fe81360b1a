package assets

import "embed"

// CatalogFile is the name of the bundled catalog inside FS
const CatalogFile = "data.json"

//go:embed data.json
var FS embed.FS
