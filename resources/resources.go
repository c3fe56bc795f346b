package resources

import (
	"embed"
)

//go:embed flagmaps/*.yaml
var FlagMapFiles embed.FS
