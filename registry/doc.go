/*
Package registry provides the split definition registry.

A split definition maps a stable auto splitter identifier (for example
"MothwingCloak") to the display name written into a splits file
("Mothwing Cloak (Skill)") plus optional route metadata. The registry is
loaded once from a static asset and is read-only afterwards, so a single
*Registry can be shared by any number of concurrent conversions.

# Basic Usage

Load from a file on disk:

	src := registry.FileSource{Path: "assets/splits.json"}
	reg, err := src.Load(ctx)
	if err != nil {
	    var le *registry.LoadError
	    if errors.As(err, &le) {
	        // malformed or unreadable asset
	    }
	}

	def, ok := reg.Lookup("MothwingCloak")

Load from an fs.FS (embedded assets):

	src := registry.FSSource{FS: assets.FS, Path: "splits.json"}

# Caching

Wrap any Source in a CachedLoader to load once and reuse the result:

	loader := registry.NewCachedLoader(src)
	reg, err := loader.Load(ctx) // reads the asset
	reg, err = loader.Load(ctx)  // returns the same *Registry

Failed loads are not cached; the next call retries.

# Asset Format

JSON (.json) or YAML (.yml, .yaml):

	{
	  "splits": [
	    {"id": "MothwingCloak", "name": "Mothwing Cloak (Skill)", "description": "Splits when obtaining Mothwing Cloak"}
	  ]
	}

Every entry needs an id and a name. Duplicate ids make the asset malformed.
*/
package registry
