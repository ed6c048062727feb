package filter

import (
	"github.com/openbar-dev/oastrim/internal/config"
	"go.yaml.in/yaml/v4"
)

// Summary reports what survived a filtering run.
type Summary struct {
	PathsKept           int
	OperationsKept      int
	SchemasKept         int
	SecuritySchemesKept int
}

// Apply runs the whitelist filters over the document tree in place and
// returns counts of the surviving entries. Security schemes are left
// untouched when cfg.KeepSecuritySchemes is set.
func Apply(doc *yaml.Node, cfg *config.Config) Summary {
	FilterOperations(doc, cfg.Whitelist.Operations)
	FilterSchemas(doc, cfg.Whitelist.Schemas)
	if !cfg.KeepSecuritySchemes {
		FilterSecuritySchemes(doc, cfg.Whitelist.SecuritySchemes)
	}
	return summarize(doc)
}

func summarize(doc *yaml.Node) Summary {
	var s Summary

	root := documentRoot(doc)
	if root == nil {
		return s
	}

	if paths := mapValue(root, "paths"); paths != nil && paths.Kind == yaml.MappingNode {
		s.PathsKept = len(paths.Content) / 2
		for i := 1; i < len(paths.Content); i += 2 {
			if item := paths.Content[i]; item.Kind == yaml.MappingNode {
				s.OperationsKept += len(item.Content) / 2
			}
		}
	}

	components := mapValue(root, "components")
	if schemas := mapValue(components, "schemas"); schemas != nil && schemas.Kind == yaml.MappingNode {
		s.SchemasKept = len(schemas.Content) / 2
	}
	if schemes := mapValue(components, "securitySchemes"); schemes != nil && schemes.Kind == yaml.MappingNode {
		s.SecuritySchemesKept = len(schemes.Content) / 2
	}

	return s
}
