package filter

import (
	"go.yaml.in/yaml/v4"
)

// FilterOperations rebuilds the paths section keeping only method entries
// whose value is a mapping with a whitelisted operationId. Paths left with
// no surviving methods are dropped entirely. A missing paths section is
// treated as empty; the rebuilt (possibly empty) mapping is always written
// back.
func FilterOperations(doc *yaml.Node, allowedIDs []string) {
	root := documentRoot(doc)
	if root == nil {
		return
	}

	allowed := toSet(allowedIDs)
	filtered := newMapping()

	if paths := mapValue(root, "paths"); paths != nil && paths.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(paths.Content); i += 2 {
			pathKey := paths.Content[i]
			item := paths.Content[i+1]

			kept := newMapping()
			if item.Kind == yaml.MappingNode {
				for j := 0; j+1 < len(item.Content); j += 2 {
					method := item.Content[j]
					op := item.Content[j+1]
					if op.Kind != yaml.MappingNode {
						continue
					}
					id := mapValue(op, "operationId")
					if id == nil || id.Kind != yaml.ScalarNode {
						continue
					}
					if _, ok := allowed[id.Value]; !ok {
						continue
					}
					kept.Content = append(kept.Content, method, op)
				}
			}

			if len(kept.Content) > 0 {
				filtered.Content = append(filtered.Content, pathKey, kept)
			}
		}
	}

	setMapValue(root, "paths", filtered)
}

// FilterSchemas rebuilds components.schemas keeping only whitelisted names.
// Kept schema values pass through untouched. An absent components or
// components.schemas mapping is treated as empty rather than an error.
func FilterSchemas(doc *yaml.Node, allowedNames []string) {
	filterComponentSection(doc, "schemas", allowedNames)
}

// FilterSecuritySchemes is FilterSchemas for components.securitySchemes.
func FilterSecuritySchemes(doc *yaml.Node, allowedNames []string) {
	filterComponentSection(doc, "securitySchemes", allowedNames)
}

func filterComponentSection(doc *yaml.Node, section string, allowedNames []string) {
	root := documentRoot(doc)
	if root == nil {
		return
	}

	components := mapValue(root, "components")
	if components == nil || components.Kind != yaml.MappingNode {
		components = newMapping()
		setMapValue(root, "components", components)
	}

	allowed := toSet(allowedNames)
	filtered := newMapping()

	if entries := mapValue(components, section); entries != nil && entries.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(entries.Content); i += 2 {
			name := entries.Content[i]
			if _, ok := allowed[name.Value]; !ok {
				continue
			}
			filtered.Content = append(filtered.Content, name, entries.Content[i+1])
		}
	}

	setMapValue(components, section, filtered)
}

// documentRoot unwraps a document node down to its top-level mapping.
func documentRoot(doc *yaml.Node) *yaml.Node {
	if doc == nil {
		return nil
	}
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return nil
		}
		doc = doc.Content[0]
	}
	if doc.Kind != yaml.MappingNode {
		return nil
	}
	return doc
}

// mapValue returns the value node for key, or nil if the node is not a
// mapping or the key is absent.
func mapValue(m *yaml.Node, key string) *yaml.Node {
	if m == nil || m.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

// setMapValue replaces the value for key in place, appending the pair at the
// end when the key does not exist yet.
func setMapValue(m *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, scalar(key), value)
}

func newMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
