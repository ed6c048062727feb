package loader

import (
	"bytes"
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// Render serializes the document tree back to YAML. Mapping keys come out in
// the order they sit in the tree, so filtered documents stay diffable against
// their source.
func (r *Result) Render() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(r.Root); err != nil {
		return nil, fmt.Errorf("rendering spec: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("rendering spec: %w", err)
	}

	return buf.Bytes(), nil
}

func (r *Result) WriteFile(path string) error {
	data, err := r.Render()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing spec file: %w", err)
	}
	return nil
}
