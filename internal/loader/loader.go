package loader

import (
	"fmt"
	"os"
	"strings"

	"github.com/pb33f/libopenapi"
	"go.yaml.in/yaml/v4"
)

type Result struct {
	Document libopenapi.Document
	Root     *yaml.Node
	Version  string
	RawData  []byte
}

func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading spec file: %w", err)
	}
	return Load(data)
}

func Load(data []byte) (*Result, error) {
	doc, err := libopenapi.NewDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parsing OpenAPI document: %w", err)
	}

	version := doc.GetVersion()
	if !strings.HasPrefix(version, "3.") {
		return nil, fmt.Errorf("unsupported OpenAPI version: %s (only 3.x supported)", version)
	}

	info := doc.GetSpecInfo()
	if info == nil || info.RootNode == nil {
		return nil, fmt.Errorf("document has no content")
	}

	return &Result{
		Document: doc,
		Root:     info.RootNode,
		Version:  version,
		RawData:  data,
	}, nil
}
