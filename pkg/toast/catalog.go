package toast

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTypes decodes a user-defined type catalog:
//
//	types:
//	  - name: awesome
//	    htmlClasses: [awesome, awesome-border]
//
// JSON documents are accepted as well. An empty document yields no types.
func LoadTypes(r io.Reader) ([]UserDefinedType, error) {
	var doc struct {
		Types any `yaml:"types"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Join(ErrInvalidCatalog, err)
	}

	types, err := ParseUserDefinedTypes(doc.Types)
	if err != nil {
		return nil, errors.Join(ErrInvalidCatalog, err)
	}
	return types, nil
}

// LoadTypesFile reads a type catalog from path.
func LoadTypesFile(path string) ([]UserDefinedType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open type catalog: %w", err)
	}
	defer f.Close()

	return LoadTypes(f)
}

// DecodeOptions decodes a single YAML or JSON mapping into Options.
func DecodeOptions(r io.Reader) (Options, error) {
	var opts Options
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil {
		if errors.Is(err, io.EOF) {
			return Options{}, nil
		}
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

// DecodeOptionsList decodes a YAML or JSON sequence of mappings, given either
// as the top-level document or under a "notifications" key.
func DecodeOptionsList(r io.Reader) ([]Options, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode options list: %w", err)
	}

	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.MappingNode {
		node = mappingValue(node, "notifications")
		if node == nil {
			return nil, errors.New("decode options list: missing notifications key")
		}
	}

	var list []Options
	if err := node.Decode(&list); err != nil {
		return nil, fmt.Errorf("decode options list: %w", err)
	}
	return list, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
