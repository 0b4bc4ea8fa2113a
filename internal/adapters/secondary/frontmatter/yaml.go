package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fredcamaral/slidedeck/internal/domain/entities"
)

// YAMLDecoder decodes the header as a YAML mapping.
// Scalars become scalar values, sequences of scalars become lists, and any
// other node is kept as its YAML text.
type YAMLDecoder struct{}

// Decode implements Decoder
func (YAMLDecoder) Decode(header string) (*entities.FrontMatter, error) {
	fm := entities.NewFrontMatter()
	if strings.TrimSpace(header) == "" {
		return fm, nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(header), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return fm, nil
	}

	root := resolve(doc.Content[0])
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: header is not a mapping", ErrMalformedHeader)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valueNode := resolve(root.Content[i]), resolve(root.Content[i+1])

		key := strings.TrimSpace(keyNode.Value)
		if keyNode.Kind != yaml.ScalarNode || key == "" {
			return nil, fmt.Errorf("%w: unsupported key on line %d", ErrMalformedHeader, keyNode.Line)
		}

		value, err := yamlValue(valueNode)
		if err != nil {
			return nil, fmt.Errorf("%w: key %q: %v", ErrMalformedHeader, key, err)
		}
		fm.Set(key, value)
	}

	return fm, nil
}

func yamlValue(node *yaml.Node) (entities.FrontMatterValue, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return entities.Scalar(""), nil
		}
		return entities.Scalar(node.Value), nil
	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, child := range node.Content {
			child = resolve(child)
			if child.Kind != yaml.ScalarNode {
				return yamlText(node)
			}
			items = append(items, child.Value)
		}
		return entities.List(items...), nil
	default:
		return yamlText(node)
	}
}

func yamlText(node *yaml.Node) (entities.FrontMatterValue, error) {
	out, err := yaml.Marshal(node)
	if err != nil {
		return entities.FrontMatterValue{}, err
	}
	return entities.Scalar(strings.TrimSpace(string(out))), nil
}

// resolve follows alias nodes to their anchors
func resolve(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

var _ Decoder = YAMLDecoder{}
