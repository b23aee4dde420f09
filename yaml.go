package star

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders v as a YAML float or string scalar.
func (v Value) MarshalYAML() (any, error) {
	return v.yamlNode(), nil
}

func (v Value) yamlNode() *yaml.Node {
	if v.kind == NumberKind {
		s := v.String()
		switch s {
		case "inf":
			s = ".inf"
		case "-inf":
			s = "-.inf"
		case "nan":
			s = ".nan"
		default:
			// Keep integral numbers from resolving as !!int.
			if !strings.ContainsAny(s, ".eE") {
				s += ".0"
			}
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: s}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.text}
}

// MarshalYAML renders the document as a YAML mapping from block id to
// block, in document order. Scalar blocks become mappings of field to
// value; tables become a mapping with "columns" and "rows" entries.
func (d *Document) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for id, b := range d.All() {
		root.Content = append(root.Content, strNode(id), blockNode(b))
	}
	return root, nil
}

func blockNode(b Block) *yaml.Node {
	switch b := b.(type) {
	case *ScalarBlock:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for name, v := range b.All() {
			n.Content = append(n.Content, strNode(name), v.yamlNode())
		}
		return n
	case *TableBlock:
		cols := &yaml.Node{Kind: yaml.SequenceNode}
		for _, c := range b.columns {
			cols.Content = append(cols.Content, strNode(c))
		}
		rows := &yaml.Node{Kind: yaml.SequenceNode}
		for _, row := range b.rows {
			r := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
			for _, v := range row {
				r.Content = append(r.Content, v.yamlNode())
			}
			rows.Content = append(rows.Content, r)
		}
		return &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
			strNode("columns"), cols,
			strNode("rows"), rows,
		}}
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
