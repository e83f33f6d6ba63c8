package codec

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/pillow/node"
)

// ToYAML renders the tree rooted at n as a YAML document, keeping map keys
// in enumeration order. It is meant for printing documents while debugging.
func ToYAML(n *node.Node) ([]byte, error) {
	return yaml.Marshal(yamlNode(n))
}

func yamlNode(n *node.Node) *yaml.Node {
	switch n.Kind() {
	case node.Boolean:
		return scalar("!!bool", strconv.FormatBool(n.BoolValue()))
	case node.Integer:
		return scalar("!!int", strconv.FormatInt(n.IntValue(), 10))
	case node.Double:
		return scalar("!!float", yamlFloat(n.DoubleValue()))
	case node.String:
		s, _ := n.StringValue()
		return scalar("!!str", s)
	case node.Array:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, child := range n.All() {
			seq.Content = append(seq.Content, yamlNode(child))
		}

		return seq
	case node.Map:
		m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for key, child := range n.All() {
			m.Content = append(m.Content, scalar("!!str", key), yamlNode(child))
		}

		return m
	default:
		return scalar("!!null", "null")
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func yamlFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		s := strconv.FormatFloat(f, 'g', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}

		return s
	}
}
