// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parsetree

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/antimony-lang/antcompile/source"
)

// DecodeYAML decodes a concrete syntax tree from its YAML serialization.
//
// This is the ingestion path for parsers that run out of process: the
// parser emits the tree it produced, and this module picks it up without
// linking against the parser. It is also the format of this module's own
// test fixtures.
//
// A token node is a mapping with "token" (the token-type name) and "text"
// keys; a rule node has "rule" and "children" keys. A null child stands
// for an elided optional element. Every node may carry an explicit
// "span"; when it does not, spans are synthesized by advancing a cursor
// through the token text in source order, starting at 1:1.
func DecodeYAML(data []byte) (Node, error) {
	var raw yamlNode
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsetree: %w", err)
	}
	cursor := source.Position{Line: 1, Column: 1}
	return raw.toNode(&cursor)
}

type yamlNode struct {
	Token    string      `yaml:"token"`
	Text     string      `yaml:"text"`
	Rule     string      `yaml:"rule"`
	Span     *yamlSpan   `yaml:"span"`
	Children []*yamlNode `yaml:"children"`
}

type yamlSpan struct {
	Start yamlPos `yaml:"start"`
	End   yamlPos `yaml:"end"`
}

type yamlPos struct {
	Line   int `yaml:"line"`
	Column int `yaml:"column"`
}

func (s *yamlSpan) toRange() source.Range {
	return source.Range{
		Start: source.Position{Line: s.Start.Line, Column: s.Start.Column},
		End:   source.Position{Line: s.End.Line, Column: s.End.Column},
	}
}

// toNode converts one raw node, advancing cursor past its text.
func (n *yamlNode) toNode(cursor *source.Position) (Node, error) {
	switch {
	case n.Token != "" && n.Rule != "":
		return nil, fmt.Errorf("parsetree: node has both token %q and rule %q", n.Token, n.Rule)

	case n.Token != "":
		var span source.Range
		if n.Span != nil {
			span = n.Span.toRange()
		} else {
			span = source.Range{Start: *cursor, End: source.Advance(*cursor, n.Text)}
		}
		*cursor = span.End
		return &Token{Type: n.Token, Text: n.Text, Range: span}, nil

	case n.Rule != "":
		children := make([]Node, len(n.Children))
		var span source.Range
		first := true
		for i, raw := range n.Children {
			if raw == nil {
				continue // elided optional
			}
			child, err := raw.toNode(cursor)
			if err != nil {
				return nil, err
			}
			children[i] = child
			if first {
				span.Start = child.Span().Start
				first = false
			}
			span.End = child.Span().End
		}
		if first {
			// No children at all; the rule matched the empty string.
			span = source.Range{Start: *cursor, End: *cursor}
		}
		if n.Span != nil {
			span = n.Span.toRange()
		}
		return &Tree{Rule: n.Rule, Range: span, Children: children}, nil

	default:
		return nil, fmt.Errorf("parsetree: node has neither a token nor a rule tag")
	}
}
