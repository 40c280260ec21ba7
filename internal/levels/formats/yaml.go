package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// YAMLLevel represents the YAML structure for a level file. Pointer fields
// are required; nil means the key was absent.
type YAMLLevel struct {
	Name       string    `yaml:"name"`
	Rows       *int      `yaml:"rows"`
	Cols       *int      `yaml:"cols"`
	RowSpacing *int      `yaml:"row_spacing"`
	ColSpacing *int      `yaml:"col_spacing"`
	Background *string   `yaml:"background"`
	Empty      string    `yaml:"empty,omitempty"`
	BrickTypes yaml.Node `yaml:"brick_types"`
	Bricks     *string   `yaml:"bricks"`
}

// YAMLBrickType is one entry of brick_types. hit_points accepts a number or
// "infinite".
type YAMLBrickType struct {
	ID         *string `yaml:"id"`
	Texture    *string `yaml:"texture"`
	HitPoints  string  `yaml:"hit_points"`
	HitSound   string  `yaml:"hit_sound,omitempty"`
	BreakSound string  `yaml:"break_sound,omitempty"`
	BreakScore int     `yaml:"break_score"`
}

// ParseYAML parses a YAML level file:
//
//	name: Pyramid
//	rows: 2
//	cols: 4
//	row_spacing: 2
//	col_spacing: 4
//	background: black
//	brick_types:
//	  - {id: S, texture: red, hit_points: 1, break_score: 50}
//	bricks: |
//	  SSSS
//	  _SS_
func ParseYAML(data []byte, source string) (engine.LevelConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return engine.LevelConfig{}, located(source, 0, engine.ErrMalformed, err.Error())
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return engine.LevelConfig{}, located(source, doc.Line, engine.ErrMalformed, "top level must be a mapping")
	}
	root := doc.Content[0]

	var yl YAMLLevel
	if err := root.Decode(&yl); err != nil {
		return engine.LevelConfig{}, located(source, root.Line, engine.ErrInvalidAttribute, err.Error())
	}

	cfg := engine.LevelConfig{
		Name:   strings.TrimSpace(yl.Name),
		Source: source,
	}

	ints := []struct {
		key string
		v   *int
		dst *int
	}{
		{"rows", yl.Rows, &cfg.Main.RowCount},
		{"cols", yl.Cols, &cfg.Main.ColCount},
		{"row_spacing", yl.RowSpacing, &cfg.Main.RowSpacing},
		{"col_spacing", yl.ColSpacing, &cfg.Main.ColSpacing},
	}
	for _, f := range ints {
		if f.v == nil {
			return engine.LevelConfig{}, located(source, root.Line, engine.ErrMissingAttribute, f.key)
		}
		if *f.v < 0 {
			return engine.LevelConfig{}, located(source, keyLine(root, f.key), engine.ErrInvalidAttribute,
				fmt.Sprintf("%s=%d", f.key, *f.v))
		}
		*f.dst = *f.v
	}

	if yl.Background == nil {
		return engine.LevelConfig{}, located(source, root.Line, engine.ErrMissingAttribute, "background")
	}
	cfg.Main.Background = *yl.Background

	if yl.Empty != "" {
		r, ok := singleRune(yl.Empty)
		if !ok {
			return engine.LevelConfig{}, located(source, keyLine(root, "empty"), engine.ErrInvalidAttribute,
				fmt.Sprintf("empty=%q", yl.Empty))
		}
		cfg.EmptyChar = r
	}

	types, err := parseYAMLBrickTypes(&yl.BrickTypes, root, source)
	if err != nil {
		return engine.LevelConfig{}, err
	}
	cfg.BrickTypes = types

	if yl.Bricks == nil {
		return engine.LevelConfig{}, located(source, root.Line, engine.ErrMissingAttribute, "bricks")
	}
	cfg.Layout = *yl.Bricks

	return cfg, nil
}

func parseYAMLBrickTypes(node, root *yaml.Node, source string) ([]*engine.BrickType, error) {
	switch node.Kind {
	case 0:
		return nil, located(source, root.Line, engine.ErrMissingAttribute, "brick_types")
	case yaml.SequenceNode:
	default:
		return nil, located(source, node.Line, engine.ErrInvalidAttribute, "brick_types must be a list")
	}

	types := make([]*engine.BrickType, 0, len(node.Content))
	for _, item := range node.Content {
		var yt YAMLBrickType
		if err := item.Decode(&yt); err != nil {
			return nil, located(source, item.Line, engine.ErrInvalidAttribute, err.Error())
		}

		if yt.ID == nil {
			return nil, located(source, item.Line, engine.ErrMissingAttribute, "brick_types.id")
		}
		key, ok := singleRune(*yt.ID)
		if !ok {
			return nil, located(source, item.Line, engine.ErrInvalidAttribute,
				fmt.Sprintf("id=%q must be one character", *yt.ID))
		}
		if yt.Texture == nil {
			return nil, located(source, item.Line, engine.ErrMissingAttribute, "brick_types.texture")
		}
		hp, ok := parseHitPoints(yt.HitPoints)
		if !ok {
			return nil, located(source, item.Line, engine.ErrInvalidAttribute,
				fmt.Sprintf("hit_points=%q", yt.HitPoints))
		}
		if yt.BreakScore < 0 {
			return nil, located(source, item.Line, engine.ErrInvalidAttribute,
				fmt.Sprintf("break_score=%d", yt.BreakScore))
		}

		types = append(types, &engine.BrickType{
			Key:        key,
			Texture:    *yt.Texture,
			HitPoints:  hp,
			HitSound:   yt.HitSound,
			BreakSound: yt.BreakSound,
			BreakScore: yt.BreakScore,
		})
	}
	return types, nil
}

// keyLine returns the line of key in mapping m, or the mapping line.
func keyLine(m *yaml.Node, key string) int {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i].Line
		}
	}
	return m.Line
}
