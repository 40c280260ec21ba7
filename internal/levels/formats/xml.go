package formats

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/tui-bricks/internal/engine"
)

// XML element names.
const (
	xmlLevel      = "Level"
	xmlBrickTypes = "BrickTypes"
	xmlBrickType  = "BrickType"
	xmlBricks     = "Bricks"
)

// xmlElement is a start tag with its attributes and position.
type xmlElement struct {
	name   string
	attrs  map[string]string
	line   int
	source string
}

func newXMLElement(se xml.StartElement, line int, source string) xmlElement {
	attrs := make(map[string]string, len(se.Attr))
	for _, a := range se.Attr {
		attrs[a.Name.Local] = a.Value
	}
	return xmlElement{name: se.Name.Local, attrs: attrs, line: line, source: source}
}

func (e xmlElement) str(name string) (string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return "", located(e.source, e.line, engine.ErrMissingAttribute, fmt.Sprintf("%s.%s", e.name, name))
	}
	return v, nil
}

func (e xmlElement) num(name string) (int, error) {
	v, err := e.str(name)
	if err != nil {
		return 0, err
	}
	n, ok := parseNonNegative(v)
	if !ok {
		return 0, located(e.source, e.line, engine.ErrInvalidAttribute, fmt.Sprintf("%s.%s=%q", e.name, name, v))
	}
	return n, nil
}

// ParseXML parses the element-and-attribute level format:
//
//	<Level RowCount="3" ColumnCount="5" RowSpacing="2" ColumnSpacing="4" BackgroundTexture="bg.png">
//	  <BrickTypes>
//	    <BrickType Id="S" Texture="soft.png" HitPoints="1" HitSound="hit.wav" BreakSound="break.wav" BreakScore="50"/>
//	  </BrickTypes>
//	  <Bricks>SSSSS ...</Bricks>
//	</Level>
func ParseXML(data []byte, source string) (engine.LevelConfig, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		cfg       engine.LevelConfig
		layout    strings.Builder
		depth     int
		sawLevel  bool
		sawTypes  bool
		sawBricks bool
		inTypes   bool
		inBricks  bool
	)
	cfg.Source = source

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		line, _ := dec.InputPos()
		if err != nil {
			return engine.LevelConfig{}, located(source, line, engine.ErrMalformed, err.Error())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := newXMLElement(t, line, source)
			switch {
			case depth == 0:
				if el.name != xmlLevel {
					return engine.LevelConfig{}, located(source, line, engine.ErrMalformed,
						fmt.Sprintf("root element is <%s>, want <%s>", el.name, xmlLevel))
				}
				sawLevel = true
				if err := parseXMLMain(el, &cfg); err != nil {
					return engine.LevelConfig{}, err
				}
			case depth == 1 && el.name == xmlBrickTypes:
				sawTypes, inTypes = true, true
			case depth == 1 && el.name == xmlBricks:
				sawBricks, inBricks = true, true
			case depth == 2 && inTypes && el.name == xmlBrickType:
				bt, err := parseXMLBrickType(el)
				if err != nil {
					return engine.LevelConfig{}, err
				}
				cfg.BrickTypes = append(cfg.BrickTypes, bt)
			}
			depth++
		case xml.EndElement:
			depth--
			switch {
			case depth == 1 && t.Name.Local == xmlBrickTypes:
				inTypes = false
			case depth == 1 && t.Name.Local == xmlBricks:
				inBricks = false
			}
		case xml.CharData:
			if inBricks && depth == 2 {
				layout.Write(t)
			}
		}
	}

	switch {
	case !sawLevel:
		return engine.LevelConfig{}, located(source, 0, engine.ErrMalformed, "no <Level> element")
	case !sawTypes:
		return engine.LevelConfig{}, located(source, 0, engine.ErrMissingAttribute, "<BrickTypes> element")
	case !sawBricks:
		return engine.LevelConfig{}, located(source, 0, engine.ErrMissingAttribute, "<Bricks> element")
	}

	cfg.Layout = layout.String()
	return cfg, nil
}

func parseXMLMain(el xmlElement, cfg *engine.LevelConfig) error {
	var err error
	if cfg.Main.RowCount, err = el.num("RowCount"); err != nil {
		return err
	}
	if cfg.Main.ColCount, err = el.num("ColumnCount"); err != nil {
		return err
	}
	if cfg.Main.RowSpacing, err = el.num("RowSpacing"); err != nil {
		return err
	}
	if cfg.Main.ColSpacing, err = el.num("ColumnSpacing"); err != nil {
		return err
	}
	if cfg.Main.Background, err = el.str("BackgroundTexture"); err != nil {
		return err
	}

	cfg.Name = strings.TrimSpace(el.attrs["Name"])
	if v, ok := el.attrs["EmptyChar"]; ok {
		r, valid := singleRune(v)
		if !valid {
			return located(el.source, el.line, engine.ErrInvalidAttribute, fmt.Sprintf("Level.EmptyChar=%q", v))
		}
		cfg.EmptyChar = r
	}
	return nil
}

func parseXMLBrickType(el xmlElement) (*engine.BrickType, error) {
	id, err := el.str("Id")
	if err != nil {
		return nil, err
	}
	key, ok := singleRune(id)
	if !ok {
		return nil, located(el.source, el.line, engine.ErrInvalidAttribute, fmt.Sprintf("BrickType.Id=%q must be one character", id))
	}

	texture, err := el.str("Texture")
	if err != nil {
		return nil, err
	}

	hp, ok := parseHitPoints(el.attrs["HitPoints"])
	if !ok {
		return nil, located(el.source, el.line, engine.ErrInvalidAttribute, fmt.Sprintf("BrickType.HitPoints=%q", el.attrs["HitPoints"]))
	}

	score := 0
	if v, present := el.attrs["BreakScore"]; present {
		if score, ok = parseNonNegative(v); !ok {
			return nil, located(el.source, el.line, engine.ErrInvalidAttribute, fmt.Sprintf("BrickType.BreakScore=%q", v))
		}
	}

	return &engine.BrickType{
		Key:        key,
		Texture:    texture,
		HitPoints:  hp,
		HitSound:   el.attrs["HitSound"],
		BreakSound: el.attrs["BreakSound"],
		BreakScore: score,
	}, nil
}
