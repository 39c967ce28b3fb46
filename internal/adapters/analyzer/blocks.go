package analyzer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"go.trai.ch/buildserver/internal/core/domain"
)

// Block types and mutation keys that carry build metadata.
const (
	blockDropdown = "helpers_dropdown"

	dropdownPermission = "Permission"
	dropdownFileScope  = "FileScope"

	fieldOption = "OPTION"
)

// blockNameAttrs are the mutation attributes naming the member a block uses.
var blockNameAttrs = []string{"event_name", "method_name", "property_name"}

type blockFrame struct {
	kind     string
	disabled bool
	dropdown string
	inOption bool
	option   strings.Builder
}

// AnalyzeBlocks walks a blocks file and records the component members its
// blocks use, the permissions and the storage scopes it selects.
// Disabled blocks and everything nested in them are ignored.
func (a *Analyzer) AnalyzeBlocks(content []byte) (domain.BlockAnalysis, error) {
	result := domain.NewBlockAnalysis()
	if len(bytes.TrimSpace(content)) == 0 {
		return result, nil
	}

	dec := xml.NewDecoder(bytes.NewReader(content))
	var stack []*blockFrame

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.BlockAnalysis{}, errors.Join(domain.ErrDescriptorParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var top *blockFrame
			if len(stack) > 0 {
				top = stack[len(stack)-1]
			}
			switch t.Name.Local {
			case "block", "shadow":
				frame := &blockFrame{kind: attr(t, "type"), disabled: attr(t, "disabled") == "true"}
				if top != nil && top.disabled {
					frame.disabled = true
				}
				stack = append(stack, frame)
			case "mutation":
				if top == nil || top.disabled {
					continue
				}
				if top.kind == blockDropdown {
					top.dropdown = attr(t, "key")
					continue
				}
				recordMutation(&result, t)
			case "field":
				if top != nil && top.kind == blockDropdown && attr(t, "name") == fieldOption {
					top.inOption = true
				}
			}
		case xml.CharData:
			if len(stack) > 0 && stack[len(stack)-1].inOption {
				stack[len(stack)-1].option.Write(t)
			}
		case xml.EndElement:
			if len(stack) == 0 {
				continue
			}
			top := stack[len(stack)-1]
			switch t.Name.Local {
			case "field":
				top.inOption = false
			case "block", "shadow":
				stack = stack[:len(stack)-1]
				if !top.disabled {
					recordDropdown(&result, top)
				}
			}
		}
	}

	return result, nil
}

func recordMutation(result *domain.BlockAnalysis, t xml.StartElement) {
	typ := attr(t, "component_type")
	if typ == "" {
		return
	}
	for _, name := range blockNameAttrs {
		if member := attr(t, name); member != "" {
			result.AddBlock(typ, member)
		}
	}
}

func recordDropdown(result *domain.BlockAnalysis, frame *blockFrame) {
	option := strings.TrimSpace(frame.option.String())
	if option == "" {
		return
	}
	switch frame.dropdown {
	case dropdownPermission:
		result.Permissions[domain.QualifyPermission(option)] = struct{}{}
	case dropdownFileScope:
		result.Scopes[option] = struct{}{}
	}
}

func attr(t xml.StartElement, name string) string {
	for _, a := range t.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
