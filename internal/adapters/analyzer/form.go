// Package analyzer extracts build metadata from form and blocks descriptors.
package analyzer

import (
	"bytes"
	"encoding/json"
	"errors"

	"go.trai.ch/buildserver/internal/core/domain"
	"go.trai.ch/buildserver/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DescriptorAnalyzer = (*Analyzer)(nil)

const (
	jsonStart = "$JSON"
	jsonEnd   = "|#"

	defaultOrientation = "unspecified"
)

// Analyzer parses descriptor contents. It holds no state.
type Analyzer struct{}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

type formFile struct {
	Properties formComponent `json:"Properties"`
}

type formComponent struct {
	Type        string          `json:"$Type"`
	Orientation string          `json:"ScreenOrientation"`
	Components  []formComponent `json:"$Components"`
}

// ComponentNames returns the distinct component names used in a form file,
// including the form itself, in ascending order.
func (a *Analyzer) ComponentNames(content []byte) ([]string, error) {
	form, err := parseForm(content)
	if err != nil {
		return nil, err
	}

	names := make(map[string]struct{})
	collectTypes(form.Properties, names)
	return domain.SortedKeys(names), nil
}

// Orientation returns the ScreenOrientation property of the form, or
// "unspecified" when it is not set.
func (a *Analyzer) Orientation(content []byte) (string, error) {
	form, err := parseForm(content)
	if err != nil {
		return "", err
	}
	if form.Properties.Orientation == "" {
		return defaultOrientation, nil
	}
	return form.Properties.Orientation, nil
}

func collectTypes(c formComponent, names map[string]struct{}) {
	if c.Type != "" {
		names[c.Type] = struct{}{}
	}
	for _, child := range c.Components {
		collectTypes(child, names)
	}
}

func parseForm(content []byte) (*formFile, error) {
	start := bytes.Index(content, []byte(jsonStart))
	if start < 0 {
		return nil, zerr.Wrap(domain.ErrDescriptorParse, "missing $JSON marker")
	}
	body := content[start+len(jsonStart):]
	if end := bytes.LastIndex(body, []byte(jsonEnd)); end >= 0 {
		body = body[:end]
	}

	var form formFile
	if err := json.Unmarshal(bytes.TrimSpace(body), &form); err != nil {
		return nil, errors.Join(domain.ErrDescriptorParse, err)
	}
	return &form, nil
}
