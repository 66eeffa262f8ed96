// Package document assembles resume sections into a page-bounded document
// and trims it until it fits.
package document

import (
	"fmt"
	"strings"
)

// Template names a page layout.
type Template string

const (
	// SingleColumn stacks every section vertically.
	SingleColumn Template = "single-column"
	// TwoColumn puts education and skills on the left, experience and projects on the right.
	TwoColumn Template = "two-column"
)

// templateAliases maps historical template names onto layouts.
var templateAliases = map[string]Template{
	"single-column": SingleColumn,
	"single":        SingleColumn,
	"bengt":         SingleColumn,
	"two-column":    TwoColumn,
	"two":           TwoColumn,
	"deedy":         TwoColumn,
}

// ParseTemplate resolves a template name or alias, case-insensitively.
func ParseTemplate(name string) (Template, error) {
	t, ok := templateAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown template %q (expected single-column or two-column)", name)
	}
	return t, nil
}

// Layout computes the total line cost of a document's content.
type Layout interface {
	Template() Template
	TotalCost(c *Content) int
}

// LayoutFor returns the layout strategy for a template.
func LayoutFor(t Template) (Layout, error) {
	switch t {
	case SingleColumn:
		return singleColumn{}, nil
	case TwoColumn:
		return twoColumn{}, nil
	default:
		return nil, fmt.Errorf("unknown template %q", t)
	}
}

type singleColumn struct{}

func (singleColumn) Template() Template { return SingleColumn }

func (singleColumn) TotalCost(c *Content) int {
	return c.headerCost() + c.experienceCost() + c.educationCost() + c.projectCost() + c.skillsCost()
}

type twoColumn struct{}

func (twoColumn) Template() Template { return TwoColumn }

func (twoColumn) TotalCost(c *Content) int {
	left, right := Columns(c)
	return c.headerCost() + max(left, right)
}

// Columns returns the two-column heights: education plus skills on the
// left, experience plus projects on the right.
func Columns(c *Content) (left, right int) {
	return c.educationCost() + c.skillsCost(), c.experienceCost() + c.projectCost()
}
