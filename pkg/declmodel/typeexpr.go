package declmodel

import (
	"fmt"
	"strings"
)

type exprKind int

const (
	kindString exprKind = iota
	kindInt
	kindFloat
	kindBool
	kindAny
	kindList
	kindMap
	kindRef
	kindParam
)

// typeExpr is one parsed type expression from a declarative field. Reference
// expressions stay unresolved until schema generation; they are looked up
// through the enclosing module's registry entry at that point, which is what
// makes forward and self references work.
type typeExpr struct {
	kind exprKind
	elem *typeExpr // list/map element
	ref  string    // model reference, simple or dotted
}

var primitives = map[string]exprKind{
	"str":   kindString,
	"int":   kindInt,
	"float": kindFloat,
	"bool":  kindBool,
	"any":   kindAny,
}

// parseTypeExpr parses a declarative type expression. params lists the
// enclosing model's template parameters so bare parameter names resolve to
// kindParam instead of a model reference.
func parseTypeExpr(src string, params []string) (*typeExpr, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("declmodel: empty type expression")
	}

	if kind, ok := primitives[src]; ok {
		return &typeExpr{kind: kind}, nil
	}

	for _, container := range []struct {
		prefix string
		kind   exprKind
	}{
		{prefix: "list[", kind: kindList},
		{prefix: "map[", kind: kindMap},
	} {
		if strings.HasPrefix(src, container.prefix) {
			if !strings.HasSuffix(src, "]") {
				return nil, fmt.Errorf("declmodel: unterminated type expression %q", src)
			}
			inner := src[len(container.prefix) : len(src)-1]
			elem, err := parseTypeExpr(inner, params)
			if err != nil {
				return nil, err
			}
			return &typeExpr{kind: container.kind, elem: elem}, nil
		}
	}

	if strings.ContainsAny(src, "[] ") {
		return nil, fmt.Errorf("declmodel: invalid type expression %q", src)
	}

	for _, p := range params {
		if src == p {
			return &typeExpr{kind: kindParam, ref: src}, nil
		}
	}

	return &typeExpr{kind: kindRef, ref: src}, nil
}

// String renders the expression back to its declarative form.
func (e *typeExpr) String() string {
	switch e.kind {
	case kindString:
		return "str"
	case kindInt:
		return "int"
	case kindFloat:
		return "float"
	case kindBool:
		return "bool"
	case kindAny:
		return "any"
	case kindList:
		return "list[" + e.elem.String() + "]"
	case kindMap:
		return "map[" + e.elem.String() + "]"
	default:
		return e.ref
	}
}
