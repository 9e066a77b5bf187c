package landing

import (
	"fmt"
	"iter"
	"maps"
	"path"
	"reflect"
	"slices"
	"strings"
)

// PageNode is one page of a mounted tree.
type PageNode struct {
	Name       string
	Title      string
	Method     string
	Route      string
	Value      reflect.Value
	Components map[string]*reflect.Method
	Parent     *PageNode
	Children   []*PageNode
}

// FullRoute joins the routes from the root down to this node.
func (pn *PageNode) FullRoute() string {
	if pn.Parent == nil {
		return pn.Route
	}
	return path.Join(pn.Parent.FullRoute(), pn.Route)
}

// All yields the node and its descendants depth first.
func (pn *PageNode) All() iter.Seq[*PageNode] {
	return func(yield func(*PageNode) bool) {
		walk(pn, yield)
	}
}

func walk(pn *PageNode, yield func(*PageNode) bool) bool {
	if !yield(pn) {
		return false
	}
	for _, child := range pn.Children {
		if !walk(child, yield) {
			return false
		}
	}
	return true
}

func (pn *PageNode) String() string {
	var sb strings.Builder
	sb.WriteString("PageNode{")
	sb.WriteString("\n  name: " + pn.Name)
	sb.WriteString("\n  title: " + pn.Title)
	sb.WriteString("\n  route: " + pn.Method + " " + pn.FullRoute())
	for _, name := range slices.Sorted(maps.Keys(pn.Components)) {
		sb.WriteString("\n  component: " + name + " -> " + formatMethod(pn.Components[name]))
	}
	for i, child := range pn.Children {
		fmt.Fprintf(&sb, "\n  child %d:", i+1)
		for _, line := range strings.SplitAfter(strings.TrimRight(child.String(), "\n"), "\n") {
			sb.WriteString("  " + line)
		}
	}
	sb.WriteString("\n}")
	return sb.String()
}
