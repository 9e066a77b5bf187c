package landing

import (
	"cmp"
	"context"
	"fmt"
	"net/http"
	"reflect"
	"runtime"
	"slices"
	"strings"

	"github.com/a-h/templ"
)

const pageComponent = "Page"

type parseContext struct {
	root *PageNode
	deps depRegistry
}

func parsePageTree(route string, page any, deps ...any) (*parseContext, error) {
	pc := &parseContext{deps: make(depRegistry)}
	for _, d := range deps {
		if err := pc.deps.add(d); err != nil {
			return nil, fmt.Errorf("registering dependency: %w", err)
		}
	}
	root, err := pc.parsePageTree(route, "", page)
	if err != nil {
		return nil, err
	}
	pc.root = root
	return pc, nil
}

func (pc *parseContext) parsePageTree(route, fieldName string, page any) (*PageNode, error) {
	if page == nil {
		return nil, fmt.Errorf("page %q is nil", fieldName)
	}
	v := reflect.ValueOf(page)
	if v.Kind() != reflect.Ptr {
		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}
	st := v.Type().Elem()
	if st.Kind() != reflect.Struct {
		return nil, fmt.Errorf("page %s must be a struct, got %s", cmp.Or(fieldName, st.String()), st.Kind())
	}

	node := &PageNode{Name: cmp.Or(fieldName, st.Name()), Value: v}
	node.Method, node.Route, node.Title = parseTag(route)

	for i := range st.NumField() {
		field := st.Field(i)
		childRoute, ok := field.Tag.Lookup("route")
		if !ok {
			continue
		}
		typ := field.Type
		if typ.Kind() == reflect.Ptr {
			typ = typ.Elem()
		}
		child, err := pc.parsePageTree(childRoute, field.Name, reflect.New(typ).Interface())
		if err != nil {
			return nil, err
		}
		child.Parent = node
		node.Children = append(node.Children, child)
	}

	// Value receiver methods show up on the pointer type as autogenerated
	// wrappers, which isPromotedMethod skips, so both method sets are read.
	for _, t := range []reflect.Type{st, v.Type()} {
		for i := range t.NumMethod() {
			method := t.Method(i)
			if isPromotedMethod(&method) || !isComponent(&method) {
				continue
			}
			if node.Components == nil {
				node.Components = make(map[string]*reflect.Method)
			}
			node.Components[method.Name] = &method
		}
	}
	return node, nil
}

// callMethod calls method on the node value. Parameters are filled from the
// request, the node itself, and the dependency registry, in that order.
func (pc *parseContext) callMethod(node *PageNode, method *reflect.Method, r *http.Request) ([]reflect.Value, error) {
	mt := method.Type
	in := make([]reflect.Value, mt.NumIn())
	in[0] = node.Value
	if mt.In(0).Kind() != reflect.Ptr {
		in[0] = node.Value.Elem()
	}
	for i := 1; i < mt.NumIn(); i++ {
		argType := mt.In(i)
		switch {
		case argType == reflect.TypeFor[*http.Request]():
			if r == nil {
				return nil, fmt.Errorf("method %s needs *http.Request outside a request", formatMethod(method))
			}
			in[i] = reflect.ValueOf(r)
		case argType == reflect.TypeFor[context.Context]():
			if r == nil {
				return nil, fmt.Errorf("method %s needs context.Context outside a request", formatMethod(method))
			}
			in[i] = reflect.ValueOf(r.Context())
		case argType == reflect.TypeFor[*PageNode]():
			in[i] = reflect.ValueOf(node)
		default:
			val, ok := pc.deps.get(argType)
			if !ok {
				return nil, fmt.Errorf("method %s requires argument of type %s, but none was registered",
					formatMethod(method), argType)
			}
			in[i] = val
		}
	}
	return method.Func.Call(in), nil
}

func (pc *parseContext) callComponent(node *PageNode, method *reflect.Method, r *http.Request) (templ.Component, error) {
	res, err := pc.callMethod(node, method, r)
	if err != nil {
		return nil, err
	}
	res, err = extractError(res)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", formatMethod(method), err)
	}
	comp, ok := res[0].Interface().(templ.Component)
	if !ok || comp == nil {
		return nil, fmt.Errorf("method %s returned a nil component", formatMethod(method))
	}
	return comp, nil
}

func extractError(res []reflect.Value) ([]reflect.Value, error) {
	if len(res) == 0 || !res[len(res)-1].Type().AssignableTo(errorType) {
		return res, nil
	}
	last := res[len(res)-1]
	res = res[:len(res)-1]
	if last.IsNil() {
		return res, nil
	}
	return res, last.Interface().(error)
}

func formatMethod(method *reflect.Method) string {
	if method == nil || !method.Func.IsValid() {
		return "<nil>"
	}
	return fmt.Sprintf("%s.%s", method.Type.In(0), method.Name)
}

// parseTag splits a route tag into method, path and title. The method is
// optional and defaults to GET.
func parseTag(route string) (method, path, title string) {
	method = http.MethodGet
	parts := strings.Fields(route)
	switch len(parts) {
	case 0:
		return method, "/", ""
	case 1:
		return method, parts[0], ""
	}
	if m := strings.ToUpper(parts[0]); slices.Contains(validMethods, m) {
		return m, parts[1], strings.Join(parts[2:], " ")
	}
	return method, parts[0], strings.Join(parts[1:], " ")
}

const methodAll = "ALL"

var validMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	methodAll,
}

func isComponent(m *reflect.Method) bool {
	t := m.Type
	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return false
		}
	default:
		return false
	}
	return t.Out(0) == componentType || t.Out(0).Implements(componentType)
}

// isPromotedMethod reports whether method comes from an embedded type.
// https://github.com/golang/go/issues/73883
func isPromotedMethod(method *reflect.Method) bool {
	pc := method.Func.Pointer()
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return false
	}
	file, line := fn.FileLine(pc)
	return file == "<autogenerated>" && line == 1
}
