// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package build turns a populated registry into an OpenAPI 3.0 document.
//
// The Builder accumulates API metadata (info, servers, tags) and walks the
// registry's routes, emitting one path item per path and one operation per
// method. Only shapes referenced by a route end up in components.
package build

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"rivaas.dev/taskdocs/diag"
	"rivaas.dev/taskdocs/document"
	"rivaas.dev/taskdocs/registry"
)

// Generation errors.
var (
	// ErrDuplicateOperationID indicates two routes resolve to the same operation ID.
	ErrDuplicateOperationID = errors.New("duplicate operation ID")

	// ErrNoRoutes indicates the registry holds no routes.
	ErrNoRoutes = errors.New("at least one route is required")

	// ErrUnencodableExample indicates a field example has no JSON form.
	ErrUnencodableExample = errors.New("example cannot be encoded")
)

// Builder builds OpenAPI documents from a registry.
type Builder struct {
	info    document.Info
	servers []*document.Server
	tags    []*document.Tag
}

// NewBuilder creates a new builder with the given API info.
func NewBuilder(info document.Info) *Builder {
	return &Builder{info: info}
}

// AddServer adds a server URL to the document.
func (b *Builder) AddServer(url, desc string) *Builder {
	b.servers = append(b.servers, &document.Server{URL: url, Description: desc})
	return b
}

// AddTag adds a top-level tag definition to the document.
func (b *Builder) AddTag(name, desc string) *Builder {
	b.tags = append(b.tags, &document.Tag{Name: name, Description: desc})
	return b
}

// Build generates the document for every route in reg.
//
// It fails when the registry is empty, when a route references a shape that is
// not defined, or when two routes share an operation ID. Shapes no route
// references are reported as warnings and left out.
func (b *Builder) Build(ctx context.Context, reg *registry.Registry) (*document.Document, diag.Warnings, error) {
	routes := reg.Routes()
	if len(routes) == 0 {
		return nil, nil, ErrNoRoutes
	}

	info := b.info
	doc := &document.Document{
		OpenAPI: document.Version,
		Info:    &info,
		Servers: cloneServers(b.servers),
		Tags:    cloneTags(b.tags),
		Paths:   map[string]*document.PathItem{},
	}

	var warns diag.Warnings
	referenced := map[string]bool{}
	seenOps := map[string]registry.Key{}
	declaredTags := map[string]bool{}
	for _, t := range b.tags {
		declaredTags[t.Name] = true
	}

	for _, r := range routes {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		for _, h := range r.References() {
			if _, err := reg.Resolve(h); err != nil {
				return nil, nil, fmt.Errorf("route %s: %w", r.Key(), err)
			}
			referenced[h.Name()] = true
		}

		op := buildOperation(r)
		if prev, dup := seenOps[op.OperationID]; dup {
			return nil, nil, fmt.Errorf("%w: %s (used by %s and %s)", ErrDuplicateOperationID, op.OperationID, prev, r.Key())
		}
		seenOps[op.OperationID] = r.Key()

		if len(declaredTags) > 0 {
			for _, tag := range op.Tags {
				if !declaredTags[tag] {
					warns = append(warns, diag.New(diag.WarnUndeclaredTag, pointer(r.Key()),
						fmt.Sprintf("tag '%s' is not declared at the top level", tag)))
				}
			}
		}

		key := r.Key()
		item, ok := doc.Paths[key.Path]
		if !ok {
			item = &document.PathItem{}
			doc.Paths[key.Path] = item
		}
		item.SetOperation(key.Method, op)
	}

	schemas := map[string]*document.Schema{}
	for _, s := range reg.Shapes() {
		ptr := document.SchemaRefPrefix + s.Name
		if !referenced[s.Name] {
			warns = append(warns, diag.New(diag.WarnUnreferencedShape, ptr, "shape is never referenced and was omitted"))
			continue
		}
		schema, err := shapeSchema(s)
		if err != nil {
			return nil, nil, err
		}
		schemas[s.Name] = schema
		for _, f := range s.Fields {
			if f.Example == nil {
				warns = append(warns, diag.New(diag.WarnMissingExample, ptr+"/properties/"+f.Name, "field has no example"))
			}
		}
	}
	if len(schemas) > 0 {
		doc.Components = &document.Components{Schemas: schemas}
	}

	return doc, warns, nil
}

// buildOperation builds an Operation from a registered route.
func buildOperation(r registry.Route) *document.Operation {
	key := r.Key()
	op := &document.Operation{
		Summary:     r.Summary,
		Description: r.Description,
		OperationID: r.OperationID,
		Deprecated:  r.Deprecated,
		Responses:   map[string]*document.Response{},
	}
	if op.OperationID == "" {
		op.OperationID = generateOperationID(key.Method, key.Path)
	}
	if len(r.Tags) > 0 {
		op.Tags = slices.Clone(r.Tags)
	}

	for _, name := range registry.PathParams(key.Path) {
		op.Parameters = append(op.Parameters, &document.Parameter{
			Name:     name,
			In:       "path",
			Required: true,
			Schema:   &document.Schema{Type: registry.KindString.String()},
		})
	}

	if req := r.Request; req != nil && !req.Shape.IsZero() {
		op.RequestBody = &document.RequestBody{
			Description: req.Description,
			Required:    true,
			Content: map[string]*document.MediaType{
				first(req.ContentType, registry.DefaultContentType): {Schema: document.RefTo(req.Shape.Name())},
			},
		}
	}

	for _, status := range r.Statuses() {
		resp := r.Responses[status]
		rs := &document.Response{Description: first(resp.Description, httpStatusText(status))}
		if !resp.Shape.IsZero() {
			rs.Content = map[string]*document.MediaType{
				first(resp.ContentType, registry.DefaultContentType): {Schema: document.RefTo(resp.Shape.Name())},
			}
		}
		op.Responses[strconv.Itoa(status)] = rs
	}

	if len(op.Responses) == 0 {
		op.Responses[strconv.Itoa(http.StatusOK)] = &document.Response{Description: httpStatusText(http.StatusOK)}
	}

	return op
}

// shapeSchema converts a shape into an object schema with one property per field.
// Examples are stored normalized, as decoding the encoded document yields them.
func shapeSchema(s registry.Shape) (*document.Schema, error) {
	out := &document.Schema{
		Type:        "object",
		Description: s.Description,
		Properties:  make(map[string]*document.Schema, len(s.Fields)),
		Required:    s.Required(),
	}
	for _, f := range s.Fields {
		example, err := document.NormalizeValue(f.Example)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrUnencodableExample, s.Name, f.Name, err)
		}
		out.Properties[f.Name] = &document.Schema{
			Type:        f.Kind.String(),
			Description: f.Description,
			Nullable:    f.Nullable,
			Example:     example,
		}
	}

	return out, nil
}

// generateOperationID creates a semantic operationId from HTTP method and normalized path.
//
//	GET  /api/tasks      -> getApiTasks
//	POST /api/tasks      -> createApiTask
//	GET  /api/tasks/{id} -> getApiTaskById
func generateOperationID(method, path string) string {
	method = strings.ToUpper(method)
	verb := methodToVerb(method)

	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 1 && segments[0] == "" {
		return verb + "Root"
	}

	var resourceParts []string
	var lastParam string

	for i, seg := range segments {
		if seg == "" {
			continue
		}

		if name, ok := paramName(seg); ok {
			lastParam = name
			continue
		}

		nextIsParam := false
		if i+1 < len(segments) {
			_, nextIsParam = paramName(segments[i+1])
		}

		switch {
		case nextIsParam:
			resourceParts = append(resourceParts, capitalize(singularize(seg)))
		case method == http.MethodGet || method == http.MethodDelete:
			resourceParts = append(resourceParts, capitalize(seg))
		default:
			resourceParts = append(resourceParts, capitalize(singularize(seg)))
		}
	}

	result := verb + strings.Join(resourceParts, "")
	if lastParam != "" {
		result += "By" + capitalize(lastParam)
	}

	return result
}

// paramName returns the name of a {param} segment.
func paramName(seg string) (string, bool) {
	if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
		return seg[1 : len(seg)-1], true
	}

	return "", false
}

// methodToVerb converts HTTP method to semantic verb.
func methodToVerb(method string) string {
	switch strings.ToUpper(method) {
	case http.MethodGet:
		return "get"
	case http.MethodPost:
		return "create"
	case http.MethodPut:
		return "replace"
	case http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	case http.MethodHead:
		return "head"
	case http.MethodOptions:
		return "options"
	default:
		return strings.ToLower(method)
	}
}

// singularize converts plural words to singular (simple implementation).
func singularize(word string) string {
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 3:
		return word[:len(word)-3] + "y" // categories -> category
	case strings.HasSuffix(word, "ses") && len(word) > 3:
		return word[:len(word)-2] // statuses -> status
	case strings.HasSuffix(word, "ches") && len(word) > 4:
		return word[:len(word)-2] // batches -> batch
	case strings.HasSuffix(word, "xes") && len(word) > 3:
		return word[:len(word)-2] // boxes -> box
	case strings.HasSuffix(word, "s") && len(word) > 1:
		return word[:len(word)-1] // tasks -> task
	default:
		return word
	}
}

// capitalize capitalizes the first letter of a string.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])

	return string(runes)
}

// httpStatusText returns a description for an HTTP status code.
func httpStatusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}

	return "Response"
}

// first returns s, or def if s is empty.
func first(s, def string) string {
	if s != "" {
		return s
	}

	return def
}

// pointer returns the JSON pointer of an operation, e.g. "#/paths/~1api~1tasks/get".
func pointer(k registry.Key) string {
	escaped := strings.ReplaceAll(strings.ReplaceAll(k.Path, "~", "~0"), "/", "~1")
	return "#/paths/" + escaped + "/" + k.Method
}

func cloneServers(in []*document.Server) []*document.Server {
	if len(in) == 0 {
		return nil
	}
	out := make([]*document.Server, len(in))
	for i, s := range in {
		c := *s
		out[i] = &c
	}

	return out
}

func cloneTags(in []*document.Tag) []*document.Tag {
	if len(in) == 0 {
		return nil
	}
	out := make([]*document.Tag, len(in))
	for i, t := range in {
		c := *t
		out[i] = &c
	}

	return out
}
