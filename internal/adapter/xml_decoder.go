package adapter

import (
	"bytes"
	"encoding"
	"encoding/xml"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/ianaindex"

	m "github.com/mouse-blink/valdiff/internal/model"
)

const tagName = "val"

// ReportDecoder turns the XML payload of a report into a typed document.
type ReportDecoder interface {
	Decode(r io.Reader) (*m.Document, error)
}

// XMLReportDecoder decodes report XML strictly: unknown attributes, unknown elements,
// stray text, duplicated or missing fields and unknown discriminators all fail the
// whole document.
type XMLReportDecoder struct {
	structs sync.Map // reflect.Type -> *structInfo
}

// NewXMLReportDecoder constructs an XMLReportDecoder.
func NewXMLReportDecoder() *XMLReportDecoder {
	return &XMLReportDecoder{}
}

// Decode reads one report document from r.
func (d *XMLReportDecoder) Decode(r io.Reader) (*m.Document, error) {
	root, err := readElementTree(r)
	if err != nil {
		return nil, err
	}

	doc := &m.Document{}
	if err := d.decode(root, reflect.ValueOf(doc).Elem(), ""); err != nil {
		return nil, err
	}

	return doc, nil
}

// element is the generic projection of an XML element.
type element struct {
	name     string
	attrs    []xml.Attr
	children []*element
	text     []byte
}

func (e *element) trimmedText() string {
	return string(bytes.TrimSpace(e.text))
}

func readElementTree(r io.Reader) (*element, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		root  *element
		stack []*element
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrap(err, "error parsing XML")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local, attrs: structuralAttrs(t.Attr)}

			if len(stack) == 0 {
				if root != nil {
					return nil, errors.Errorf("unexpected second root element <%s>", el.name)
				}

				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}

			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, t...)
			}
		}
	}

	if root == nil {
		return nil, errors.New("no root element found")
	}

	return root, nil
}

// structuralAttrs drops namespace declarations, which carry no report data.
func structuralAttrs(attrs []xml.Attr) []xml.Attr {
	out := make([]xml.Attr, 0, len(attrs))

	for _, attr := range attrs {
		if attr.Name.Space == "xmlns" || attr.Name.Local == "xmlns" {
			continue
		}

		out = append(out, attr)
	}

	return out
}

func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported charset %q", label)
	}

	if enc == nil {
		return nil, errors.Errorf("unsupported charset %q", label)
	}

	return enc.NewDecoder().Reader(input), nil
}

type fieldKind int

const (
	attrField fieldKind = iota
	textField
	childField
)

type fieldInfo struct {
	index int
	name  string
	kind  fieldKind
}

type structInfo struct {
	attrs    map[string]fieldInfo
	children map[string]fieldInfo
	text     *fieldInfo
	fields   []fieldInfo
}

func (d *XMLReportDecoder) structInfo(t reflect.Type) *structInfo {
	if cached, ok := d.structs.Load(t); ok {
		return cached.(*structInfo)
	}

	info := &structInfo{
		attrs:    make(map[string]fieldInfo),
		children: make(map[string]fieldInfo),
	}

	for i := 0; i < t.NumField(); i++ {
		tag, ok := t.Field(i).Tag.Lookup(tagName)
		if !ok {
			continue
		}

		var f fieldInfo

		switch {
		case tag == "$text":
			f = fieldInfo{index: i, name: tag, kind: textField}
			info.text = &f
		case strings.HasPrefix(tag, "@"):
			f = fieldInfo{index: i, name: tag[1:], kind: attrField}
			info.attrs[f.name] = f
		default:
			f = fieldInfo{index: i, name: tag, kind: childField}
			info.children[f.name] = f
		}

		info.fields = append(info.fields, f)
	}

	actual, _ := d.structs.LoadOrStore(t, info)

	return actual.(*structInfo)
}

var (
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	sectionType         = reflect.TypeOf((*m.Section)(nil)).Elem()
	measurementType     = reflect.TypeOf((*m.Measurement)(nil)).Elem()
	valueType           = reflect.TypeOf((*m.Value)(nil)).Elem()
)

func (d *XMLReportDecoder) decode(el *element, v reflect.Value, path string) error {
	if v.Kind() == reflect.Interface {
		return d.decodeVariant(el, v, path)
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}

		return d.decode(el, v.Elem(), path)
	}

	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshalerType) {
		if err := expectLeaf(el, path); err != nil {
			return err
		}

		u, _ := v.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(el.trimmedText())); err != nil {
			return &m.DecodeError{Path: path, Err: err}
		}

		return nil
	}

	switch v.Kind() {
	case reflect.String:
		if err := expectLeaf(el, path); err != nil {
			return err
		}

		v.SetString(el.trimmedText())

		return nil
	case reflect.Struct:
		return d.decodeStruct(el, v, path)
	default:
		return &m.DecodeError{Path: path, Err: errors.Errorf("unsupported target type %s", v.Type())}
	}
}

func (d *XMLReportDecoder) decodeStruct(el *element, v reflect.Value, path string) error {
	info := d.structInfo(v.Type())
	seen := make(map[int]bool, len(info.fields))
	seenAttrs := make(map[string]bool, len(el.attrs))

	for _, attr := range el.attrs {
		attrPath := joinPath(path, "@"+attr.Name.Local)

		f, ok := info.attrs[attr.Name.Local]
		if !ok {
			return &m.DecodeError{Path: attrPath, Err: m.ErrUnknownField}
		}

		// encoding/xml keeps repeated attributes.
		if seenAttrs[attr.Name.Local] {
			return &m.DecodeError{Path: attrPath, Err: m.ErrDuplicateField}
		}

		seenAttrs[attr.Name.Local] = true

		if err := setScalar(v.Field(f.index), attr.Value, attrPath); err != nil {
			return err
		}

		seen[f.index] = true
	}

	text := el.trimmedText()

	switch {
	case info.text != nil:
		if text != "" {
			if err := setScalar(v.Field(info.text.index), text, joinPath(path, "$text")); err != nil {
				return err
			}
		}

		seen[info.text.index] = true
	case text != "":
		return &m.DecodeError{Path: joinPath(path, "$text"), Err: m.ErrUnknownField}
	}

	counts := make(map[string]int)

	for _, child := range el.children {
		f, ok := info.children[child.name]
		if !ok {
			return &m.DecodeError{Path: joinPath(path, child.name), Err: m.ErrUnknownField}
		}

		field := v.Field(f.index)

		if field.Kind() == reflect.Slice {
			childPath := joinPath(path, child.name+"["+strconv.Itoa(counts[child.name])+"]")
			counts[child.name]++

			item := reflect.New(field.Type().Elem()).Elem()
			if err := d.decode(child, item, childPath); err != nil {
				return err
			}

			field.Set(reflect.Append(field, item))
			seen[f.index] = true

			continue
		}

		childPath := joinPath(path, child.name)
		if seen[f.index] {
			return &m.DecodeError{Path: childPath, Err: m.ErrDuplicateField}
		}

		if err := d.decode(child, field, childPath); err != nil {
			return err
		}

		seen[f.index] = true
	}

	for _, f := range info.fields {
		if seen[f.index] {
			continue
		}

		switch v.Field(f.index).Kind() {
		case reflect.Ptr, reflect.Slice:
			continue
		}

		name := f.name
		if f.kind == attrField {
			name = "@" + name
		}

		return &m.DecodeError{Path: joinPath(path, name), Err: m.ErrMissingField}
	}

	return nil
}

// decodeVariant decodes a polymorphic element into its generic projection and hands it
// to the model's resolver. The discriminator is checked before the body so unknown kinds
// fail as unimplemented variants rather than as schema mismatches.
func (d *XMLReportDecoder) decodeVariant(el *element, v reflect.Value, path string) error {
	var (
		resolved any
		err      error
	)

	switch v.Type() {
	case sectionType:
		if err := checkDiscriminator(el, "OBJECT", path, func(s string) error {
			_, err := m.LookupSectionKind(s)
			return err
		}); err != nil {
			return err
		}

		var common m.CommonSection
		if err := d.decode(el, reflect.ValueOf(&common).Elem(), path); err != nil {
			return err
		}

		resolved, err = m.ResolveSection(common)
	case measurementType:
		if err := checkDiscriminator(el, "OBJECT", path, func(s string) error {
			_, err := m.LookupMeasurementKind(s)
			return err
		}); err != nil {
			return err
		}

		var common m.CommonMeasurement
		if err := d.decode(el, reflect.ValueOf(&common).Elem(), path); err != nil {
			return err
		}

		resolved, err = m.ResolveMeasurement(common)
	case valueType:
		if err := checkDiscriminator(el, "FORMAT", path, func(s string) error {
			_, err := m.LookupValueFormat(s)
			return err
		}); err != nil {
			return err
		}

		var common m.CommonValue
		if err := d.decode(el, reflect.ValueOf(&common).Elem(), path); err != nil {
			return err
		}

		resolved, err = m.ResolveValue(common)
	default:
		return &m.DecodeError{Path: path, Err: errors.Errorf("no resolver for %s", v.Type())}
	}

	if err != nil {
		return &m.DecodeError{Path: path, Err: err}
	}

	v.Set(reflect.ValueOf(resolved))

	return nil
}

func checkDiscriminator(el *element, attrName, path string, lookup func(string) error) error {
	for _, attr := range el.attrs {
		if attr.Name.Local != attrName {
			continue
		}

		if err := lookup(attr.Value); err != nil {
			return &m.DecodeError{Path: joinPath(path, "@"+attrName), Err: err}
		}

		return nil
	}

	// A missing discriminator is reported by the struct decoder as a missing field.
	return nil
}

func setScalar(v reflect.Value, s string, path string) error {
	if v.Kind() == reflect.Ptr {
		v.Set(reflect.New(v.Type().Elem()))
		v = v.Elem()
	}

	if v.CanAddr() && v.Addr().Type().Implements(textUnmarshalerType) {
		u, _ := v.Addr().Interface().(encoding.TextUnmarshaler)
		if err := u.UnmarshalText([]byte(s)); err != nil {
			return &m.DecodeError{Path: path, Err: err}
		}

		return nil
	}

	if v.Kind() != reflect.String {
		return &m.DecodeError{Path: path, Err: errors.Errorf("unsupported scalar type %s", v.Type())}
	}

	v.SetString(s)

	return nil
}

func expectLeaf(el *element, path string) error {
	if len(el.attrs) > 0 {
		return &m.DecodeError{Path: joinPath(path, "@"+el.attrs[0].Name.Local), Err: m.ErrUnknownField}
	}

	if len(el.children) > 0 {
		return &m.DecodeError{Path: joinPath(path, el.children[0].name), Err: m.ErrUnknownField}
	}

	return nil
}

func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}

	return path + "." + segment
}
