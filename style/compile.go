// Copyright 2025 Google LLC
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
package style

import (
	"fmt"
	"log/slog"

	"github.com/gx-org/glstyle/base/logger"
	"github.com/gx-org/glstyle/build/builder"
	"github.com/gx-org/glstyle/build/codegen"
	"github.com/gx-org/glstyle/build/fmterr"
	"github.com/gx-org/glstyle/build/ir"
	"github.com/gx-org/glstyle/build/ir/irkind"
	"github.com/gx-org/glstyle/build/registry"
	"github.com/gx-org/glstyle/shader"
)

// TextureUniform is the sampler of the image of an image symbol.
const TextureUniform = "u_texture"

var (
	numberSet      = ir.SetOf(irkind.Number)
	boolSet        = ir.SetOf(irkind.Boolean)
	colorSet       = ir.SetOf(irkind.Color)
	numberOrArrays = ir.SetOf(irkind.Number, irkind.NumberArray)
)

// Default values of the channels of a symbol.
var (
	defaultSymbolColor        any = "white"
	defaultSymbolOpacity      any = 1.0
	defaultSymbolRotation     any = 0.0
	defaultSymbolOffset       any = []any{0.0, 0.0}
	defaultSymbolTextureCoord any = []any{0.0, 0.0, 1.0, 1.0}
)

type (
	// Option configures a compilation.
	Option func(*options)

	options struct {
		logger *slog.Logger
		vars   *Variables
	}
)

// WithLogger sets the logger of a compilation.
// By default, the glstyle logger is used.
func WithLogger(l *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

// WithVariables sets the store of the style variables.
// By default, a new store is initialized from the variables of the style.
// The types of the variables are inferred from the values in the store
// at compilation time.
func WithVariables(vars *Variables) Option {
	return func(opts *options) {
		opts.vars = vars
	}
}

type compiler struct {
	style  *Style
	vars   *Variables
	bld    *builder.Builder
	reg    *registry.Registry
	shader *shader.Builder
	log    *slog.Logger
}

// Compile a style.
//
// Channels are compiled in the following order: filter, symbol, stroke and fill.
// All the errors found in the style are returned together.
// Use errors.Is with fmterr.ErrType, fmterr.ErrStructure or fmterr.ErrResolution
// to test the kind of an error.
func Compile(s *Style, opts ...Option) (*Result, error) {
	o := options{logger: logger.Get()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.vars == nil {
		o.vars = NewVariables(s.Variables)
	}
	sb := shader.NewBuilder()
	c := &compiler{
		style:  s,
		vars:   o.vars,
		bld:    builder.New(o.vars.Snapshot()),
		reg:    registry.New(sb),
		shader: sb,
		log:    o.logger,
	}
	if s.Filter != nil {
		c.filter()
	}
	if s.Symbol != nil {
		c.symbol(s.Symbol)
	}
	if s.HasStroke() {
		c.stroke()
	}
	if s.FillColor != nil {
		c.fill()
	}
	if err := c.bld.Errors(); err != nil {
		return nil, err
	}
	return c.result(), nil
}

// channel compiles the expression of a channel in a shader stage.
// Errors are appended to the builder errors.
func (c *compiler) channel(src fmterr.Path, raw any, expected ir.TypeSet, stage shader.Stage) (string, bool) {
	expr, ok := c.bld.Build(src, raw, expected)
	if !ok {
		return "", false
	}
	return c.emit(src, expr, stage)
}

// vectorChannel compiles the expression of a channel of a given type.
func (c *compiler) vectorChannel(src fmterr.Path, raw any, want ir.Type, stage shader.Stage) (string, bool) {
	expr, ok := c.bld.BuildType(src, raw, want)
	if !ok {
		return "", false
	}
	return c.emit(src, expr, stage)
}

func (c *compiler) emit(src fmterr.Path, expr ir.Expr, stage shader.Stage) (string, bool) {
	s, err := codegen.Emit(c.reg, stage, expr)
	if err != nil {
		return "", c.bld.Err().Append(err)
	}
	c.log.Debug("channel compiled", "path", src.String(), "stage", stage.String(), "type", expr.Type().String(), "glsl", s)
	return s, true
}

func (c *compiler) filter() {
	s, ok := c.channel("filter", c.style.Filter, boolSet, shader.Fragment)
	if !ok {
		return
	}
	c.shader.SetFragmentDiscardExpression("!" + s)
}

func orDefault(raw, def any) any {
	if raw == nil {
		return def
	}
	return raw
}

// opacityFilter returns the GLSL expression of the opacity of a fragment
// given the shape of a symbol and its visible size in pixels.
func opacityFilter(src fmterr.Path, symbolType, visibleSize string) (string, error) {
	switch symbolType {
	case "square", "image":
		return "1.0", nil
	case "circle":
		return fmt.Sprintf("(1.0-smoothstep(1.-4./%s,1.,dot(v_quadCoord-.5,v_quadCoord-.5)*4.))", visibleSize), nil
	case "triangle":
		const st = "(v_quadCoord*2.-1.)"
		a := fmt.Sprintf("(atan(%s.x,%s.y))", st, st)
		return fmt.Sprintf("(1.0-smoothstep(.5-3./%s,.5,cos(floor(.5+%s/2.094395102)*2.094395102-%s)*length(%s)))", visibleSize, a, a, st), nil
	case "":
		return "", fmterr.Errorf(src, fmterr.ErrStructure, "missing symbol type: want square, image, circle or triangle")
	}
	return "", fmterr.Errorf(src, fmterr.ErrStructure, "unknown symbol type %q: want square, image, circle or triangle", symbolType)
}

func (c *compiler) symbol(sym *Symbol) {
	src := fmterr.Path("symbol")
	// Vertex stage.
	size, sizeOk := c.channel(src.Key("size"), orDefault(sym.Size, 1.0), numberOrArrays, shader.Vertex)
	if sizeOk {
		c.shader.SetSymbolSizeExpression("vec2(" + size + ")")
	}
	offset, offsetOk := c.vectorChannel(src.Key("offset"), orDefault(sym.Offset, defaultSymbolOffset), ir.ArrayType(2), shader.Vertex)
	if offsetOk {
		c.shader.SetSymbolOffsetExpression(offset)
	}
	texCoord, texCoordOk := c.vectorChannel(src.Key("textureCoord"), orDefault(sym.TextureCoord, defaultSymbolTextureCoord), ir.ArrayType(4), shader.Vertex)
	if texCoordOk {
		c.shader.SetTextureCoordinateExpression(texCoord)
	}
	rotation, rotationOk := c.channel(src.Key("rotation"), orDefault(sym.Rotation, defaultSymbolRotation), numberSet, shader.Vertex)
	if rotationOk {
		c.shader.SetSymbolRotationExpression(rotation)
	}
	c.shader.SetSymbolRotateWithView(sym.RotateWithView)

	// Fragment stage.
	col, colOk := c.channel(src.Key("color"), orDefault(sym.Color, defaultSymbolColor), colorSet, shader.Fragment)
	opacity, opacityOk := c.channel(src.Key("opacity"), orDefault(sym.Opacity, defaultSymbolOpacity), numberSet, shader.Fragment)
	if !sizeOk || !colOk || !opacityOk {
		return
	}
	fragSize, ok := c.channel(src.Key("size"), orDefault(sym.Size, 1.0), numberOrArrays, shader.Fragment)
	if !ok {
		return
	}
	visibleSize := "vec2(" + fragSize + ")"
	c.shader.SetSymbolSizeFragmentExpression(visibleSize)
	filter, err := opacityFilter(src.Key("symbolType"), sym.SymbolType, visibleSize+".x")
	if err != nil {
		c.bld.Err().Append(err)
		return
	}
	colorExpr := fmt.Sprintf("vec4(%s.rgb, %s.a * %s * %s)", col, col, opacity, filter)
	if sym.SymbolType == "image" && sym.Src != "" {
		if err := c.shader.AddUniform(TextureUniform, "sampler2D"); err != nil {
			c.bld.Err().Append(fmterr.Position(src.Key("src"), fmterr.ErrType, err))
			return
		}
		colorExpr += " * texture2D(" + TextureUniform + ", v_texCoord)"
	}
	c.shader.SetSymbolColorExpression(colorExpr)
}

func (c *compiler) stroke() {
	if c.style.StrokeColor != nil {
		col, ok := c.channel("stroke-color", c.style.StrokeColor, colorSet, shader.Fragment)
		if ok {
			c.shader.SetStrokeColorExpression(col)
		}
	}
	if c.style.StrokeWidth == nil {
		return
	}
	width, ok := c.channel("stroke-width", c.style.StrokeWidth, numberSet, shader.Vertex)
	if !ok {
		return
	}
	c.shader.SetStrokeWidthExpression(width)
	if width, ok = c.channel("stroke-width", c.style.StrokeWidth, numberSet, shader.Fragment); ok {
		c.shader.SetStrokeWidthFragmentExpression(width)
	}
}

func (c *compiler) fill() {
	col, ok := c.channel("fill-color", c.style.FillColor, colorSet, shader.Fragment)
	if ok {
		c.shader.SetFillColorExpression(col)
	}
}

// result freezes the categories and builds the attribute and uniform tables.
// String values of the variables are registered as categories before
// the table is frozen so that uniform providers can encode them.
func (c *compiler) result() *Result {
	snapshot := c.vars.Snapshot()
	for v := range c.reg.Variables() {
		if v.Type.Kind != irkind.String {
			continue
		}
		if s, ok := snapshot[v.Name].(string); ok {
			c.reg.Category(s)
		}
	}
	cats := c.reg.Freeze()
	r := &Result{
		Builder:    c.shader,
		Attributes: make([]Attribute, 0, c.reg.NumAttributes()),
		Uniforms:   make([]Uniform, 0, c.reg.NumVariables()),
		Textures:   make(map[string]string),
		Variables:  c.vars,
		Categories: cats,
		HasSymbol:  c.style.HasSymbol(),
		HasStroke:  c.style.HasStroke(),
		HasFill:    c.style.HasFill(),
	}
	for attr := range c.reg.Attributes() {
		r.Attributes = append(r.Attributes, newAttribute(attr, cats))
		c.log.Debug("attribute registered", "name", attr.Name, "ident", attr.Ident, "type", attr.Type.String())
	}
	for v := range c.reg.Variables() {
		r.Uniforms = append(r.Uniforms, newUniform(v, c.vars, cats))
		c.log.Debug("uniform registered", "name", v.Name, "ident", v.Ident, "type", v.Type.String())
	}
	if sym := c.style.Symbol; sym != nil && sym.SymbolType == "image" && sym.Src != "" {
		r.Textures[TextureUniform] = sym.Src
	}
	c.log.Debug("style compiled", "attributes", len(r.Attributes), "uniforms", len(r.Uniforms), "categories", cats.Size())
	return r
}
