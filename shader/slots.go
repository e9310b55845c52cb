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

package shader

// SetSymbolSizeExpression sets the vec2 size of a symbol, evaluated in the vertex shader.
func (b *Builder) SetSymbolSizeExpression(expr string) { b.symbolSizeExpression = expr }

// SymbolSizeExpression returns the vec2 size of a symbol.
func (b *Builder) SymbolSizeExpression() string { return b.symbolSizeExpression }

// SetSymbolSizeFragmentExpression sets the vec2 size of a symbol, evaluated in the fragment shader.
func (b *Builder) SetSymbolSizeFragmentExpression(expr string) {
	b.symbolSizeFragmentExpression = expr
}

// SymbolSizeFragmentExpression returns the vec2 size of a symbol in the fragment shader.
func (b *Builder) SymbolSizeFragmentExpression() string { return b.symbolSizeFragmentExpression }

// SetSymbolRotationExpression sets the rotation in radians of a symbol.
func (b *Builder) SetSymbolRotationExpression(expr string) { b.symbolRotationExpression = expr }

// SymbolRotationExpression returns the rotation of a symbol.
func (b *Builder) SymbolRotationExpression() string { return b.symbolRotationExpression }

// SetSymbolOffsetExpression sets the vec2 offset in pixels of a symbol.
func (b *Builder) SetSymbolOffsetExpression(expr string) { b.symbolOffsetExpression = expr }

// SymbolOffsetExpression returns the offset of a symbol.
func (b *Builder) SymbolOffsetExpression() string { return b.symbolOffsetExpression }

// SetSymbolColorExpression sets the vec4 color of a symbol, evaluated in the fragment shader.
func (b *Builder) SetSymbolColorExpression(expr string) { b.symbolColorExpression = expr }

// SymbolColorExpression returns the color of a symbol.
func (b *Builder) SymbolColorExpression() string { return b.symbolColorExpression }

// SetTextureCoordinateExpression sets the vec4 texture coordinates of a symbol.
func (b *Builder) SetTextureCoordinateExpression(expr string) { b.texCoordExpression = expr }

// TextureCoordinateExpression returns the texture coordinates of a symbol.
func (b *Builder) TextureCoordinateExpression() string { return b.texCoordExpression }

// SetFragmentDiscardExpression sets the boolean expression discarding a fragment when true.
func (b *Builder) SetFragmentDiscardExpression(expr string) { b.discardExpression = expr }

// FragmentDiscardExpression returns the expression discarding fragments.
func (b *Builder) FragmentDiscardExpression() string { return b.discardExpression }

// SetStrokeColorExpression sets the vec4 color of a stroke.
func (b *Builder) SetStrokeColorExpression(expr string) { b.strokeColorExpression = expr }

// StrokeColorExpression returns the color of a stroke.
func (b *Builder) StrokeColorExpression() string { return b.strokeColorExpression }

// SetStrokeWidthExpression sets the width in pixels of a stroke, evaluated in the vertex shader.
func (b *Builder) SetStrokeWidthExpression(expr string) { b.strokeWidthExpression = expr }

// StrokeWidthExpression returns the width of a stroke.
func (b *Builder) StrokeWidthExpression() string { return b.strokeWidthExpression }

// SetStrokeWidthFragmentExpression sets the width of a stroke, evaluated in the fragment shader.
func (b *Builder) SetStrokeWidthFragmentExpression(expr string) { b.strokeWidthFragExpression = expr }

// StrokeWidthFragmentExpression returns the width of a stroke in the fragment shader.
func (b *Builder) StrokeWidthFragmentExpression() string { return b.strokeWidthFragExpression }

// SetFillColorExpression sets the vec4 color of a polygon fill.
func (b *Builder) SetFillColorExpression(expr string) { b.fillColorExpression = expr }

// FillColorExpression returns the color of a fill.
func (b *Builder) FillColorExpression() string { return b.fillColorExpression }

// SetSymbolRotateWithView sets whether the rotation of the symbol follows the view.
func (b *Builder) SetSymbolRotateWithView(rotateWithView bool) { b.symbolRotateWithView = rotateWithView }

// SymbolRotateWithView returns true if the symbol rotates with the view.
func (b *Builder) SymbolRotateWithView() bool { return b.symbolRotateWithView }
