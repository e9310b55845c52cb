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
package main

import (
	"encoding/json"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/gx-org/glstyle/shader"
	"github.com/gx-org/glstyle/style"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <style file>",
		Short: "Compile a JSON or YAML style file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompile,
	}
	cmd.Flags().StringArray("var", nil, "Set a style variable as name=value, the value being parsed as YAML (repeatable)")
	cmd.Flags().String("output", "text", "Output format: text or json")
	cmd.Flags().String("features", "", "JSON or YAML file with a list of features to extract attributes from")
	return cmd
}

func runCompile(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "cannot read style")
	}
	s, err := style.Load(data)
	if err != nil {
		return errors.Wrapf(err, "%s", args[0])
	}
	assigns, _ := cmd.Flags().GetStringArray("var")
	if err := setVariables(s, assigns); err != nil {
		return err
	}
	var features []style.FeatureMap
	if path, _ := cmd.Flags().GetString("features"); path != "" {
		if features, err = loadFeatures(path); err != nil {
			return err
		}
	}
	r, err := style.Compile(s)
	if err != nil {
		return err
	}
	rep := newReport(r, features)
	switch output, _ := cmd.Flags().GetString("output"); output {
	case "json":
		return writeJSON(cmd.OutOrStdout(), rep)
	case "text":
		return writeText(cmd.OutOrStdout(), rep)
	default:
		return errors.Errorf("unknown output format %q: want text or json", output)
	}
}

// setVariables overrides the variables of a style with name=value assignments.
func setVariables(s *style.Style, assigns []string) error {
	for _, assign := range assigns {
		name, raw, ok := strings.Cut(assign, "=")
		if !ok || name == "" {
			return errors.Errorf("invalid variable assignment %q: want name=value", assign)
		}
		var val any
		if err := yaml.Unmarshal([]byte(raw), &val); err != nil {
			return errors.Wrapf(err, "invalid value for variable %q", name)
		}
		if s.Variables == nil {
			s.Variables = make(map[string]any)
		}
		s.Variables[name] = val
	}
	return nil
}

func loadFeatures(path string) ([]style.FeatureMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read features")
	}
	var features []style.FeatureMap
	if err := yaml.Unmarshal(data, &features); err != nil {
		return nil, errors.Wrapf(err, "cannot decode features in %s", path)
	}
	return features, nil
}

type (
	uniformValue struct {
		Name     string    `json:"name"`
		Variable string    `json:"variable"`
		Value    []float64 `json:"value"`
	}

	slot struct {
		Name string `json:"name"`
		GLSL string `json:"glsl"`
	}

	report struct {
		Uniforms          []string          `json:"uniforms"`
		Attributes        []string          `json:"attributes"`
		Varyings          []shader.Varying  `json:"varyings"`
		VertexFunctions   []string          `json:"vertexFunctions"`
		FragmentFunctions []string          `json:"fragmentFunctions"`
		Slots             []slot            `json:"slots"`
		RotateWithView    bool              `json:"rotateWithView"`
		AttributeTable    []style.Attribute `json:"attributeTable"`
		UniformTable      []uniformValue    `json:"uniformTable"`
		Textures          map[string]string `json:"textures"`
		Categories        map[string]int    `json:"categories"`
		HasSymbol         bool              `json:"hasSymbol"`
		HasStroke         bool              `json:"hasStroke"`
		HasFill           bool              `json:"hasFill"`
		// Features are the attribute values of each feature.
		Features [][][]float64 `json:"features,omitempty"`
	}
)

func newReport(r *style.Result, features []style.FeatureMap) *report {
	b := r.Builder
	rep := &report{
		Uniforms:          b.Uniforms(),
		Attributes:        b.Attributes(),
		Varyings:          b.Varyings(),
		VertexFunctions:   b.VertexShaderFunctions(),
		FragmentFunctions: b.FragmentShaderFunctions(),
		Slots: []slot{
			{"symbolSize", b.SymbolSizeExpression()},
			{"symbolSizeFragment", b.SymbolSizeFragmentExpression()},
			{"symbolRotation", b.SymbolRotationExpression()},
			{"symbolOffset", b.SymbolOffsetExpression()},
			{"symbolColor", b.SymbolColorExpression()},
			{"texCoord", b.TextureCoordinateExpression()},
			{"discard", b.FragmentDiscardExpression()},
			{"strokeColor", b.StrokeColorExpression()},
			{"strokeWidth", b.StrokeWidthExpression()},
			{"strokeWidthFragment", b.StrokeWidthFragmentExpression()},
			{"fillColor", b.FillColorExpression()},
		},
		RotateWithView: b.SymbolRotateWithView(),
		AttributeTable: r.Attributes,
		UniformTable:   []uniformValue{},
		Textures:       r.Textures,
		Categories:     make(map[string]int),
		HasSymbol:      r.HasSymbol,
		HasStroke:      r.HasStroke,
		HasFill:        r.HasFill,
	}
	for _, u := range r.Uniforms {
		rep.UniformTable = append(rep.UniformTable, uniformValue{
			Name:     u.Name,
			Variable: u.Variable,
			Value:    u.Provider.Value(),
		})
	}
	for name, idx := range r.Categories.All() {
		rep.Categories[name] = idx
	}
	for _, f := range features {
		rep.Features = append(rep.Features, r.Extract(f))
	}
	return rep
}

func writeJSON(w io.Writer, rep *report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

var textTmpl = template.Must(template.New("report").Parse(`symbol: {{.HasSymbol}} stroke: {{.HasStroke}} fill: {{.HasFill}}
{{- if .Uniforms}}
uniforms:
{{- range .Uniforms}}
  {{.}}
{{- end}}
{{- end}}
{{- if .Attributes}}
attributes:
{{- range .Attributes}}
  {{.}}
{{- end}}
{{- end}}
{{- if .Varyings}}
varyings:
{{- range .Varyings}}
  {{.Type}} {{.Name}} = {{.Expression}}
{{- end}}
{{- end}}
slots:
{{- range .Slots}}
  {{.Name}}: {{.GLSL}}
{{- end}}
  rotateWithView: {{.RotateWithView}}
{{- if .UniformTable}}
values:
{{- range .UniformTable}}
  {{.Name}} ({{.Variable}}): {{.Value}}
{{- end}}
{{- end}}
{{- range $i, $f := .Features}}
feature {{$i}}:
{{- range $j, $attr := $.AttributeTable}}
  {{$attr.Name}}: {{index $f $j}}
{{- end}}
{{- end}}
`))

func writeText(w io.Writer, rep *report) error {
	return textTmpl.Execute(w, rep)
}
