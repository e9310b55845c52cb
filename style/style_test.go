package style_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/glstyle/style"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "json",
			data: `{
  "variables": {"width": 2},
  "filter": [">", ["get", "population"], 1000],
  "symbol": {
    "symbolType": "circle",
    "size": ["*", ["var", "width"], 4],
    "rotateWithView": true
  },
  "fill-color": "red"
}`,
		},
		{
			name: "yaml",
			data: `
variables:
  width: 2
filter: [">", [get, population], 1000]
symbol:
  symbolType: circle
  size: ["*", [var, width], 4]
  rotateWithView: true
fill-color: red
`,
		},
	}
	want := &style.Style{
		Variables: map[string]any{"width": 2},
		Filter:    []any{">", []any{"get", "population"}, 1000},
		Symbol: &style.Symbol{
			SymbolType:     "circle",
			Size:           []any{"*", []any{"var", "width"}, 4},
			RotateWithView: true,
		},
		FillColor: "red",
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := style.Load([]byte(test.data))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("style mismatch (-want +got):\n%s", diff)
			}
			r, err := style.Compile(got)
			if err != nil {
				t.Fatal(err)
			}
			if !r.HasSymbol || r.HasStroke || !r.HasFill {
				t.Errorf("got presence %v %v %v but want true false true", r.HasSymbol, r.HasStroke, r.HasFill)
			}
		})
	}
}

func TestLoadError(t *testing.T) {
	if _, err := style.Load([]byte("symbol: [")); err == nil {
		t.Error("expected an error")
	}
}

func TestVariablesStore(t *testing.T) {
	init := map[string]any{"a": 1}
	vars := style.NewVariables(init)
	init["a"] = 2
	if got, _ := vars.Get("a"); got != 1 {
		t.Errorf("store is not a copy of the initial values: got %v", got)
	}
	vars.Set("b", "x")
	snapshot := vars.Snapshot()
	vars.Set("b", "y")
	if diff := cmp.Diff(map[string]any{"a": 1, "b": "x"}, snapshot); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if _, ok := vars.Get("c"); ok {
		t.Error("variable c should not exist")
	}
}

func TestVariablesZeroValue(t *testing.T) {
	vars := &style.Variables{}
	vars.Set("width", 2)
	r, err := style.Compile(&style.Style{StrokeWidth: []any{"var", "width"}}, style.WithVariables(vars))
	if err != nil {
		t.Fatalf("cannot compile style:\n%+v", err)
	}
	u, ok := r.Uniform("u_var_width")
	if !ok {
		t.Fatalf("uniform u_var_width not found in %v", r.Uniforms)
	}
	if diff := cmp.Diff([]float64{2}, u.Provider.Value()); diff != "" {
		t.Errorf("uniform value mismatch (-want +got):\n%s", diff)
	}
}
