package tilemap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// ExportNotice is shown to the user once an export has been delivered.
const ExportNotice = "Map Array copied to clipboard.\n(0 = Air, 1+ = Texture IDs)"

var ErrUnknownFormat = errors.New("unknown export format")

// Formatter serializes a grid into the text handed to the user.
type Formatter interface {
	Format(g *Grid) (string, error)
}

// CFormatter writes the grid as a flat aggregate initializer: one line per
// row, each value followed by a comma, closed with "};".
type CFormatter struct{}

func (CFormatter) Format(g *Grid) (string, error) {
	return ExportC(g), nil
}

func ExportC(g *Grid) string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, row := range g.cells {
		values := make([]string, len(row))
		for i, v := range row {
			values[i] = strconv.Itoa(v)
		}
		b.WriteString("    ")
		b.WriteString(strings.Join(values, ", "))
		b.WriteString(",\n")
	}
	b.WriteString("};")
	return b.String()
}

// JSONFormatter writes the grid as a JSON array of rows.
type JSONFormatter struct {
	Indent string
}

func (f JSONFormatter) Format(g *Grid) (string, error) {
	var (
		b   []byte
		err error
	)
	if f.Indent == "" {
		b, err = json.Marshal(g.cells)
	} else {
		b, err = json.MarshalIndent(g.cells, "", f.Indent)
	}
	if err != nil {
		return "", fmt.Errorf("tilemap: export json: %w", err)
	}
	return string(b), nil
}

// ScriptFormatter runs a tengo script with the globals rows, cols and cells
// (an array of row arrays) plus any extra Globals. The script must assign a
// string to out.
type ScriptFormatter struct {
	Name    string
	Source  []byte
	Timeout time.Duration
	Globals map[string]any
}

func (f ScriptFormatter) Format(g *Grid) (string, error) {
	cells := make([]any, g.rows)
	for y, row := range g.cells {
		vals := make([]any, len(row))
		for x, v := range row {
			vals[x] = v
		}
		cells[y] = vals
	}

	script := tengo.NewScript(f.Source)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	names := make([]string, 0, len(f.Globals))
	for name := range f.Globals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := script.Add(name, f.Globals[name]); err != nil {
			return "", fmt.Errorf("tilemap: script %s: global %s: %w", f.Name, name, err)
		}
	}
	for _, v := range []struct {
		name  string
		value any
	}{
		{"rows", g.rows},
		{"cols", g.cols},
		{"cells", cells},
		{"out", ""},
	} {
		if err := script.Add(v.name, v.value); err != nil {
			return "", fmt.Errorf("tilemap: script %s: global %s: %w", f.Name, v.name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return "", fmt.Errorf("tilemap: compile %s: %w", f.Name, err)
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := compiled.RunContext(ctx); err != nil {
		return "", fmt.Errorf("tilemap: run %s: %w", f.Name, err)
	}

	out := compiled.Get("out")
	if _, ok := out.Object().(*tengo.String); !ok {
		return "", fmt.Errorf("tilemap: run %s: out must be a string, got %s", f.Name, out.Object().TypeName())
	}
	return out.String(), nil
}

// FormatterFor resolves an export format name. script is only used by the
// "script" format.
func FormatterFor(name string, scriptName string, script []byte) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "c":
		return CFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "script", "tengo":
		if len(script) == 0 {
			return nil, fmt.Errorf("tilemap: format %q: no script source", name)
		}
		return ScriptFormatter{Name: scriptName, Source: script}, nil
	default:
		return nil, fmt.Errorf("tilemap: format %q: %w", name, ErrUnknownFormat)
	}
}
