package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/meenmo/fwdcurve/curve"
)

type curveInput struct {
	TaskID string    `json:"task_id,omitempty"`
	Times  []float64 `json:"times"`
	Rates  []float64 `json:"rates"`
	// Extrapolation extends the curve beyond the last pillar; omit to
	// leave queries past the last pillar undefined.
	Extrapolation *float64  `json:"extrapolation,omitempty"`
	Queries       []float64 `json:"queries"`
}

type queryOutput struct {
	Time float64 `json:"time"`
	// Undefined quantities (negative time, no extrapolation) are null.
	Forward  *float64 `json:"forward"`
	Integral *float64 `json:"integral"`
	Discount *float64 `json:"discount"`
	Spot     *float64 `json:"spot"`
}

type curveOutput struct {
	TaskID  string        `json:"task_id,omitempty"`
	Results []queryOutput `json:"results,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func main() {
	inputPath := flag.String("input", "", "JSON input path (reads stdin if omitted)")
	help := flag.Bool("h", false, "Show help")
	flag.BoolVar(help, "help", false, "Show help")
	flag.Parse()

	if *help {
		fmt.Fprintln(os.Stderr, "Usage: curveinfo -input <path>")
		fmt.Fprintln(os.Stderr, "Evaluate a piecewise-flat forward curve at the given query times.")
		return
	}

	path := strings.TrimSpace(*inputPath)
	if path == "" {
		if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			fmt.Fprintln(os.Stderr, "Usage: curveinfo -input <path>")
			os.Exit(2)
		}
	}

	raw, err := readInput(path)
	if err != nil {
		exitError(fmt.Sprintf("read input: %v", err))
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		exitError(fmt.Sprintf("parse JSON: %v", err))
	}

	hadError := false
	outputs := make([]curveOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(in)
		if err != nil {
			hadError = true
			outputs = append(outputs, curveOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, *out)
	}

	if isArray {
		b, _ := json.Marshal(outputs)
		fmt.Println(string(b))
	} else {
		b, _ := json.Marshal(outputs[0])
		fmt.Println(string(b))
	}

	if hadError {
		os.Exit(1)
	}
}

func process(in curveInput) (*curveOutput, error) {
	c, err := curve.NewPiecewiseFlat(in.Times, in.Rates)
	if err != nil {
		return nil, err
	}
	if in.Extrapolation != nil {
		c.Extrapolate(*in.Extrapolation)
	}

	results := make([]queryOutput, 0, len(in.Queries))
	for _, u := range in.Queries {
		results = append(results, queryOutput{
			Time:     u,
			Forward:  finite(c.Value(u)),
			Integral: finite(c.Integral(u, 0)),
			Discount: finite(curve.Discount(c, u, 0)),
			Spot:     finite(curve.Spot(c, u, 0)),
		})
	}

	return &curveOutput{TaskID: in.TaskID, Results: results}, nil
}

// finite maps NaN and infinities to nil so the output stays valid JSON.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func readInput(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(os.Stdin)
}

func parseInputs(raw []byte) ([]curveInput, bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}
	if trimmed[0] == '[' {
		var inputs []curveInput
		if err := json.Unmarshal(trimmed, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}
	var input curveInput
	if err := json.Unmarshal(trimmed, &input); err != nil {
		return nil, false, err
	}
	return []curveInput{input}, false, nil
}

func exitError(msg string) {
	b, _ := json.Marshal(curveOutput{Error: msg})
	fmt.Println(string(b))
	os.Exit(1)
}
