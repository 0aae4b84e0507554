//go:build js && wasm

package main

import (
	"fmt"
	"syscall/js"

	"github.com/cwbudde/algo-interval/detect/interval"
	"github.com/cwbudde/algo-interval/dsp/spectrum"
)

var funcs []js.Func

func main() {
	api := js.Global().Get("Object").New()

	// findIntervalPeaks(samples, minHeight, minDistance[, options]) returns the
	// doubled Float32Array, or an error string.
	api.Set("findIntervalPeaks", export(func(args []js.Value) any {
		samples, minHeight, minDistance, opts, errMsg := parseArgs(args)
		if errMsg != "" {
			return errMsg
		}
		out, err := interval.FindIntervalPeaks(samples, minHeight, minDistance, opts...)
		if err != nil {
			return err.Error()
		}
		return float32Array(out)
	}))

	// findPeaks takes the same arguments and returns {bins, heights, maxBin}.
	api.Set("findPeaks", export(func(args []js.Value) any {
		samples, minHeight, minDistance, opts, errMsg := parseArgs(args)
		if errMsg != "" {
			return errMsg
		}
		res, err := interval.FindPeaks(samples, minHeight, minDistance, opts...)
		if err != nil {
			return err.Error()
		}
		bins := js.Global().Get("Int32Array").New(len(res.Bins))
		for i, b := range res.Bins {
			bins.SetIndex(i, b)
		}
		obj := js.Global().Get("Object").New()
		obj.Set("bins", bins)
		obj.Set("heights", float32Array(res.Heights))
		obj.Set("maxBin", res.MaxBin)
		return obj
	}))

	api.Set("greet", export(func([]js.Value) any {
		interval.Greet(func(msg string) {
			js.Global().Call("alert", msg)
		})
		return js.Null()
	}))

	js.Global().Set("IntervalFinder", api)
	select {}
}

func parseArgs(args []js.Value) ([]float32, float32, uint, []interval.Option, string) {
	if len(args) < 3 {
		return nil, 0, 0, nil, "expected (samples, minHeight, minDistance)"
	}
	input := args[0]
	if input.Type() != js.TypeObject || input.Get("length").Type() != js.TypeNumber {
		return nil, 0, 0, nil, "samples must be an array or Float32Array"
	}
	if args[1].Type() != js.TypeNumber {
		return nil, 0, 0, nil, "minHeight must be a number"
	}
	if args[2].Type() != js.TypeNumber {
		return nil, 0, 0, nil, "minDistance must be a number"
	}

	samples := make([]float32, input.Length())
	for i := range samples {
		v := input.Index(i)
		if v.Type() != js.TypeNumber {
			return nil, 0, 0, nil, fmt.Sprintf("samples[%d] is not a number", i)
		}
		samples[i] = float32(v.Float())
	}

	d := args[2].Int()
	if d < 0 {
		return nil, 0, 0, nil, "minDistance must be >= 0"
	}

	var opts []interval.Option
	if len(args) > 3 && args[3].Type() == js.TypeObject {
		o := args[3]
		if v := o.Get("limit"); v.Type() == js.TypeString {
			limit, err := interval.ParseLimit(v.String())
			if err != nil {
				return nil, 0, 0, nil, err.Error()
			}
			opts = append(opts, interval.WithLimit(limit))
		}
		if v := o.Get("metric"); v.Type() == js.TypeString {
			metric, err := spectrum.ParseMetric(v.String())
			if err != nil {
				return nil, 0, 0, nil, err.Error()
			}
			opts = append(opts, interval.WithMetric(metric))
		}
		if v := o.Get("maxPeaks"); v.Type() == js.TypeNumber {
			opts = append(opts, interval.WithMaxPeaks(v.Int()))
		}
	}
	return samples, float32(args[1].Float()), uint(d), opts, ""
}

func float32Array(data []float32) js.Value {
	arr := js.Global().Get("Float32Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
