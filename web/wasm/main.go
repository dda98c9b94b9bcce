//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-raster/internal/webdemo"
)

var (
	engine = webdemo.NewEngine()
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	api.Set("loadFont", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "loadFont: missing font bytes"
		}
		src := args[0]
		data := make([]byte, src.Length())
		js.CopyBytesToGo(data, src)
		if err := engine.LoadFont(data); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("render", export(func(args []js.Value) any {
		if len(args) < 2 {
			return js.Null()
		}
		frame, err := engine.Render(args[0].String(), args[1].Int())
		if err != nil {
			return err.Error()
		}
		return frameToJS(frame)
	}))

	api.Set("renderShape", export(func(args []js.Value) any {
		size := 200
		if len(args) > 0 {
			size = args[0].Int()
		}
		return frameToJS(engine.RenderShape(size))
	}))

	api.Set("info", export(func(args []js.Value) any {
		info, err := engine.Info()
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("family", info.Family)
		obj.Set("style", info.Style)
		obj.Set("unitsPerEm", info.UnitsPerEm)
		obj.Set("numGlyphs", info.NumGlyphs)
		obj.Set("kernel", info.Kernel)
		return obj
	}))

	js.Global().Set("AlgoRasterDemo", api)
	select {}
}

// frameToJS packages a frame as {width, height, pix} with the pixels in a
// Uint8ClampedArray, the element type ImageData wants.
func frameToJS(frame *webdemo.Frame) js.Value {
	buf := js.Global().Get("Uint8Array").New(len(frame.Pix))
	js.CopyBytesToJS(buf, frame.Pix)
	obj := js.Global().Get("Object").New()
	obj.Set("width", frame.Width)
	obj.Set("height", frame.Height)
	obj.Set("pix", js.Global().Get("Uint8ClampedArray").New(buf.Get("buffer")))
	return obj
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
