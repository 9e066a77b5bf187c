//go:build js && wasm

// Command howitworks-wasm binds the How It Works carousel in the browser.
// Build it with GOOS=js GOARCH=wasm into static/howitworks.wasm.
package main

import (
	"log/slog"
	"os"
	"syscall/js"

	"github.com/guruhq/landing/scrollstep"
	"github.com/guruhq/landing/scrollstep/dom"
)

func main() {
	// wasm_exec.js forwards stderr to the browser console.
	level := slog.LevelInfo
	if js.Global().Get("location").Get("search").String() == "?debug" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	document := js.Global().Get("document")
	if document.Get("readyState").String() != "loading" {
		mount(logger)
	} else {
		var onReady js.Func
		onReady = js.FuncOf(func(this js.Value, args []js.Value) any {
			mount(logger)
			onReady.Release()
			return nil
		})
		document.Call("addEventListener", "DOMContentLoaded", onReady)
	}

	select {}
}

func mount(logger *slog.Logger) {
	bindings, err := dom.MountAll(scrollstep.DefaultConfig(0), logger)
	if err != nil {
		logger.Error("mounting how it works", "error", err)
		return
	}
	logger.Info("how it works ready", "sections", len(bindings))
}
