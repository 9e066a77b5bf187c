//go:build js && wasm

package dom

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"syscall/js"

	"github.com/guruhq/landing/scrollstep"
)

// Binding ties one section element to its controller.
type Binding struct {
	window  js.Value
	section js.Value
	ctrl    *scrollstep.Controller
	logger  *slog.Logger

	panels []js.Value
	images []js.Value
	dots   []js.Value
	track  js.Value
	spacer js.Value

	observer js.Value
	wheelOn  bool

	onIntersect js.Func
	onWheel     js.Func
	onResize    js.Func
	onClick     js.Func
	onTrack     js.Func
}

// MountAll binds every How It Works section in the document.
func MountAll(base scrollstep.Config, logger *slog.Logger) ([]*Binding, error) {
	doc := js.Global().Get("document")
	nodes := doc.Call("querySelectorAll", SectionSelector)
	var bindings []*Binding
	for i := range nodes.Length() {
		b, err := Mount(nodes.Index(i), base, logger)
		if err != nil {
			for _, mounted := range bindings {
				mounted.Close()
			}
			return nil, fmt.Errorf("mounting section %d: %w", i, err)
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}

// Mount binds a single section element.
func Mount(section js.Value, base scrollstep.Config, logger *slog.Logger) (*Binding, error) {
	b := &Binding{
		window:  js.Global().Get("window"),
		section: section,
		logger:  logger,
		panels:  queryAll(section, PanelSelector),
		images:  queryAll(section, ImageSelector),
		dots:    queryAll(section, DotSelector),
		track:   section.Call("querySelector", TrackSelector),
		spacer:  section.Call("querySelector", SpacerSelector),
	}
	base.StepCount = max(len(b.panels), len(b.dots))
	cfg, err := ApplyAttributes(base, func(name string) string {
		v := section.Call("getAttribute", name)
		if v.IsNull() {
			return ""
		}
		return v.String()
	})
	if err != nil {
		return nil, err
	}

	b.ctrl = scrollstep.New(cfg, documentHost{doc: js.Global().Get("document")},
		scrollstep.WithLogger(logger),
		scrollstep.WithOnChange(b.render),
	)

	b.onIntersect = js.FuncOf(b.handleIntersect)
	b.onWheel = js.FuncOf(b.handleWheel)
	b.onResize = js.FuncOf(b.handleResize)
	b.onClick = js.FuncOf(b.handleClick)
	b.onTrack = js.FuncOf(b.handleTrackScroll)

	b.ctrl.Resize(b.window.Get("innerWidth").Int())
	// Keep the step the server rendered for ?step=N.
	hidden := make([]bool, len(b.panels))
	for i, p := range b.panels {
		hidden[i] = p.Get("hidden").Bool()
	}
	b.ctrl.Select(ActiveIndex(hidden))
	b.render(scrollstep.State{Cursor: -1}, b.ctrl.State())
	b.observe()
	b.window.Call("addEventListener", "resize", b.onResize)
	section.Call("addEventListener", "click", b.onClick, map[string]any{"capture": true})
	if present(b.track) {
		b.track.Call("addEventListener", "scroll", b.onTrack, map[string]any{"passive": true})
	}
	section.Call("setAttribute", "data-enhanced", "true")

	logger.Debug("section mounted", "steps", cfg.StepCount, "threshold", cfg.Threshold, "cooldown", cfg.Cooldown)
	return b, nil
}

// Close tears down every subscription and the controller.
func (b *Binding) Close() {
	b.ctrl.Close()
	if present(b.observer) {
		b.observer.Call("disconnect")
	}
	b.setWheel(false)
	b.window.Call("removeEventListener", "resize", b.onResize)
	b.section.Call("removeEventListener", "click", b.onClick, map[string]any{"capture": true})
	if present(b.track) {
		b.track.Call("removeEventListener", "scroll", b.onTrack)
	}
	for _, fn := range []js.Func{b.onIntersect, b.onWheel, b.onResize, b.onClick, b.onTrack} {
		fn.Release()
	}
}

// observe (re)creates the IntersectionObserver with the threshold for the
// current device class.
func (b *Binding) observe() {
	if present(b.observer) {
		b.observer.Call("disconnect")
	}
	threshold := b.ctrl.Config().IntersectionThreshold(b.ctrl.State().Device)
	b.observer = js.Global().Get("IntersectionObserver").New(b.onIntersect, map[string]any{
		"threshold": threshold,
	})
	b.observer.Call("observe", b.section)
}

func (b *Binding) setWheel(on bool) {
	if on == b.wheelOn {
		return
	}
	b.wheelOn = on
	if on {
		b.window.Call("addEventListener", "wheel", b.onWheel, map[string]any{"passive": false})
		return
	}
	b.window.Call("removeEventListener", "wheel", b.onWheel)
}

func (b *Binding) handleIntersect(_ js.Value, args []js.Value) any {
	entries := args[0]
	if n := entries.Length(); n > 0 {
		b.ctrl.Intersect(entries.Index(n - 1).Get("isIntersecting").Bool())
	}
	return nil
}

func (b *Binding) handleWheel(_ js.Value, args []js.Value) any {
	ev := args[0]
	if b.ctrl.Wheel(ev.Get("deltaY").Float()) {
		ev.Call("preventDefault")
	}
	return nil
}

func (b *Binding) handleResize(_ js.Value, _ []js.Value) any {
	if b.ctrl.Resize(b.window.Get("innerWidth").Int()).Has(scrollstep.Reobserve) {
		b.observe()
	}
	return nil
}

// handleClick runs in the capture phase so that progress dots and pager
// arrows never reach the htmx fallback handlers once the binding is live.
func (b *Binding) handleClick(_ js.Value, args []js.Value) any {
	ev := args[0]
	target := ev.Get("target")
	if !present(target) || target.Get("closest").IsUndefined() {
		return nil
	}
	if dot := target.Call("closest", DotSelector); present(dot) {
		ev.Call("preventDefault")
		ev.Call("stopPropagation")
		idx, err := strconv.Atoi(dot.Call("getAttribute", AttrIndex).String())
		if err != nil {
			b.logger.Warn("progress dot without index", "error", err)
			return nil
		}
		b.ctrl.Select(idx)
		return nil
	}
	for sel, step := range map[string]int{PrevSelector: -1, NextSelector: 1} {
		if btn := target.Call("closest", sel); present(btn) {
			ev.Call("preventDefault")
			ev.Call("stopPropagation")
			b.scrollTrackTo(b.ctrl.State().Cursor + step)
			return nil
		}
	}
	return nil
}

func (b *Binding) handleTrackScroll(_ js.Value, _ []js.Value) any {
	width := b.track.Get("clientWidth").Float()
	if width <= 0 {
		return nil
	}
	b.ctrl.Page(int(math.Round(b.track.Get("scrollLeft").Float() / width)))
	return nil
}

func (b *Binding) scrollTrackTo(idx int) {
	if !present(b.track) {
		return
	}
	idx = min(max(idx, 0), b.ctrl.Config().LastIndex())
	width := b.track.Get("clientWidth").Float()
	b.track.Call("scrollTo", map[string]any{"left": float64(idx) * width, "behavior": "smooth"})
}

func (b *Binding) render(prev, next scrollstep.State) {
	b.section.Call("setAttribute", AttrDirection, next.Direction.String())
	b.section.Call("setAttribute", AttrArmed, strconv.FormatBool(next.Armed))
	b.section.Call("setAttribute", AttrDevice, next.Device.String())
	if present(b.spacer) {
		b.spacer.Set("hidden", !next.Armed)
	}
	if prev.Cursor != next.Cursor {
		for _, group := range [][]js.Value{b.panels, b.images} {
			for i, el := range group {
				el.Set("hidden", i != next.Cursor)
			}
		}
		for i, dot := range b.dots {
			if i == next.Cursor {
				dot.Call("setAttribute", "aria-current", "step")
			} else {
				dot.Call("removeAttribute", "aria-current")
			}
		}
		if next.Device == scrollstep.Small && prev.Cursor >= 0 {
			b.scrollTrackTo(next.Cursor)
		}
	}
	b.setWheel(next.Capturing())
}

type documentHost struct {
	doc js.Value
}

func (h documentHost) Lookup(selector string) (scrollstep.Section, bool) {
	el := h.doc.Call("querySelector", selector)
	if !present(el) {
		return nil, false
	}
	return element{v: el}, true
}

type element struct {
	v js.Value
}

func (e element) ScrollIntoView() {
	e.v.Call("scrollIntoView", map[string]any{"behavior": "smooth"})
}

func queryAll(root js.Value, selector string) []js.Value {
	nodes := root.Call("querySelectorAll", selector)
	out := make([]js.Value, nodes.Length())
	for i := range out {
		out[i] = nodes.Index(i)
	}
	return out
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}
