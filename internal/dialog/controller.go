package dialog

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/hay-kot/alertbox/internal/dom"
	"github.com/hay-kot/alertbox/pkg/randid"
)

// Timings are the fixed delays of the animation choreography.
type Timings struct {
	// Settle is the delay between adding the effect class and removing the
	// entry positioning class.
	Settle time.Duration
	// Teardown is the delay between starting the exit animation and removing
	// the nodes.
	Teardown time.Duration
}

// DefaultTimings returns the standard 10ms settle and 400ms teardown delays.
func DefaultTimings() Timings {
	return Timings{
		Settle:   10 * time.Millisecond,
		Teardown: 400 * time.Millisecond,
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithDefaults merges overrides onto the built-in defaults. Overrides follow
// the same merge rules as per-dialog options.
func WithDefaults(overrides Values) Option {
	return func(c *Controller) {
		c.defaults = c.merger.Merge(c.defaults, overrides)
	}
}

// WithTimings replaces the animation delays.
func WithTimings(t Timings) Option {
	return func(c *Controller) {
		c.timings = t
	}
}

// Controller runs the dialog lifecycle and owns the single instance slot.
//
// A Controller is not safe for concurrent use. Every call, and every task
// run by its Scheduler, must happen on one goroutine.
type Controller struct {
	doc      *dom.Document
	sched    Scheduler
	logger   zerolog.Logger
	merger   *Merger
	defaults Values
	timings  Timings
	pool     Pool
}

// NewController creates a Controller rendering into doc.
func NewController(doc *dom.Document, sched Scheduler, logger zerolog.Logger, opts ...Option) *Controller {
	c := &Controller{
		doc:      doc,
		sched:    sched,
		logger:   logger,
		merger:   NewMerger(logger),
		defaults: Defaults(),
		timings:  DefaultTimings(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle is a chainable reference to the active instance.
type Handle struct {
	c    *Controller
	inst *Instance
}

// Show requests another dialog through the same controller.
func (h *Handle) Show(raw Values) *Handle {
	return h.c.Show(raw)
}

// Hide begins teardown of the active instance.
func (h *Handle) Hide() *Handle {
	h.c.Hide()
	return h
}

// Instance returns the instance the handle refers to.
func (h *Handle) Instance() *Instance {
	return h.inst
}

// Show builds, mounts, and schedules the entry animation of a dialog. When a
// dialog is already active the request is ignored and the handle refers to
// the existing instance.
func (c *Controller) Show(raw Values) *Handle {
	if cur := c.pool.Current(); cur != nil {
		c.logger.Debug().Str("instance", cur.ID).Stringer("state", cur.state).Msg("dialog already active, show ignored")
		return &Handle{c: c, inst: cur}
	}

	inst := &Instance{ID: randid.Prefixed("dlg", 8), state: StateBuilding}
	c.pool.TryAcquire(inst)

	raw = c.normalizeType(raw)
	merged := c.merger.Merge(c.defaults, raw)
	inst.Options = Resolve(merged, raw, c.logger)

	inst.Nodes = NewBuilder(c.doc, &inst.Options, c.logger).Build()
	Mount(c.doc, inst.Nodes, func(status bool) { c.outcome(inst, status) }, c.logger)
	c.transition(inst, StateMounted)

	c.sched.AfterFunc(inst.Options.Wait, func() { c.animateIn(inst) })

	return &Handle{c: c, inst: inst}
}

// normalizeType returns a shallow copy of raw with a valid type. The caller's
// map is not modified.
func (c *Controller) normalizeType(raw Values) Values {
	out := make(Values, len(raw)+1)
	for k, v := range raw {
		out[k] = v
	}

	if s, ok := out[KeyType].(string); ok {
		if _, valid := ParseType(s); valid {
			return out
		}
	}

	if v, present := out[KeyType]; present {
		c.logger.Warn().Interface("type", v).Msg("invalid dialog type, using alert")
	}
	out[KeyType] = TypeAlert.String()
	return out
}

func (c *Controller) animateIn(inst *Instance) {
	if c.pool.Current() != inst || inst.state != StateMounted {
		return
	}

	body := c.doc.Body()
	body.InsertBefore(inst.Nodes.Overlay, inst.Nodes.Layer)
	if !inst.Options.Overlay {
		inst.Nodes.Overlay.SetStyle("visibility", "hidden")
	}

	inst.prevOverflow = body.Style("overflow")
	inst.scrollLocked = true
	body.SetStyle("overflow", "hidden")

	inst.Nodes.Layer.AddClass(EffectClass(inst.Options.Effect))
	c.transition(inst, StateAnimatingIn)

	c.sched.AfterFunc(c.timings.Settle, func() { c.settle(inst) })
}

func (c *Controller) settle(inst *Instance) {
	if c.pool.Current() != inst || inst.state != StateAnimatingIn {
		return
	}
	inst.Nodes.Layer.RemoveClass(AnimationClass(inst.Options.From))
	c.transition(inst, StateVisible)
}

// Hide starts the exit animation of the active dialog. It is a no-op when no
// dialog is active or the exit animation has already started.
func (c *Controller) Hide() {
	inst := c.pool.Current()
	if inst == nil {
		return
	}
	c.hide(inst)
}

func (c *Controller) hide(inst *Instance) {
	if inst.state == StateAnimatingOut || inst.state == StateIdle {
		return
	}

	layer := inst.Nodes.Layer
	if cls := AnimationClass(inst.Options.From); !layer.HasClass(cls) {
		layer.AddClass(cls)
	}
	c.transition(inst, StateAnimatingOut)

	c.sched.AfterFunc(c.timings.Teardown, func() { c.teardown(inst) })
}

func (c *Controller) teardown(inst *Instance) {
	if c.pool.Current() != inst {
		return
	}

	body := c.doc.Body()
	body.RemoveChild(inst.Nodes.Overlay)
	body.RemoveChild(inst.Nodes.Layer)
	if inst.scrollLocked {
		body.SetStyle("overflow", inst.prevOverflow)
		inst.scrollLocked = false
	}

	c.pool.Release(inst)
	c.transition(inst, StateIdle)
}

// outcome handles an OK or cancel activation. The exit animation starts
// before callbacks run, so callbacks observe an instance that is still
// mounted and still occupies the slot.
func (c *Controller) outcome(inst *Instance, status bool) {
	if c.pool.Current() != inst || !inst.state.interactive() || inst.dispatched {
		return
	}
	inst.dispatched = true

	input := inst.InputValue()
	c.hide(inst)

	opts := inst.Options
	args := opts.Type.shape().callbackArgs(input)

	c.logger.Debug().Str("instance", inst.ID).Bool("status", status).Msg("dialog outcome")

	switch {
	case status && opts.Success != nil:
		opts.Success(args...)
	case !status && opts.Cancelled != nil:
		opts.Cancelled()
	}

	if opts.Complete != nil {
		opts.Complete(status, args...)
	}
}

// Click activates the OK (true) or cancel (false) control of the active
// dialog as if it were clicked. It reports whether such a control exists.
func (c *Controller) Click(ok bool) bool {
	inst := c.pool.Current()
	if inst == nil {
		return false
	}

	btn := inst.Nodes.CancelButton
	if ok {
		btn = inst.Nodes.OKButton
	}
	if btn == nil {
		return false
	}
	return btn.Dispatch(dom.EventClick)
}

// Active returns the instance occupying the slot, or nil.
func (c *Controller) Active() *Instance {
	return c.pool.Current()
}

// State returns the state of the active instance, or StateIdle.
func (c *Controller) State() State {
	if inst := c.pool.Current(); inst != nil {
		return inst.state
	}
	return StateIdle
}

// Defaults returns a copy of the controller's default tree.
func (c *Controller) Defaults() Values {
	return c.defaults.Clone()
}

func (c *Controller) transition(inst *Instance, to State) {
	c.logger.Debug().
		Str("instance", inst.ID).
		Stringer("from", inst.state).
		Stringer("to", to).
		Msg("dialog transition")
	inst.state = to
}
