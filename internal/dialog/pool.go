package dialog

// Instance is one live dialog.
type Instance struct {
	ID      string
	Options Options
	Nodes   NodeSet

	state        State
	dispatched   bool
	scrollLocked bool
	prevOverflow string
}

// State returns the instance lifecycle state.
func (i *Instance) State() State {
	return i.state
}

// InputValue returns the current prompt input text, or "" when the dialog
// has no input.
func (i *Instance) InputValue() string {
	if i.Nodes.Input == nil {
		return ""
	}
	return i.Nodes.Input.Value()
}

// Pool is a single-slot gate. It holds at most one Instance.
type Pool struct {
	slot *Instance
}

// TryAcquire occupies the slot with inst. When the slot is taken it returns
// the occupant and false.
func (p *Pool) TryAcquire(inst *Instance) (*Instance, bool) {
	if p.slot != nil {
		return p.slot, false
	}
	p.slot = inst
	return inst, true
}

// Release empties the slot if inst occupies it.
func (p *Pool) Release(inst *Instance) bool {
	if p.slot == nil || p.slot != inst {
		return false
	}
	p.slot = nil
	return true
}

// Current returns the occupant, or nil.
func (p *Pool) Current() *Instance {
	return p.slot
}

// Len returns 0 or 1.
func (p *Pool) Len() int {
	if p.slot == nil {
		return 0
	}
	return 1
}
