package nav

// Host owns the "currently open form" state and keeps it consistent with the
// navigation signal. It reacts to direct card selection (OpenDirect), the back
// action, and forced navigation (Sync). The parent layout observes open/closed
// transitions through OnOpenChanged only; state never flows the other way, so
// the host and the parent's flag cannot disagree once a pass completes.
type Host struct {
	registry *Registry
	open     *ViewDescriptor // nil = menu shown

	// OnOpenChanged fires on every OpenFormState change: true when a form
	// opens or the open form switches, false when the host returns to the
	// menu. Never fired for no-op transitions.
	OnOpenChanged func(open bool)
}

// NewHost creates a host starting at the menu.
func NewHost(registry *Registry) *Host {
	return &Host{registry: registry}
}

// Open returns the currently open descriptor, if any.
func (h *Host) Open() (ViewDescriptor, bool) {
	if h.open == nil {
		return ViewDescriptor{}, false
	}
	return *h.open, true
}

// OpenDirect opens a form from a card click. Re-selecting the form that is
// already open is a no-op.
func (h *Host) OpenDirect(d ViewDescriptor) {
	h.setOpen(d)
}

// Back returns to the menu. No-op when already there.
func (h *Host) Back() {
	h.setClosed()
}

// Sync applies the navigation signal. Rules:
//   - present signal resolving to a descriptor: open it (no-op when that form
//     is already open);
//   - present signal with an unknown key: leave state untouched;
//   - absent signal: close the open form, or do nothing when already on the
//     menu.
//
// Sync is idempotent: repeated notifications carrying the same signal cause
// no state churn and no emissions, so wiring it through a reactive layer
// cannot loop.
func (h *Host) Sync(sig Signal) {
	if !sig.Present {
		h.setClosed()
		return
	}
	d, ok := h.registry.Resolve(sig.Key)
	if !ok {
		return
	}
	h.setOpen(d)
}

func (h *Host) setOpen(d ViewDescriptor) {
	if h.open != nil && h.open.Key == d.Key {
		return
	}
	h.open = &d
	h.emit(true)
}

func (h *Host) setClosed() {
	if h.open == nil {
		return
	}
	h.open = nil
	h.emit(false)
}

func (h *Host) emit(open bool) {
	if h.OnOpenChanged != nil {
		h.OnOpenChanged(open)
	}
}
