package holding

// Listener receives lifecycle events from a [Drawable].
//
// A drawable holds at most one listener at a time; SetListener replaces any
// previous one. OnBefore* callbacks fire synchronously on the same call
// stack as the control operation that triggered them. The paired completion
// callbacks (OnExpand, OnCollapse, OnClickExpand, OnClickCollapse) fire only
// when the corresponding animation runs to natural completion, never when it
// is preempted by a later control call.
//
// OnOffsetChanged is fired by the host while tracking a drag gesture, not by
// the drawable itself; it is declared here so hosts and drawables share a
// single contract.
type Listener interface {
	// OnBeforeExpand fires synchronously when Expand or ClickExpand is called,
	// before the expand animation starts.
	OnBeforeExpand()

	// OnExpand fires when an animation started by Expand completes.
	OnExpand()

	// OnBeforeCollapse fires synchronously when Collapse or ClickCollapse is
	// called, before the collapse animation starts.
	OnBeforeCollapse()

	// OnCollapse fires when an animation started by Collapse completes.
	// isCancel reports whether the cancel appearance was active at that time.
	OnCollapse(isCancel bool)

	// OnOffsetChanged reports drag progress from the host, as a fraction of
	// the distance toward the cancel zone.
	OnOffsetChanged(offset float64, isCancel bool)

	// OnClickExpand fires when an animation started by ClickExpand completes.
	OnClickExpand()

	// OnClickCollapse fires when an animation started by ClickCollapse
	// completes.
	OnClickCollapse()
}
