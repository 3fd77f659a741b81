package sash

// Align specifies how a child is positioned within the cell the grid
// strategy assigns to it.
type Align uint8

const (
	// AlignStart places the child at the leading edge of its cell.
	AlignStart Align = iota
	// AlignCenter centers the child within its cell.
	AlignCenter
	// AlignEnd places the child at the trailing edge of its cell.
	AlignEnd
	// AlignFill stretches the child to the full extent of its cell.
	AlignFill
)

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "Start"
	case AlignCenter:
		return "Center"
	case AlignEnd:
		return "End"
	case AlignFill:
		return "Fill"
	default:
		return "Unknown"
	}
}

// Hint is per-child data attached to a node and interpreted only by the
// strategy of the node's parent container. A hint whose variant does not
// match the parent's strategy is ignored and the strategy's defaults apply.
type Hint interface {
	isHint()
}

// RowHint influences how the row strategy sizes a child.
type RowHint struct {
	// PreferredWidth and PreferredHeight override the child's natural size
	// when the row packs children. Unconstrained keeps the natural value.
	PreferredWidth  int
	PreferredHeight int

	// Exclude removes the child from layout entirely.
	Exclude bool
}

// NewRowHint returns a RowHint with both preferred dimensions unconstrained.
func NewRowHint() *RowHint {
	return &RowHint{PreferredWidth: Unconstrained, PreferredHeight: Unconstrained}
}

func (*RowHint) isHint() {}

// GridHint influences how the grid strategy places and sizes a child.
type GridHint struct {
	// ColSpan and RowSpan are the number of cells the child occupies.
	// Values below 1 are clamped to 1.
	ColSpan int
	RowSpan int

	// HAlign and VAlign position the child within its spanned cell.
	HAlign Align
	VAlign Align

	// GrabH and GrabV mark the child's columns/rows as eligible to receive
	// leftover space during distribution.
	GrabH bool
	GrabV bool

	// WidthHint and HeightHint fix the child's size when the corresponding
	// alignment is not AlignFill. Unconstrained defers to the natural size.
	WidthHint  int
	HeightHint int

	// MinWidth and MinHeight raise the child's column/row minimums.
	MinWidth  int
	MinHeight int

	// HIndent and VIndent offset the child inward from the start edge of
	// its cell.
	HIndent int
	VIndent int

	// Exclude removes the child from layout entirely; no cell is reserved.
	Exclude bool
}

// NewGridHint returns a GridHint with the strategy's default values:
// a single-cell child, start/center aligned, with no grabbing.
func NewGridHint() *GridHint {
	return &GridHint{
		ColSpan:    1,
		RowSpan:    1,
		HAlign:     AlignStart,
		VAlign:     AlignCenter,
		WidthHint:  Unconstrained,
		HeightHint: Unconstrained,
	}
}

func (*GridHint) isHint() {}

// FormHint positions a child with up to four edge attachments.
// A nil attachment on an axis derives that edge from the child's preferred
// size relative to the other attachment on the axis; when neither edge of
// an axis is attached the child sits at the client origin.
type FormHint struct {
	// Width and Height override the child's natural size.
	// Unconstrained keeps the natural value.
	Width  int
	Height int

	Left   *Attachment
	Top    *Attachment
	Right  *Attachment
	Bottom *Attachment
}

// NewFormHint returns a FormHint with unconstrained preferred dimensions
// and no attachments.
func NewFormHint() *FormHint {
	return &FormHint{Width: Unconstrained, Height: Unconstrained}
}

func (*FormHint) isHint() {}

// EdgeAlign selects which resolved edge of an attachment's target sibling
// the attachment measures from.
type EdgeAlign uint8

const (
	// EdgeDefault measures from the edge facing the referencing attachment:
	// a left attachment measures the target's right edge, a top attachment
	// the target's bottom edge, and vice versa ("attach after").
	EdgeDefault EdgeAlign = iota
	// EdgeStart measures from the target's leading edge (left or top).
	EdgeStart
	// EdgeEnd measures from the target's trailing edge (right or bottom).
	EdgeEnd
	// EdgeCenter measures from the target's center on the relevant axis.
	EdgeCenter
)

// Attachment binds one edge of a child to a fraction of its container's
// client rectangle, or to an edge of a sibling.
type Attachment struct {
	// Target is the sibling whose edge this attachment resolves against.
	// When nil, the attachment resolves against Numerator/Denominator of
	// the container's client extent. Targets are identity references;
	// reordering children does not invalidate them.
	Target Node

	// Numerator and Denominator form the percentage of the client extent.
	// A zero Denominator is treated as 100.
	Numerator   int
	Denominator int

	// Offset is added to the resolved position, in pixels.
	Offset int

	// Align selects the target sibling's edge. Ignored when Target is nil.
	Align EdgeAlign
}

// Percent returns an attachment at numerator percent of the container's
// client extent, plus offset pixels.
func Percent(numerator, offset int) *Attachment {
	return &Attachment{Numerator: numerator, Denominator: 100, Offset: offset}
}

// AttachTo returns an attachment to the facing edge of target, plus offset
// pixels.
func AttachTo(target Node, offset int) *Attachment {
	return &Attachment{Target: target, Offset: offset}
}

// AttachToEdge returns an attachment to a specific edge of target.
func AttachToEdge(target Node, edge EdgeAlign, offset int) *Attachment {
	return &Attachment{Target: target, Align: edge, Offset: offset}
}

// denominator returns the attachment's denominator, defaulting to 100.
func (a *Attachment) denominator() int {
	if a.Denominator == 0 {
		return 100
	}
	return a.Denominator
}
