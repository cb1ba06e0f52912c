package document

// PlacePosition selects where a newly-inserted child lands among its
// parent's existing children.
type PlacePosition struct {
	kind placeKind
	n    int
}

type placeKind int

const (
	placeFront placeKind = iota
	placeBack
	placeFrontN
	placeBackN
	placeReplace
)

// InsertFront places the new child before every existing child.
var InsertFront = PlacePosition{kind: placeFront}

// InsertBack places the new child after every existing child.
var InsertBack = PlacePosition{kind: placeBack}

// InsertFrontN places the new child at index min(n, L-1) among the parent's
// L existing children — a specified quirk inherited from the original
// grammar: this clamp means the new child can never land strictly after the
// last existing child via InsertFrontN/InsertBackN (use InsertBack for
// that).
func InsertFrontN(n int) PlacePosition { return PlacePosition{kind: placeFrontN, n: n} }

// InsertBackN places the new child at index max(0, (L-1)-n) among the
// parent's L existing children. Same clamp quirk as InsertFrontN.
func InsertBackN(n int) PlacePosition { return PlacePosition{kind: placeBackN, n: n} }

// Replace drops the parent's existing child at index n and puts the new
// child's reference into the vacated slot.
func Replace(n int) PlacePosition { return PlacePosition{kind: placeReplace, n: n} }

// Insert appends a new element to the document and links it into parentID's
// Children at the position pos selects. The new element's index is taken
// from the length of the elements slice immediately after the append minus
// one (len(d.elements)-1) — not the bare post-append length, which is the
// off-by-one the original source carries (see DESIGN.md).
func (d *Document) Insert(parentID int, pos PlacePosition, prefix, local string, attrs []Attribute) (EntityRef, error) {
	parent := d.Element(parentID)
	if parent == nil {
		return EntityRef{}, NotFoundError{Ref: EntityRef{Kind: EntityElement, Index: parentID}}
	}

	d.elements = append(d.elements, &Element{
		Parent:     parentID,
		Prefix:     prefix,
		Local:      local,
		Attributes: append([]Attribute(nil), attrs...),
	})
	newIdx := len(d.elements) - 1
	ref := EntityRef{Kind: EntityElement, Index: newIdx}

	L := len(parent.Children)
	switch pos.kind {
	case placeFront:
		parent.Children = append([]EntityRef{ref}, parent.Children...)
	case placeBack:
		parent.Children = append(parent.Children, ref)
	case placeFrontN:
		at := pos.n
		if at > L-1 {
			at = L - 1
		}
		if at < 0 {
			at = 0
		}
		parent.Children = insertAt(parent.Children, at, ref)
	case placeBackN:
		at := (L - 1) - pos.n
		if at < 0 {
			at = 0
		}
		parent.Children = insertAt(parent.Children, at, ref)
	case placeReplace:
		if pos.n > L-1 {
			d.elements[newIdx] = nil
			d.elements = d.elements[:newIdx]
			return EntityRef{}, ReplaceChildOutOfRangeError{N: pos.n, Parent: EntityRef{Kind: EntityElement, Index: parentID}, LastIndex: L - 1}
		}
		old := parent.Children[pos.n]
		if err := d.dropImpl(old, false); err != nil {
			d.elements[newIdx] = nil
			d.elements = d.elements[:newIdx]
			return EntityRef{}, DropEntityError{N: pos.n, Parent: EntityRef{Kind: EntityElement, Index: parentID}, Cause: err}
		}
		parent.Children[pos.n] = ref
	}

	return ref, nil
}

func insertAt(children []EntityRef, at int, ref EntityRef) []EntityRef {
	children = append(children, EntityRef{})
	copy(children[at+1:], children[at:])
	children[at] = ref
	return children
}

// Drop removes ref and, if it is an element, recursively removes its
// descendants. Dropping the root element (EntityRef{Element, 0}) always
// fails with ErrRefuseDropRoot and leaves the document unchanged.
func (d *Document) Drop(ref EntityRef) error {
	if ref.Kind == EntityElement && ref.Index == 0 {
		return ErrRefuseDropRoot
	}
	return d.dropImpl(ref, true)
}

// dropImpl recursively drops ref's descendants (isParent is false for those
// recursive calls, since only the outermost call needs to unlink from a
// parent's Children — each recursive call's own children are discarded
// wholesale along with the parent slot itself) and, when isParent, unlinks
// ref from its own parent's Children before nil-ing its slot.
func (d *Document) dropImpl(ref EntityRef, isParent bool) error {
	switch ref.Kind {
	case EntityElement:
		e := d.Element(ref.Index)
		if e == nil {
			return NotFoundError{Ref: ref}
		}
		children := append([]EntityRef(nil), e.Children...)
		for _, c := range children {
			if err := d.dropImpl(c, false); err != nil {
				return err
			}
		}
		if isParent {
			unlink(d.elements[e.Parent], ref)
		}
		d.elements[ref.Index] = nil

	case EntityText:
		t := d.Text(ref.Index)
		if t == nil {
			return NotFoundError{Ref: ref}
		}
		if isParent {
			unlink(d.elements[t.Parent], ref)
		}
		d.texts[ref.Index] = nil
	}
	return nil
}

func unlink(parent *Element, ref EntityRef) {
	for i, c := range parent.Children {
		if c == ref {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}
