package rgba

import "fmt"

// Op is one of the fixed set of image operations executed by Do.
type Op interface {
	isOp()
}

// Property selects what ReflectOp reports.
type Property int

// Properties for ReflectOp.
const (
	PropertyHead Property = iota
	PropertyTail
	PropertyIsHead
	PropertyIsTail
	PropertyXY
	PropertyIndex
	PropertyLength
	PropertyBytes
)

func (p Property) String() string {
	switch p {
	case PropertyHead:
		return "head"
	case PropertyTail:
		return "tail"
	case PropertyIsHead:
		return "head?"
	case PropertyIsTail:
		return "tail?"
	case PropertyXY:
		return "xy"
	case PropertyIndex:
		return "index?"
	case PropertyLength:
		return "length?"
	case PropertyBytes:
		return "bytes"
	}
	return fmt.Sprintf("Property(%d)", int(p))
}

type (
	// MakeOp creates a new image, see Make. The image passed to Do is
	// ignored and may be nil.
	MakeOp struct{ Spec Value }

	// EqualOp compares the image with Other, see Equal.
	EqualOp struct{ Other *Image }

	// MoldOp renders the image as Text, from the head if All is set.
	MoldOp struct{ All bool }

	// CopyOp copies the image, see Image.Copy.
	CopyOp struct{ Part Value }

	// PickOp reads from the image, see Image.Pick.
	PickOp struct{ Picker Value }

	// PokeOp writes to the image, see Image.Poke.
	PokeOp struct{ Picker, Value Value }

	// InsertOp inserts at the cursor, see Image.Insert.
	InsertOp struct {
		Value Value
		ModifyOptions
	}

	// AppendOp appends at the tail, see Image.Append.
	AppendOp struct {
		Value Value
		ModifyOptions
	}

	// ChangeOp overwrites at the cursor, see Image.Change.
	ChangeOp struct {
		Value Value
		ModifyOptions
	}

	// RemoveOp removes at the cursor, see Image.Remove.
	RemoveOp struct{ Part Value }

	// ClearOp truncates at the cursor, see Image.Clear.
	ClearOp struct{}

	// FindOp searches from the cursor, see Image.Find.
	FindOp struct {
		Pattern Value
		FindOptions
	}

	// ComplementOp inverts the image, see Image.Complement.
	ComplementOp struct{}

	// ReflectOp reports a property of the image.
	ReflectOp struct{ Property Property }
)

func (MakeOp) isOp()       {}
func (EqualOp) isOp()      {}
func (MoldOp) isOp()       {}
func (CopyOp) isOp()       {}
func (PickOp) isOp()       {}
func (PokeOp) isOp()       {}
func (InsertOp) isOp()     {}
func (AppendOp) isOp()     {}
func (ChangeOp) isOp()     {}
func (RemoveOp) isOp()     {}
func (ClearOp) isOp()      {}
func (FindOp) isOp()       {}
func (ComplementOp) isOp() {}
func (ReflectOp) isOp()    {}

// orNil converts a possibly nil *Image into a Value without producing a
// non-nil interface holding a nil pointer.
func orNil(img *Image) Value {
	if img == nil {
		return nil
	}
	return img
}

// Do executes op against img and returns its result. Mutating operations
// return img itself.
func Do(img *Image, op Op) (Value, error) {
	switch o := op.(type) {
	case MakeOp:
		m, err := Make(o.Spec)
		if err != nil {
			return nil, err
		}
		return m, nil
	case EqualOp:
		return Logic(Equal(img, o.Other)), nil
	case MoldOp:
		if o.All {
			return Text(img.MoldAll()), nil
		}
		return Text(img.Mold()), nil
	case CopyOp:
		m, err := img.Copy(o.Part)
		if err != nil {
			return nil, err
		}
		return m, nil
	case PickOp:
		return img.Pick(o.Picker)
	case PokeOp:
		if err := img.Poke(o.Picker, o.Value); err != nil {
			return nil, err
		}
		return o.Value, nil
	case InsertOp:
		if err := img.Insert(o.Value, o.ModifyOptions); err != nil {
			return nil, err
		}
		return img, nil
	case AppendOp:
		if err := img.Append(o.Value, o.ModifyOptions); err != nil {
			return nil, err
		}
		return img, nil
	case ChangeOp:
		if err := img.Change(o.Value, o.ModifyOptions); err != nil {
			return nil, err
		}
		return img, nil
	case RemoveOp:
		if err := img.Remove(o.Part); err != nil {
			return nil, err
		}
		return img, nil
	case ClearOp:
		if err := img.Clear(); err != nil {
			return nil, err
		}
		return img, nil
	case FindOp:
		m, err := img.Find(o.Pattern, o.FindOptions)
		if err != nil {
			return nil, err
		}
		return orNil(m), nil
	case ComplementOp:
		return img.Complement(), nil
	case ReflectOp:
		return reflect(img, o.Property)
	}
	panic(fmt.Sprintf("rgba: unhandled operation %T", op))
}

func reflect(img *Image, p Property) (Value, error) {
	switch p {
	case PropertyHead:
		return img.Head(), nil
	case PropertyTail:
		return img.Tail(), nil
	case PropertyIsHead:
		return Logic(img.IsHead()), nil
	case PropertyIsTail:
		return Logic(img.IsTail()), nil
	case PropertyXY:
		return img.XY(), nil
	case PropertyIndex:
		return Integer(img.Index()), nil
	case PropertyLength:
		return Integer(img.Length()), nil
	case PropertyBytes:
		return Binary{Data: img.Bytes()}, nil
	}
	return nil, newError("reflect", ErrType, Word(p.String()))
}
