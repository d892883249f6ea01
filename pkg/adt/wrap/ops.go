package wrap

import "golang.org/x/exp/constraints"

// Number constrains the representations accepted by the arithmetic family.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arithmetic family. Each operation combines the stored values and keeps
// the tag, so indexes of different kinds never mix.

func Add[T Number, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value + rhs.value)
}

func Sub[T Number, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value - rhs.value)
}

func Mul[T Number, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value * rhs.value)
}

func Div[T Number, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value / rhs.value)
}

func Mod[T constraints.Integer, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value % rhs.value)
}

// Bitwise family, available for integer representations only.

func And[T constraints.Integer, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value & rhs.value)
}

func Or[T constraints.Integer, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value | rhs.value)
}

func Xor[T constraints.Integer, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value ^ rhs.value)
}

func AndNot[T constraints.Integer, Tag any](lhs, rhs Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](lhs.value &^ rhs.value)
}

func Not[T constraints.Integer, Tag any](w Value[T, Tag]) Value[T, Tag] {
	return New[T, Tag](^w.value)
}

func Shl[T constraints.Integer, Tag any](w Value[T, Tag], bits uint) Value[T, Tag] {
	return New[T, Tag](w.value << bits)
}

func Shr[T constraints.Integer, Tag any](w Value[T, Tag], bits uint) Value[T, Tag] {
	return New[T, Tag](w.value >> bits)
}

// Increment family. Inc and Dec modify in place and return the new value;
// the Post variants return the value held before the update.

func Inc[T Number, Tag any](w *Value[T, Tag]) Value[T, Tag] {
	w.value++
	return *w
}

func Dec[T Number, Tag any](w *Value[T, Tag]) Value[T, Tag] {
	w.value--
	return *w
}

func PostInc[T Number, Tag any](w *Value[T, Tag]) Value[T, Tag] {
	prev := *w
	w.value++
	return prev
}

func PostDec[T Number, Tag any](w *Value[T, Tag]) Value[T, Tag] {
	prev := *w
	w.value--
	return prev
}
