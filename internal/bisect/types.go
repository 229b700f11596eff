//go:generate go run github.com/dmarkham/enumer -type=Ordering -transform=lower
//go:generate go run github.com/dmarkham/enumer -type=ElemType -trimprefix=Type -transform=lower
package bisect

// Ordering is the result of a three-way comparison.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// CompareFunc compares a against b and reports their relative order.
// It must induce a total order: Equal iff a and b are order-equivalent
// under the intended sort key (not necessarily identical values).
type CompareFunc[T any] func(a, b T) Ordering

// Ordered constrains to types with a built-in ordering.
// The ~ prefix admits named types based on these underlying types.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// ElemType selects how raw CLI values are parsed and compared.
// The Type prefix keeps the constants clear of ElemTypeString, the
// parse function enumer generates.
type ElemType int

const (
	TypeInt ElemType = iota
	TypeFloat
	TypeString
)
