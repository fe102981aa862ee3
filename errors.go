package unitgo

import (
	"github.com/cockroachdb/errors"

	"github.com/hupe1980/unitgo/catalog"
	"github.com/hupe1980/unitgo/dimension"
	"github.com/hupe1980/unitgo/measurement"
	"github.com/hupe1980/unitgo/quantity"
	"github.com/hupe1980/unitgo/ratio"
	"github.com/hupe1980/unitgo/storage"
)

// ErrUnknownOp is returned for a propagation operator other than add, sub,
// mul or div.
var ErrUnknownOp = errors.New("unitgo: unknown operation")

// ErrorKind classifies errors from every package of the module.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindDimensionMismatch
	KindDivisionByZero
	KindUndefinedPropagation
	KindAffineConversionRejected
	KindOverflow
	KindStorage
	KindCatalog
)

func (k ErrorKind) String() string {
	switch k {
	case KindDimensionMismatch:
		return "dimension_mismatch"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindUndefinedPropagation:
		return "undefined_propagation"
	case KindAffineConversionRejected:
		return "affine_conversion_rejected"
	case KindOverflow:
		return "overflow"
	case KindStorage:
		return "storage"
	case KindCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// KindOf returns the kind of err, or KindUnknown for nil and foreign errors.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, quantity.ErrDimensionMismatch),
		errors.Is(err, quantity.ErrScaleMismatch):
		return KindDimensionMismatch
	case errors.Is(err, quantity.ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, measurement.ErrUndefinedPropagation),
		errors.Is(err, measurement.ErrModelMismatch),
		errors.Is(err, quantity.ErrDomain):
		return KindUndefinedPropagation
	case errors.Is(err, quantity.ErrAffineConversionRejected):
		return KindAffineConversionRejected
	case errors.Is(err, ratio.ErrOverflow),
		errors.Is(err, dimension.ErrExponentOverflow):
		return KindOverflow
	case isStorage(err):
		return KindStorage
	case errors.Is(err, catalog.ErrUnknownUnit),
		errors.Is(err, catalog.ErrDuplicate),
		errors.Is(err, catalog.ErrFrozen),
		errors.Is(err, catalog.ErrFormat):
		return KindCatalog
	default:
		return KindUnknown
	}
}

func isStorage(err error) bool {
	for _, target := range []error{
		storage.ErrReleased,
		storage.ErrForeignHandle,
		storage.ErrOutOfRange,
		storage.ErrInvalidCapacity,
		storage.ErrBudgetExceeded,
		storage.ErrActiveHandles,
		storage.ErrExhausted,
		storage.ErrClosed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
