package taylor

import (
	"fmt"
	"math"
	"math/big"

	"github.com/tuneinsight/robustpade/utils"
	"github.com/tuneinsight/robustpade/utils/bignum"
)

// ReferencePrecision is the precision in bits of the catalog reference evaluations.
const ReferencePrecision = 256

// Function is a named function with its series form and an arbitrary
// precision reference evaluator.
type Function struct {
	Name        string
	Description string
	// Series evaluates the function on a truncated power series.
	Series Func
	// Reference evaluates the function at x with the precision of x.
	Reference func(x *big.Float) *big.Float
	// Radius is the radius of convergence of the Taylor series about 0.
	Radius float64
}

// Eval returns the reference value of the function at x, rounded to float64.
func (f *Function) Eval(x float64) float64 {
	y, _ := f.Reference(bignum.NewFloat(x, ReferencePrecision)).Float64()
	return y
}

// Coefficients returns the order leading Taylor coefficients of the function about 0.
func (f *Function) Coefficients(order int) ([]complex128, error) {
	return Extract(f, order)
}

var catalog = map[string]*Function{
	"exp": {
		Name:        "exp",
		Description: "exp(x)",
		Series:      func(x Series) Series { return x.Exp() },
		Reference:   bignum.Exp,
		Radius:      math.Inf(1),
	},
	"log1p": {
		Name:        "log1p",
		Description: "log(1+x)",
		Series:      func(x Series) Series { return x.AddConst(1).Log() },
		Reference:   bignum.Log1p,
		Radius:      1,
	},
	"sin": {
		Name:        "sin",
		Description: "sin(x)",
		Series:      func(x Series) Series { return x.Sin() },
		Reference:   bignum.Sin,
		Radius:      math.Inf(1),
	},
	"cos": {
		Name:        "cos",
		Description: "cos(x)",
		Series:      func(x Series) Series { return x.Cos() },
		Reference:   bignum.Cos,
		Radius:      math.Inf(1),
	},
	"tan": {
		Name:        "tan",
		Description: "tan(x)",
		Series:      func(x Series) Series { return x.Tan() },
		Reference:   bignum.Tan,
		Radius:      math.Pi / 2,
	},
	"atan": {
		Name:        "atan",
		Description: "atan(x)",
		Series:      func(x Series) Series { return x.Atan() },
		Reference:   bignum.Atan,
		Radius:      1,
	},
	"sinh": {
		Name:        "sinh",
		Description: "sinh(x)",
		Series:      func(x Series) Series { return x.Sinh() },
		Reference:   bignum.SinH,
		Radius:      math.Inf(1),
	},
	"tanh": {
		Name:        "tanh",
		Description: "tanh(x)",
		Series:      func(x Series) Series { return x.Tanh() },
		Reference:   bignum.TanH,
		Radius:      math.Pi / 2,
	},
	"sqrt1p": {
		Name:        "sqrt1p",
		Description: "sqrt(1+x)",
		Series:      func(x Series) Series { return x.AddConst(1).Sqrt() },
		Reference: func(x *big.Float) *big.Float {
			y := bignum.NewFloat(1, x.Prec())
			y.Add(y, x)
			return y.Sqrt(y)
		},
		Radius: 1,
	},
	"cbrt1p": {
		Name:        "cbrt1p",
		Description: "(1+x)^(1/3)",
		Series:      func(x Series) Series { return x.AddConst(1).Pow(complex(1.0/3, 0)) },
		Reference: func(x *big.Float) *big.Float {
			prec := x.Prec()
			y := bignum.NewFloat(1, prec)
			y.Add(y, x)
			third := bignum.NewFloat(1, prec)
			third.Quo(third, bignum.NewFloat(3, prec))
			return bignum.Pow(y, third)
		},
		Radius: 1,
	},
	"geometric": {
		Name:        "geometric",
		Description: "1/(1-x)",
		Series:      func(x Series) Series { return x.Neg().AddConst(1).Inv() },
		Reference: func(x *big.Float) *big.Float {
			y := bignum.NewFloat(1, x.Prec())
			y.Sub(y, x)
			return y.Quo(bignum.NewFloat(1, x.Prec()), y)
		},
		Radius: 1,
	},
	"rational": {
		Name:        "rational",
		Description: "(1+2x)/(1-x/2)",
		Series: func(x Series) Series {
			return x.Scale(2).AddConst(1).Div(x.Scale(-0.5).AddConst(1))
		},
		Reference: func(x *big.Float) *big.Float {
			prec := x.Prec()
			num := bignum.NewFloat(2, prec)
			num.Mul(num, x)
			num.Add(num, bignum.NewFloat(1, prec))
			den := bignum.NewFloat(0.5, prec)
			den.Mul(den, x)
			den.Sub(bignum.NewFloat(1, prec), den)
			return num.Quo(num, den)
		},
		Radius: 2,
	},
}

// Lookup returns the catalog function with the given name.
func Lookup(name string) (*Function, error) {
	if f, ok := catalog[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%q (available: %v): %w", name, Names(), ErrUnknownFunction)
}

// Names returns the sorted names of the catalog functions.
func Names() []string {
	return utils.GetSortedKeys(catalog)
}
