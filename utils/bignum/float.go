// Package bignum implements arbitrary precision arithmetic helpers: reference
// elementary functions, complex numbers and monomial polynomials.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const pi = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170679821480865132823066470938446095505822317253594081284811174502841027019385211055596446229489549303819644288109756659334461284756482337867831652712019091456485669234603486104543266482133936072602491412737245870066063155881748815209209628292540917153643678925903600113305305488204665213841469519415116094330572703657595919530921861173819326117931051185480744623799627495673518857527248912279381830119491298336733624406566430860213949463952247371907021798609437027705392171762931767523846748184676694051320005681271452635608277857713427577896091736371787214684409012249534301465495853710507922796892589235420199561121290219608640344181598136297747713099605187072113499999983729780499510597317328160963185950244594553469083026425223082533446850352619311881710100031378387528865875332083814206171776691473035982534904287554687311595628638823537875937519577818577805321712268066130019278766111959092164201989"

// Pi returns Pi with prec bits of precision.
func Pi(prec uint) *big.Float {
	pi, _ := new(big.Float).SetPrec(prec).SetString(pi)
	return pi
}

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valid types for x are: int, int64, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valid types are int, int64, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Cos is an iterative arbitrary precision computation of Cos(x)
// Iterative process with an error of ~10^{−0.60206*k} = (1/4)^k after k iterations.
// ref : Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric functions to high precision, 2018
func Cos(x *big.Float) (cosx *big.Float) {
	prec := x.Prec()
	tmp := new(big.Float)

	t := NewFloat(0.5, prec)
	half := new(big.Float).Copy(t)

	for i := uint(1); i < (prec>>1)-1; i++ {
		t.Mul(t, half)
	}

	s := new(big.Float).Mul(x, t)
	s.Mul(s, x)
	s.Mul(s, t)

	four := NewFloat(4.0, prec)

	for i := uint(1); i < prec>>1; i++ {
		tmp.Sub(four, s)
		s.Mul(s, tmp)
	}

	cosx = new(big.Float).Quo(s, NewFloat(2.0, prec))
	cosx.Sub(NewFloat(1.0, prec), cosx)
	return
}

// Sin returns sin(x) = cos(x - pi/2).
func Sin(x *big.Float) (sinx *big.Float) {
	halfPi := Pi(x.Prec())
	halfPi.Quo(halfPi, new(big.Float).SetInt64(2))
	return Cos(new(big.Float).Sub(x, halfPi))
}

// Tan returns sin(x)/cos(x).
func Tan(x *big.Float) *big.Float {
	return new(big.Float).Quo(Sin(x), Cos(x))
}

// Atan returns arctan(x).
// The argument is halved with atan(x) = 2*atan(x/(1+sqrt(1+x^2))) until |x| < 1/8,
// then the alternating Taylor series is summed to the precision of x.
func Atan(x *big.Float) (atan *big.Float) {
	prec := x.Prec() + 16
	one := NewFloat(1, prec)
	eighth := NewFloat(0.125, prec)

	y := NewFloat(x, prec)

	var doublings uint
	tmp := new(big.Float).SetPrec(prec)
	for new(big.Float).Abs(y).Cmp(eighth) > 0 {
		tmp.Mul(y, y)
		tmp.Add(tmp, one)
		tmp.Sqrt(tmp)
		tmp.Add(tmp, one)
		y.Quo(y, tmp)
		doublings++
	}

	// sum_{k>=0} (-1)^k y^{2k+1}/(2k+1)
	y2 := new(big.Float).SetPrec(prec).Mul(y, y)
	term := new(big.Float).SetPrec(prec).Set(y)
	atan = new(big.Float).SetPrec(prec).Set(y)
	eps := new(big.Float).SetPrec(prec).SetMantExp(one, -int(prec))
	for k := int64(1); ; k++ {
		term.Mul(term, y2)
		term.Neg(term)
		tmp.Quo(term, NewFloat(2*k+1, prec))
		atan.Add(atan, tmp)
		if new(big.Float).Abs(tmp).Cmp(eps) < 0 {
			break
		}
	}

	atan.SetMantExp(atan, int(doublings))
	return atan.SetPrec(x.Prec())
}

// Log return ln(x) with 2^precisions bits.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Log1p returns ln(1+x).
func Log1p(x *big.Float) *big.Float {
	return Log(new(big.Float).Add(NewFloat(1, x.Prec()), x))
}

// Exp returns exp(x) with 2^precisions bits.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y
func Pow(x, y *big.Float) (pow *big.Float) {
	return bigfloat.Pow(x, y)
}

// SinH returns hyperbolic sin(x) with 2^precisions bits.
func SinH(x *big.Float) (sinh *big.Float) {
	prec := x.Prec()
	ex := Exp(x)
	emx := new(big.Float).Quo(NewFloat(1, prec), ex)
	sinh = new(big.Float).Sub(ex, emx)
	return sinh.Quo(sinh, NewFloat(2, prec))
}

// TanH returns hyperbolic tan(x) with 2^precisions bits.
func TanH(x *big.Float) (tanh *big.Float) {
	tanh = new(big.Float).Set(x)
	tanh.Add(tanh, tanh)
	tanh = Exp(tanh)
	tmp := new(big.Float).Set(tanh)
	tmp.Add(tmp, NewFloat(1, x.Prec()))
	tanh.Sub(tanh, NewFloat(1, x.Prec()))
	tanh.Quo(tanh, tmp)
	return
}
