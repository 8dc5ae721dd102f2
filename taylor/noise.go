package taylor

import (
	"io"

	"github.com/tuneinsight/robustpade/utils"
	"github.com/tuneinsight/robustpade/utils/sampling"
)

// Perturb returns a copy of coeffs with uniform noise of modulus at most
// amplitude·max|coeffs| added to every coefficient. Real coefficient lists
// receive real noise. The noise is drawn from prng, so a keyed PRNG makes it
// reproducible.
func Perturb(coeffs []complex128, amplitude float64, prng io.Reader) []complex128 {

	noisy := utils.Clone(coeffs)
	if amplitude == 0 || len(noisy) == 0 {
		return noisy
	}

	scale := amplitude * utils.MaxAbs(coeffs)

	if utils.IsReal(coeffs) {
		for i := range noisy {
			noisy[i] += complex(scale*sampling.RandFloat64(prng, -1, 1), 0)
		}
		return noisy
	}

	for i := range noisy {
		r := sampling.RandFloat64(prng, 0, scale)
		noisy[i] += complex(r, 0) * sampling.RandUnitComplex128(prng)
	}

	return noisy
}
