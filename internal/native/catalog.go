package native

// Logical operation names, matching the exported symbols of libimgal. The
// exported C ABI flattens the Rust module path, so most names are bare; the
// phasor pair keeps its time_domain prefix.
const (
	OpSum                  = "sum"
	OpOmega                = "omega"
	OpAbbeDiffractionLimit = "abbe_diffraction_limit"
	OpSimpson              = "simpson"
	OpCompositeSimpson     = "composite_simpson"
	OpMidpoint             = "midpoint"
	OpTimeDomainReal       = "time_domain_real"
	OpTimeDomainImaginary  = "time_domain_imaginary"
)

type catalogEntry struct {
	name string
	sig  CallSignature
}

// catalog is the fixed table of native operations. Every entry resolves at
// initialization so a stale artifact fails the whole bridge up front
// instead of on first use.
var catalog = []catalogEntry{
	{OpSum, Sig(ArrayArg)},
	{OpOmega, Sig(ScalarArg)},
	{OpAbbeDiffractionLimit, Sig(ScalarArg, ScalarArg)},
	{OpSimpson, Sig(ArrayArg, ScalarArg)},
	{OpCompositeSimpson, Sig(ArrayArg, ScalarArg)},
	{OpMidpoint, Sig(ArrayArg, ScalarArg)},
	{OpTimeDomainReal, Sig(ArrayArg, ScalarArg, ScalarArg, ScalarArg)},
	{OpTimeDomainImaginary, Sig(ArrayArg, ScalarArg, ScalarArg, ScalarArg)},
}

// Operations lists the catalog names in bind order.
func Operations() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}
