// Package scale maps normalized control values in [0,1] to engineering
// units and back.
//
// Every Scale is monotonic over its domain. Map clamps its input to [0,1]
// and Invmap clamps raw input to [Min(), Max()], so out-of-range host values
// are absorbed rather than rejected. Constructors validate the domain and
// return a *core.ConfigurationError on failure.
package scale
