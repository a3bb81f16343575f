// Package config reads the §6 environment-variable tunables shared across
// engines. Every read tolerates a missing or invalid value by falling back
// to its documented default, the way ja7ad-consumption's proc package reads
// CLK_TCK/PAGE_SIZE. A production redesign (§9) would replace this with an
// explicit configuration record passed into each engine call and reserve
// environment reads for a thin wrapper; this module keeps the environment
// reads because it is embedded in benchmark drivers, per the spec.
package config
