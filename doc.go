// Package adam provides base-quality-score recalibration statistics for
// sequencing data.
//
// Per-residue observations are grouped by a configurable tuple of covariates
// (sequencing cycle, dinucleotide context, reported quality, ...) and
// aggregated into mismatch/total counts per group, from which an empirical
// error probability and quality score can be estimated.
//
// # Quick Start
//
// Build a covariate space, aggregate residues, and export the table:
//
//	space, err := adam.NewCovariateSpace(covariate.NewCycle(), covariate.NewDinucleotide())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	table, err := adam.TableFromResidues(space, residues)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, entry := range table.ExportSorted() {
//	    fmt.Printf("%s\t%s\n", entry.Key, entry.Observation)
//	}
//
// # Parallel Aggregation
//
// Tables are not safe for concurrent mutation. The intended pattern is
// data-parallel: one table per shard of residues, combined afterwards through
// the merge operator, which is associative and commutative so any reduction
// order yields the same final table. The pipeline package implements this
// pattern, and the distrib package exchanges partial tables between processes
// over NATS.
//
// # Estimators
//
// Observation exposes two distinct estimators: a Bayesian posterior-mean
// estimator under a Beta prior (EmpiricalQuality, BayesianQuality) and a
// reference estimator mirroring the historical formula of an external tool
// (ReferenceQuality). They produce different scores and both are retained as
// separate named operations.
package adam
