// Package score turns sparse school records into comparable numbers.
//
// Eight category scorers each map one dimension of a school record
// (exam results, commute, satisfaction, facilities, size, activities,
// special programs) onto a 0-100 scale, returning a nil score when the
// record lacks the data for that dimension. Compute combines the
// category scores into a weighted composite, renormalizing over the
// weights that actually contributed so schools with different data
// completeness stay comparable. Rank filters a collection and orders
// it by composite score.
//
// Everything in this package is pure: no I/O, no retained state
// between calls, identical inputs produce identical outputs.
package score
