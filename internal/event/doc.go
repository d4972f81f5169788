// Package event defines the canonical seminar record and the merge engine
// that reconciles repeated observations of the same event into one catalog.
//
// Every source adapter converges on the Event schema. Records are identified
// by their (date, series) pair, and when two candidates share an identity key
// the merge keeps the one with the higher completeness score, so a "TBA"
// placeholder scraped today is replaced by full details tomorrow but never
// the other way around.
package event
