// Package report turns barbershop events into output for people: a console
// [Narrator] that prints one styled line per event, and a [Tally] that counts
// per-client outcomes for the end-of-run [Summary].
package report
