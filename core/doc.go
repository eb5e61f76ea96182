// Package core defines the shared types used across the taglog facade.
//
// It provides the Level type for severity filtering, the Sink callback
// type that receives rendered messages, and caller capture for source
// location metadata in debug builds.
//
// Levels form a total order from VerboseLevel (least severe) to
// FatalLevel (most severe). NoneLevel sits numerically above all real
// levels and acts as a "nothing is ever allowed" sentinel for both the
// compile-time and the runtime threshold.
package core
