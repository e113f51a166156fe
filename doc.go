/*
Package wavedump provides a small discrete-event signal simulation model and
a waveform dumper that records value changes into a Value Change Dump (VCD)
trace file.

A design is described as a tree of Modules, each owning named Signals. A
Simulator advances logical time one step at a time, running scheduled events
and registered processes. A Dumper attaches to a built hierarchy, assigns a
short marker to every observable signal, and writes one consolidated
timestamp block per simulated instant that actually changed something.

*/
package wavedump
