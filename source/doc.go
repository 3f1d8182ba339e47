// Package source defines the symbol source collaborator consumed by the
// fsm engine together with ready-made implementations: in-memory sequences,
// plain text, io.Reader streams and documents addressed by URL through the
// abstract file system.
//
// A source yields one symbol per call and reports end-of-input with io.EOF,
// which the engine treats as the normal run-termination signal.
package source
