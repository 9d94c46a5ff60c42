// Package hashword derives account passwords ("hashwords") from two stored
// anchors and two secret numbers supplied at unlock time.
//
// The stored anchors are treated as the y-values of a line sampled at the
// two runtime inputs. The value k recovered from that line is scaled by
// 10^n, truncated to an integer, hashed with SHA-256, and the last n hex
// characters of the digest followed by the account suffix form the hashword.
//
// Derivation is a pure function of its inputs: the same anchors, digest
// length, suffix and runtime inputs always give the same hashword. The
// evaluation order of the floating-point steps is fixed, because a different
// order rounds differently and yields a different password.
//
// Primary API
//
//   - GenerateAnchor / NewAnchors: random anchors for a new account
//   - Derive: hashword for a set of Params and inputs
//   - ParseInput: validation of a typed runtime input
package hashword
