// Package ledger implements an append-only, link-validated sequence of
// characters: the character blockchain.
//
// Each entry stores a link computed deterministically from its position, its
// character, and the previous entry's link (zero for the first entry). The
// links form a singly-linked validation chain: tampering with any stored
// character changes every subsequent expected link, which Extract detects.
//
// The link function is a tamper-detection tripwire, not a cryptographic
// guarantee. No security properties are implied.
package ledger
