// Package base64 provides standard base64 encoding and decoding as defined
// in RFC 4648 Section 4.
//
// The alphabet is A-Z, a-z, 0-9, '+' and '/', and encoded output is always
// padded with '=' to a multiple of four characters.
//
// Decoding is strict:
//   - Input must be a single contiguous block, whitespace and line breaks
//     are rejected
//   - Padding is required, and may only appear as the last one or two
//     characters of the final group
//   - Unused bits in the last character before the padding must be zero,
//     so only canonical encodings are accepted
//
// All functions are safe for concurrent use.
//
// http://www.rfc-editor.org/rfc/rfc4648#section-4
package base64
