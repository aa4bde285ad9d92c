// Package based64 implements binary-to-text encoding for embedding arbitrary
// bytes in text-only contexts such as URLs, JSON documents, configuration
// files and transport headers.
//
// Packages:
//   - base64 https://datatracker.ietf.org/doc/html/rfc4648#section-4 standard alphabet, padded, strict decoding
//
// Related Information:
//   - https://datatracker.ietf.org/doc/html/rfc4648
package based64
