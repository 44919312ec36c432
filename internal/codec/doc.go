package codec

// Package codec turns a video list into the opaque string kept in the
// persistent slot and back.
//
// The masking transform is a single-byte XOR with a fixed key followed by hex
// encoding. It is obfuscation only and provides NO confidentiality: the key is
// a process constant reused for every byte and every session, so anyone with
// the blob can recover the list. The format is kept as-is so blobs written by
// earlier app revisions stay readable; replacing it with real encryption is a
// storage format break and must ship with a migration.
