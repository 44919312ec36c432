package library

// Package library owns the saved video list. The Store is the only writer:
// it applies add/delete/rating mutations, mirrors the list into the
// persistent slot through the codec after every change, and on backgrounding.
// The slot is never written before Load has completed.
