// Package provscan builds a structured CSV inventory of clinician-profile
// web pages. It fetches each profile, heuristically locates the page regions
// most likely to hold biographical data, asks an LLM completion endpoint to
// extract a fixed set of fields, reconciles the answer with
// heuristically-derived signals, and appends one record per URL.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, openai/, sqlite/).
package provscan
