// Package registry holds the namespace generated record types are
// registered under. Registries are explicit values: a generator owns one,
// and separate generators never see each other's names.
package registry
