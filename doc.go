// Package keel is the base layer the keel ecosystem stands on: a severity
// value domain, byte-view string primitives, and a bridge onto zap's level
// domain.
//
// The library consists of three packages:
//
//   - keelnum: the Severity type, its four ordered values, naming,
//     normalization, and the build-mode DebugFatal constant
//   - keelstr: allocation-free prefix/suffix/whitespace operations over
//     borrowed byte views
//   - keelzap: conversion between keelnum.Severity and zapcore.Level
//
// keel performs no I/O and emits no log output of its own; it defines the
// values and primitives that the layers above it share.
package keel
