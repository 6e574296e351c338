// Package guard provides ConstructorGuard, a small marker embedded in commands,
// queries and value objects so that zero values built without their constructor
// can be told apart from properly constructed ones.
package guard
