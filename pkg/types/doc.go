// Package types narrows values of unknown type, such as decoded external input, to a
// runtime category.
//
// Of reports the category as a Tag; IsString, IsNumber, IsObject, IsNil and IsFunction
// answer one category each. Nil counts as an object, so IsObject(nil) is true.
// Raise aborts with a message where nothing else can be done.
package types
