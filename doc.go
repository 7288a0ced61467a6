// Package enums attaches auxiliary strings to the members of enumerated
// types - a wire constant for external representation and a human-facing
// description - and converts between those strings and the members they
// annotate, without a database lookup table.
//
// A [Set] is the annotation table for one enumerated type. It is declared
// once, usually as a package-level variable:
//
//	type Status string
//
//	const (
//		Active   Status = "Active"
//		Inactive Status = "Inactive"
//	)
//
//	var Statuses = enums.Must("Status",
//		enums.Member[Status]{Value: Active, Name: "Active", Wire: "A", Description: "Currently Active"},
//		enums.Member[Status]{Value: Inactive, Name: "Inactive"},
//	)
//
// Forward conversion falls back to the member's name, so annotating only some
// members is safe:
//
//	Statuses.WireConstant(Active)   // "A"
//	Statuses.WireConstant(Inactive) // "Inactive"
//
// Reverse conversion matches a member's name exactly, then its wire constant
// ignoring case, then its description exactly:
//
//	Statuses.Parse("a")                // Active
//	Statuses.Parse("Currently Active") // Active
//	Statuses.Parse("INACTIVE")         // fails: ErrNoMatch
//
// A Set never mutates after construction, so every method is safe for
// concurrent use.
package enums
