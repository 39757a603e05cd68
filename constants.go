package newlines

import "runtime"

// Common newline sets. These are plain values: assigning one copies it, so they can be used as starting points for
// further mutation without affecting the originals.
var (
	// Empty is the set with no members.
	Empty Set

	// ASCII contains the newline sequences expressible in ASCII: LineFeed, VerticalTab, FormFeed, CarriageReturn,
	// and CrLf.
	ASCII = SetOf(LineFeed, VerticalTab, FormFeed, CarriageReturn, CrLf)

	// All contains every Newline variant. This is also the stop set the Unicode standard (§5.8, rule R4) recommends
	// for readline-style functions.
	All = SetOf(Newlines()...)

	// Native contains the conventional line terminator of the current platform: CrLf on Windows, LineFeed
	// everywhere else.
	Native = nativeSet()
)

// universe is the package's own full set, used by [Set.Complement]. It is distinct from the exported All so that
// callers mutating All through pointer-receiver methods cannot skew complement results.
var universe = SetOf(Newlines()...)

func nativeSet() Set {
	if runtime.GOOS == "windows" {
		return SetOf(CrLf)
	}
	return SetOf(LineFeed)
}
